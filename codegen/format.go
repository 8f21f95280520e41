package codegen

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/teranos/astgen/errors"
)

// DefaultFormatCommand formats generated files in place.
const DefaultFormatCommand = "rustfmt --edition 2018"

// FormatCommand splits a formatter command line ("rustfmt --edition 2018")
// and appends the file to format.
func FormatCommand(command, path string) ([]string, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid format command %q", command)
	}
	if len(args) == 0 {
		return nil, errors.Newf("empty format command")
	}
	return append(args, path), nil
}

// FormatFile runs the formatter command on path, which is rewritten in place.
func FormatFile(ctx context.Context, command, path string) error {
	args, err := FormatCommand(command, path)
	if err != nil {
		return err
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return errors.WithDetail(errors.Wrapf(err, "%s failed on %s", args[0], path), msg)
		}
		return errors.WithHintf(errors.Wrapf(err, "%s failed on %s", args[0], path),
			"install %s or disable formatting with format.enabled = false", args[0])
	}
	return nil
}
