package description

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter"

	"github.com/teranos/astgen/errors"
)

// Source is a description resolved to a local file.
type Source struct {
	// LocalPath is the file to read
	LocalPath string
	// Input is the description setting as given
	Input string
	// Remote is true when the file was downloaded into a temp dir
	Remote bool

	cleanup func()
}

// Close removes any downloaded copy. It is safe to call more than once.
func (s *Source) Close() {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

// detect runs go-getter detection relative to the working directory.
func detect(input string) (string, error) {
	pwd, err := os.Getwd()
	if err != nil {
		pwd = "."
	}
	return getter.Detect(input, pwd, getter.Detectors)
}

// IsRemote reports whether input names something other than a local file:
// an http(s) URL, a git:: or s3:: source, github.com/... shorthand.
func IsRemote(input string) bool {
	detected, err := detect(input)
	if err != nil {
		return false
	}
	u, err := url.Parse(detected)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Scheme != "file"
}

// Fetch resolves input to a local file. Local paths (including file:// URLs
// and ~/ paths) are returned as is; remote sources are downloaded with
// go-getter into a temp dir that Close removes.
func Fetch(ctx context.Context, input string) (*Source, error) {
	if strings.HasPrefix(input, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to expand home directory")
		}
		input = filepath.Join(home, input[2:])
	}

	detected, err := detect(input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to detect source type of %s", input)
	}
	u, err := url.Parse(detected)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse detected URL %s", detected)
	}

	if u.Scheme == "" || u.Scheme == "file" {
		local := input
		if u.Scheme == "file" {
			local = u.Path
		}
		return &Source{LocalPath: local, Input: input}, nil
	}

	tempDir, err := os.MkdirTemp("", "astgen-description-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp directory")
	}
	dst := filepath.Join(tempDir, remoteName(u))

	client := &getter.Client{
		Ctx:     ctx,
		Src:     detected,
		Dst:     dst,
		Mode:    getter.ClientModeFile,
		Getters: getter.Getters,
	}
	if err := client.Get(); err != nil {
		os.RemoveAll(tempDir)
		return nil, errors.WithHint(
			errors.Wrapf(err, "failed to fetch description %s", input),
			"description accepts a local path or any go-getter source",
		)
	}

	return &Source{
		LocalPath: dst,
		Input:     input,
		Remote:    true,
		cleanup:   func() { os.RemoveAll(tempDir) },
	}, nil
}

// remoteName keeps the remote file's base name so its extension still
// selects the decoder.
func remoteName(u *url.URL) string {
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "ast.txt"
	}
	return name
}
