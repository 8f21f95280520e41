// Package driver wires description loading, stamping, generation and file
// output together for the astgen commands.
package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/teranos/astgen/codegen"
	"github.com/teranos/astgen/config"
	"github.com/teranos/astgen/decl"
	"github.com/teranos/astgen/description"
	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/internal/gitstamp"
	"github.com/teranos/astgen/logger"
)

// Options adjusts a single run on top of the configuration.
type Options struct {
	// Only restricts the run to these generators (keys or names)
	Only []string
	// Stdout receives generated text when no output dir is configured
	Stdout io.Writer
	// Now overrides the clock for the "now" stamp mode
	Now func() time.Time
}

// FileReport describes one generator's output.
type FileReport struct {
	Generator string
	// Path is the written file, or "" when written to Stdout
	Path    string
	Blocks  int
	Skipped []string
	Bytes   int
}

// Report summarizes a run.
type Report struct {
	Source     string
	Decls      int
	Stamp      string
	Duplicates []string
	Files      []FileReport
	Duration   time.Duration
}

// Run generates every selected target from the configured description.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Report, error) {
	start := time.Now()
	log := logger.ComponentLogger("driver")

	targets, err := Select(cfg, opts.Only)
	if err != nil {
		return nil, err
	}

	src, err := description.Fetch(ctx, cfg.Description)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	decls, err := description.Load(src.LocalPath)
	if err != nil {
		return nil, err
	}
	log.Debugw("Loaded description",
		logger.FieldSource, src.Input,
		logger.FieldDecls, len(decls),
	)

	report := &Report{Source: src.Input, Decls: len(decls)}

	// Duplicate names produce conflicting impls; the generators still run.
	report.Duplicates = decl.Duplicates(decls)
	for _, name := range report.Duplicates {
		log.Warnw("Duplicate declaration name", "name", name, logger.FieldSource, src.Input)
	}

	report.Stamp = resolveStamp(cfg, src, opts.Now)
	genOpts := codegen.Options{
		Tool:    cfg.Banner.Tool,
		Stamp:   report.Stamp,
		Workers: cfg.Workers,
	}

	// Nothing is written until every generator has succeeded.
	results := make([]*codegen.Result, len(targets))
	for i, t := range targets {
		res, err := codegen.Run(ctx, t.Generator, decls, genOpts)
		if err != nil {
			return nil, err
		}
		results[i] = res
	}

	if cfg.Output.Dir != "" {
		if err := os.MkdirAll(cfg.Output.Dir, config.DefaultDirPermissions); err != nil {
			return nil, errors.Wrapf(err, "failed to create output directory %s", cfg.Output.Dir)
		}
	}

	for i, t := range targets {
		genLog := logger.ChildLogger(log, logger.FieldGenerator, t.Generator.Name())
		res := results[i]
		text := res.Text + "\n"

		file := FileReport{
			Generator: t.Generator.Name(),
			Blocks:    res.Blocks,
			Skipped:   res.Skipped,
			Bytes:     len(text),
		}

		if cfg.Output.Dir == "" {
			if _, err := io.WriteString(stdout(opts), text); err != nil {
				return nil, errors.Wrap(err, "failed to write output")
			}
		} else {
			file.Path = filepath.Join(cfg.Output.Dir, t.File)
			if err := os.WriteFile(file.Path, []byte(text), 0644); err != nil {
				return nil, errors.Wrapf(err, "failed to write %s", file.Path)
			}
			if cfg.Format.Enabled {
				if err := codegen.FormatFile(ctx, cfg.Format.Command, file.Path); err != nil {
					return nil, err
				}
			}
		}

		genLog.Infow("Generated",
			logger.FieldFile, file.Path,
			logger.FieldBlocks, file.Blocks,
			logger.FieldBytes, file.Bytes,
		)
		report.Files = append(report.Files, file)
	}

	report.Duration = time.Since(start)
	log.Debugw("Run complete", logger.FieldDurationMS, report.Duration.Milliseconds())
	return report, nil
}

func stdout(opts Options) io.Writer {
	if opts.Stdout != nil {
		return opts.Stdout
	}
	return os.Stdout
}

// resolveStamp turns banner.stamp into the banner's stamp text. Failures to
// read git history fall back to no stamp.
func resolveStamp(cfg *config.Config, src *description.Source, now func() time.Time) string {
	switch cfg.StampMode() {
	case config.StampNone:
		return ""
	case config.StampNow:
		if now == nil {
			now = time.Now
		}
		return now().UTC().Format(time.RFC3339)
	case config.StampGit:
		if src.Remote {
			return ""
		}
		stamp, err := gitstamp.LastCommit(src.LocalPath)
		if err != nil {
			if !errors.Is(err, gitstamp.ErrNotTracked) {
				logger.Warnw("Could not read git history, omitting stamp",
					logger.FieldSource, src.LocalPath,
					logger.FieldError, err,
				)
			} else {
				logger.Debugw("Description not tracked, omitting stamp", logger.FieldSource, src.LocalPath)
			}
			return ""
		}
		return stamp.String()
	default:
		return cfg.Banner.Stamp
	}
}

// Check regenerates into a temp dir and compares against the configured
// output dir, ignoring banner stamps. It returns ErrOutOfDate when any file
// differs or is missing.
func Check(ctx context.Context, cfg *config.Config, opts Options) (*codegen.CheckResult, error) {
	if cfg.Output.Dir == "" {
		return nil, errors.WithHint(
			errors.New("check needs an output directory"),
			"set output.dir in astgen.toml or pass --output",
		)
	}

	tmp, err := os.MkdirTemp("", "astgen-check-*")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tmp)

	scratch := *cfg
	scratch.Output.Dir = tmp
	if _, err := Run(ctx, &scratch, Options{Only: opts.Only, Stdout: io.Discard, Now: opts.Now}); err != nil {
		return nil, err
	}

	result, err := codegen.CompareDirectories(tmp, cfg.Output.Dir, true)
	if err != nil {
		return nil, err
	}
	if !result.UpToDate {
		stale := append(append([]string{}, result.Differences...), result.Missing...)
		return result, errors.WithHint(
			errors.Wrapf(errors.ErrOutOfDate, "%s", describeStale(result)),
			fmt.Sprintf("run astgen to regenerate %s", strings.Join(stale, ", ")),
		)
	}
	return result, nil
}

func describeStale(result *codegen.CheckResult) string {
	var parts []string
	if n := len(result.Differences); n > 0 {
		parts = append(parts, fmt.Sprintf("%d differ (%s)", n, strings.Join(result.Differences, ", ")))
	}
	if n := len(result.Missing); n > 0 {
		parts = append(parts, fmt.Sprintf("%d missing (%s)", n, strings.Join(result.Missing, ", ")))
	}
	return strings.Join(parts, ", ")
}
