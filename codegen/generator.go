// Package codegen turns a declaration list into Rust trait implementations.
//
// # Architecture
//
// The package uses a two-layer design:
//  1. Target-agnostic driving (this package) writes the banner, walks the
//     declarations in order and joins the per-declaration blocks
//  2. Target generators (deref/, names/, nodeids/) emit one impl block for
//     a single declaration, using the shared helpers in util/
//
// # Design Decisions
//
//   - Generators are pure: the banner stamp is passed in through Options, never
//     read from the clock, so two runs over the same input are byte-identical
//   - Blocks are computed independently; with Workers > 1 they are computed
//     concurrently and re-sequenced before joining
//   - A generator error aborts the whole run; no partial text is returned
//
// # Implementing a New Generator
//
//  1. Create package: codegen/<target>/generator.go
//  2. Implement the Generator interface (see below)
//  3. Register it in internal/driver/targets.go
//  4. Add a golden archive under codegen/testdata/
package codegen

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/teranos/astgen/decl"
	"github.com/teranos/astgen/errors"
)

// Generator emits one trait implementation per declaration.
type Generator interface {
	// Name returns the generator identifier (e.g., "ast_names")
	Name() string

	// Trait returns the Rust trait the generated impls implement (e.g., "AstName")
	Trait() string

	// Block renders the impl for d. ok is false when the generator skips d.
	Block(d decl.Decl) (block string, ok bool, err error)
}

const (
	// BannerWarning is the first line of every generated file
	BannerWarning = "// AUTOMATICALLY GENERATED - DO NOT EDIT"

	// MetadataPrefix starts the banner line that changes between runs
	MetadataPrefix = "// Produced "

	// DefaultTool names the producer in the banner
	DefaultTool = "astgen"
)

// Options controls a generation run.
type Options struct {
	// Tool is the producer named in the banner (default: "astgen")
	Tool string

	// Stamp is an optional generation stamp (a timestamp, a commit). Empty
	// omits it, which keeps output reproducible.
	Stamp string

	// Workers bounds concurrent block generation. Values <= 1 run sequentially.
	Workers int
}

// Banner returns the two banner lines for the given options.
func Banner(opts Options) []string {
	tool := opts.Tool
	if tool == "" {
		tool = DefaultTool
	}
	produced := MetadataPrefix + "by " + tool
	if opts.Stamp != "" {
		produced = MetadataPrefix + opts.Stamp + " by " + tool
	}
	return []string{BannerWarning, produced}
}

// Result is the output of one generator over the whole declaration list.
type Result struct {
	// Text is the banner, a blank line and every emitted block, joined by "\n"
	Text string
	// Blocks counts the declarations that produced an impl
	Blocks int
	// Skipped lists declarations the generator did not emit, in order
	Skipped []string
}

// Generate runs g over decls and returns the complete text.
func Generate(g Generator, decls []decl.Decl, opts Options) (string, error) {
	res, err := Run(context.Background(), g, decls, opts)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Run is Generate with cancellation and per-run statistics.
func Run(ctx context.Context, g Generator, decls []decl.Decl, opts Options) (*Result, error) {
	blocks, emitted, err := renderBlocks(ctx, g, decls, opts.Workers)
	if err != nil {
		return nil, errors.Wrapf(err, "%s generation failed", g.Name())
	}

	lines := Banner(opts)
	lines = append(lines, "")

	res := &Result{}
	for i, d := range decls {
		if !emitted[i] {
			res.Skipped = append(res.Skipped, d.DeclName())
			continue
		}
		lines = append(lines, blocks[i])
		res.Blocks++
	}
	res.Text = strings.Join(lines, "\n")
	return res, nil
}

// renderBlocks computes every declaration's block into a slot matching its
// input index, so the caller can join them in order whatever the schedule.
func renderBlocks(ctx context.Context, g Generator, decls []decl.Decl, workers int) ([]string, []bool, error) {
	blocks := make([]string, len(decls))
	emitted := make([]bool, len(decls))

	if workers <= 1 {
		for i, d := range decls {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			block, ok, err := g.Block(d)
			if err != nil {
				return nil, nil, err
			}
			blocks[i], emitted[i] = block, ok
		}
		return blocks, emitted, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, d := range decls {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			block, ok, err := g.Block(d)
			if err != nil {
				return err
			}
			blocks[i], emitted[i] = block, ok
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return blocks, emitted, nil
}
