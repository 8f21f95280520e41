// Package errors provides error handling for astgen.
//
// This package re-exports github.com/cockroachdb/errors so every package
// creates, wraps and inspects errors the same way, and defines the sentinel
// errors the CLI uses to pick exit codes and hints.
//
// Usage:
//
//	// Wrap with context
//	if err := parse(src); err != nil {
//	    return errors.Wrapf(err, "failed to parse %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run 'astgen' to regenerate")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

var (
	// ErrInvalidDescription marks a description file that cannot be turned
	// into a declaration list (syntax error, unknown schema version, ...).
	ErrInvalidDescription = New("invalid AST description")

	// ErrOutOfDate is returned by check when generated files differ from
	// what the current description produces.
	ErrOutOfDate = New("generated files are out of date")
)

// IsInvalidDescription checks if an error is or wraps ErrInvalidDescription
func IsInvalidDescription(err error) bool {
	return err != nil && Is(err, ErrInvalidDescription)
}

// IsOutOfDate checks if an error is or wraps ErrOutOfDate
func IsOutOfDate(err error) bool {
	return err != nil && Is(err, ErrOutOfDate)
}
