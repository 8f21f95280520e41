package util

import (
	"strings"

	"github.com/teranos/astgen/decl"
)

// DefaultBindMode binds every matched field by reference.
const DefaultBindMode = "ref "

type patternConfig struct {
	suffix   string
	bindMode string
}

// PatternOption customizes FormatPattern.
type PatternOption func(*patternConfig)

// WithSuffix appends suffix to every bound identifier, e.g. "_new" to tell a
// rebound copy apart from the original bindings.
func WithSuffix(suffix string) PatternOption {
	return func(c *patternConfig) { c.suffix = suffix }
}

// WithBindMode sets the prefix of every binding ("ref ", "ref mut ", "").
func WithBindMode(mode string) PatternOption {
	return func(c *patternConfig) { c.bindMode = mode }
}

// FormatPattern renders a single-line Rust match pattern that destructures
// variant under the constructor path:
//
//	Path { a: ref a, b: ref b }   named fields
//	Path(ref a, ref b)            tuple fields
//	Path                          zero-arity tuple
//
// Named structs with no fields render as "Path {  }".
func FormatPattern(variant *decl.Struct, path string, opts ...PatternOption) string {
	cfg := patternConfig{bindMode: DefaultBindMode}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !variant.IsTuple {
		return path + " { " + structFields(variant.Fields, cfg) + " }"
	}
	if len(variant.Fields) == 0 {
		return path
	}
	return path + "(" + tupleFields(variant.Fields, cfg) + ")"
}

// Binding returns the identifier FormatPattern binds a field to.
func Binding(field string, opts ...PatternOption) string {
	cfg := patternConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return field + cfg.suffix
}

func structFields(fields []decl.Field, cfg patternConfig) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name + ": " + cfg.bindMode + f.Name + cfg.suffix
	}
	return strings.Join(parts, ", ")
}

func tupleFields(fields []decl.Field, cfg patternConfig) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = cfg.bindMode + f.Name + cfg.suffix
	}
	return strings.Join(parts, ", ")
}
