// Package names generates AstName impls, which render a node's variant name
// as a string, refined by the name of its kind field when it has one
// (e.g. "Item:Fn").
package names

import (
	"github.com/teranos/astgen/codegen"
	"github.com/teranos/astgen/codegen/util"
	"github.com/teranos/astgen/decl"
	"github.com/teranos/astgen/errors"
)

// Generator implements codegen.Generator for AstName
type Generator struct{}

// NewGenerator creates a new AstName generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Name returns "ast_names"
func (g *Generator) Name() string {
	return "ast_names"
}

// Trait returns "AstName"
func (g *Generator) Trait() string {
	return "AstName"
}

// Block renders the AstName impl for structs and enums. Flags are skipped.
func (g *Generator) Block(d decl.Decl) (string, bool, error) {
	switch d.(type) {
	case *decl.Struct, *decl.Enum:
	default:
		return "", false, nil
	}

	var l util.Lines
	l.Add("#[allow(unused, non_shorthand_field_patterns)]")
	l.Add("impl AstName for %s {", d.DeclName())
	l.Add("  fn ast_name(&self) -> String {")
	l.Add("    match self {")

	for v, path := range decl.VariantPaths(d) {
		kindExpr, err := kindSuffix(d, v)
		if err != nil {
			return "", false, errors.Wrapf(err, "AstName for %s", d.DeclName())
		}

		l.Add("      &%s => {", util.FormatPattern(v, path))
		l.Add(`        "%s".to_string()`, v.Name)
		if kindExpr != "" {
			l.Add(`        + ":" + &%s.ast_name()`, kindExpr)
		}
		l.Add("      }")
	}

	l.Add("    }")
	l.Add("  }")
	l.Add("}")
	return l.String(), true, nil
}

// kindSuffix returns the expression whose ast_name refines the arm's name,
// or "" when the variant has no kind field. A struct reads its own field;
// an enum case reads the binding introduced by the arm's pattern.
func kindSuffix(d decl.Decl, v *decl.Struct) (string, error) {
	field, ok, err := decl.FindKindField(v)
	if err != nil || !ok {
		return "", err
	}
	if _, isStruct := d.(*decl.Struct); isStruct {
		return "self." + field, nil
	}
	return util.Binding(field), nil
}

// Generate renders AstName impls for decls
func Generate(decls []decl.Decl, opts codegen.Options) (string, error) {
	return codegen.Generate(NewGenerator(), decls, opts)
}
