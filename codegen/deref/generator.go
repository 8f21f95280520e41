// Package deref generates reflexive AstDeref impls.
package deref

import (
	"github.com/teranos/astgen/codegen"
	"github.com/teranos/astgen/codegen/util"
	"github.com/teranos/astgen/decl"
)

// Generator implements codegen.Generator for AstDeref.
//
// Every impl has the same shape (Target = Self, returns self) whatever the
// declaration looks like inside. By default every declaration gets one;
// with GateOnMarker set only declarations carrying #[rewrite_seq_item] do.
type Generator struct {
	GateOnMarker bool
}

// NewGenerator creates an AstDeref generator that emits for every declaration
func NewGenerator() *Generator {
	return &Generator{}
}

// Name returns "ast_deref"
func (g *Generator) Name() string {
	return "ast_deref"
}

// Trait returns "AstDeref"
func (g *Generator) Trait() string {
	return "AstDeref"
}

// Block renders the AstDeref impl for d
func (g *Generator) Block(d decl.Decl) (string, bool, error) {
	if g.GateOnMarker && !d.DeclAttrs().Has(decl.AttrRewriteSeqItem) {
		return "", false, nil
	}

	var l util.Lines
	l.Add("#[allow(unused)]")
	l.Add("impl AstDeref for %s {", d.DeclName())
	l.Add("  type Target = Self;")
	l.Add("  fn ast_deref(&self) -> &Self { self }")
	l.Add("}")
	return l.String(), true, nil
}

// Generate renders AstDeref impls for every declaration with the default
// (ungated) behavior.
func Generate(decls []decl.Decl, opts codegen.Options) (string, error) {
	return codegen.Generate(NewGenerator(), decls, opts)
}
