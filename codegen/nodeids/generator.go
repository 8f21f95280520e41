// Package nodeids generates ListNodeIds impls, which collect the NodeIds of
// a node and all of its children into a caller-supplied Vec.
//
// Attributes:
//
//   - #[list_node_ids=custom]: no impl is generated for the type, so that a
//     hand-written one can be provided.
package nodeids

import (
	"github.com/teranos/astgen/codegen"
	"github.com/teranos/astgen/codegen/util"
	"github.com/teranos/astgen/decl"
)

// Generator implements codegen.Generator for ListNodeIds
type Generator struct{}

// NewGenerator creates a new ListNodeIds generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Name returns "list_node_ids"
func (g *Generator) Name() string {
	return "list_node_ids"
}

// Trait returns "ListNodeIds"
func (g *Generator) Trait() string {
	return "ListNodeIds"
}

// Block renders the ListNodeIds impl for d. Structs and enums recurse into
// every field; flags get an impl that adds nothing.
func (g *Generator) Block(d decl.Decl) (string, bool, error) {
	if decl.DetectOverride(d, decl.AttrListNodeIDs) {
		return "", false, nil
	}

	switch d.(type) {
	case *decl.Struct, *decl.Enum:
		return listImpl(d), true, nil
	default:
		return dummyImpl(d), true, nil
	}
}

func listImpl(d decl.Decl) string {
	var l util.Lines
	l.Add("#[allow(unused, non_shorthand_field_patterns)]")
	l.Add("impl ListNodeIds for %s {", d.DeclName())
	l.Add("  fn add_node_ids(&self, node_id_list: &mut Vec<NodeId>) {")
	l.AddBlock(matchFields(d, "self"), "    ")
	l.Add("  }")
	l.Add("}")
	return l.String()
}

// matchFields renders a match over target with one arm per variant, each
// arm forwarding every bound field to ListNodeIds::add_node_ids.
func matchFields(d decl.Decl, target string) string {
	var l util.Lines
	l.Add("match %s {", target)
	for v, path := range decl.VariantPaths(d) {
		l.Add("  &%s => {", util.FormatPattern(v, path))
		for _, f := range v.Fields {
			l.Add("    ListNodeIds::add_node_ids(%s, node_id_list);", util.Binding(f.Name))
		}
		l.Add("  }")
	}
	l.Add("}")
	return l.String()
}

func dummyImpl(d decl.Decl) string {
	var l util.Lines
	l.Add("#[allow(unused, non_shorthand_field_patterns)]")
	l.Add("impl ListNodeIds for %s {", d.DeclName())
	l.Add("  fn add_node_ids(&self, _node_id_list: &mut Vec<NodeId>) {")
	l.Add("    // Do nothing")
	l.Add("  }")
	l.Add("}")
	return l.String()
}

// Generate renders ListNodeIds impls for decls
func Generate(decls []decl.Decl, opts codegen.Options) (string, error) {
	return codegen.Generate(NewGenerator(), decls, opts)
}
