package decl

import (
	"sort"
	"strings"
)

// Attribute names recognized by the generators.
const (
	// AttrKind marks a field as the kind discriminant of its struct.
	AttrKind = "kind"
	// AttrNoKind on a struct disables kind-field lookup entirely.
	AttrNoKind = "no_kind"
	// AttrListNodeIDs = custom suppresses the generated ListNodeIds impl.
	AttrListNodeIDs = "list_node_ids"
	// AttrRewriteSeqItem marks types that support sequence rewriting.
	AttrRewriteSeqItem = "rewrite_seq_item"

	// ValueCustom is the override value: a hand-written impl exists.
	ValueCustom = "custom"
)

// Attrs maps an attribute name to its optional value. A nil value means the
// attribute was given without one (#[kind]); a non-nil value holds the
// right-hand side of #[name=value].
type Attrs map[string]*string

// ParseAttr splits "name" or "name=value" into an attribute name and value.
func ParseAttr(s string) (string, *string) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok {
		return name, nil
	}
	value = strings.TrimSpace(value)
	return name, &value
}

// NewAttrs builds an attribute bag from "name" / "name=value" strings.
// Later entries win over earlier ones with the same name.
func NewAttrs(specs ...string) Attrs {
	if len(specs) == 0 {
		return nil
	}
	attrs := make(Attrs, len(specs))
	for _, spec := range specs {
		name, value := ParseAttr(spec)
		attrs[name] = value
	}
	return attrs
}

// Has reports whether the attribute is present, with or without a value.
func (a Attrs) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Value returns the attribute's value. ok is false when the attribute is
// absent or was given without a value.
func (a Attrs) Value(name string) (value string, ok bool) {
	v, present := a[name]
	if !present || v == nil {
		return "", false
	}
	return *v, true
}

// Is reports whether the attribute is present with exactly the given value.
func (a Attrs) Is(name, value string) bool {
	v, ok := a.Value(name)
	return ok && v == value
}

// Set adds or replaces an attribute, allocating the map if needed.
func (a *Attrs) Set(name string, value *string) {
	if *a == nil {
		*a = make(Attrs)
	}
	(*a)[name] = value
}

// Strings renders the bag back into sorted "name" / "name=value" form.
func (a Attrs) Strings() []string {
	out := make([]string, 0, len(a))
	for name, value := range a {
		if value == nil {
			out = append(out, name)
		} else {
			out = append(out, name+"="+*value)
		}
	}
	sort.Strings(out)
	return out
}
