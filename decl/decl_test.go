package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/astgen/errors"
)

func fields(names ...string) []Field {
	out := make([]Field, len(names))
	for i, n := range names {
		out[i] = Field{Name: n}
	}
	return out
}

// =============================================================================
// Attrs
// =============================================================================

func TestParseAttr(t *testing.T) {
	name, value := ParseAttr("kind")
	assert.Equal(t, "kind", name)
	assert.Nil(t, value)

	name, value = ParseAttr("list_node_ids = custom")
	assert.Equal(t, "list_node_ids", name)
	require.NotNil(t, value)
	assert.Equal(t, "custom", *value)
}

func TestAttrsAccessors(t *testing.T) {
	attrs := NewAttrs("rewrite_seq_item", "list_node_ids=custom", "list_node_ids=default")

	assert.True(t, attrs.Has(AttrRewriteSeqItem))
	assert.False(t, attrs.Has(AttrNoKind))

	_, ok := attrs.Value(AttrRewriteSeqItem)
	assert.False(t, ok, "flag-only attribute has no value")

	v, ok := attrs.Value(AttrListNodeIDs)
	require.True(t, ok)
	assert.Equal(t, "default", v, "later attribute wins")
	assert.False(t, attrs.Is(AttrListNodeIDs, ValueCustom))

	assert.Equal(t, []string{"list_node_ids=default", "rewrite_seq_item"}, attrs.Strings())
}

func TestAttrsNilSafe(t *testing.T) {
	var attrs Attrs
	assert.False(t, attrs.Has(AttrKind))
	assert.False(t, attrs.Is(AttrListNodeIDs, ValueCustom))
	assert.Nil(t, NewAttrs())

	attrs.Set(AttrKind, nil)
	assert.True(t, attrs.Has(AttrKind))
}

// =============================================================================
// FindKindField
// =============================================================================

func TestFindKindField(t *testing.T) {
	tests := []struct {
		name     string
		s        *Struct
		wantName string
		wantOK   bool
	}{
		{
			name: "single marked field",
			s: &Struct{Name: "Expr", Fields: []Field{
				{Name: "id"},
				{Name: "node", Attrs: NewAttrs(AttrKind)},
				{Name: "span"},
			}},
			wantName: "node",
			wantOK:   true,
		},
		{
			name:     "falls back to field named kind",
			s:        &Struct{Name: "Item", Fields: fields("ident", "kind", "span")},
			wantName: "kind",
			wantOK:   true,
		},
		{
			name:   "no marked and no kind field",
			s:      &Struct{Name: "Lifetime", Fields: fields("id", "ident")},
			wantOK: false,
		},
		{
			name: "marked field wins over field named kind",
			s: &Struct{Name: "Pat", Fields: []Field{
				{Name: "kind"},
				{Name: "node", Attrs: NewAttrs(AttrKind)},
			}},
			wantName: "node",
			wantOK:   true,
		},
		{
			name: "no_kind suppresses even marked fields",
			s: &Struct{Name: "Ty", Attrs: NewAttrs(AttrNoKind), Fields: []Field{
				{Name: "kind", Attrs: NewAttrs(AttrKind)},
			}},
			wantOK: false,
		},
		{
			name:   "empty struct",
			s:      &Struct{Name: "Unit", IsTuple: true},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok, err := FindKindField(tt.s)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestFindKindFieldAmbiguous(t *testing.T) {
	s := &Struct{Name: "Stmt", Fields: []Field{
		{Name: "a", Attrs: NewAttrs(AttrKind)},
		{Name: "b"},
		{Name: "c", Attrs: NewAttrs(AttrKind)},
	}}

	_, ok, err := FindKindField(s)
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrAmbiguousKindField))
	assert.Equal(t, "struct Stmt has 2 fields marked #[kind] (expected 0 or 1)", err.Error())

	var ambiguous *AmbiguousKindFieldError
	require.True(t, errors.As(err, &ambiguous))
	assert.Equal(t, "Stmt", ambiguous.Struct)
	assert.Equal(t, 2, ambiguous.Count)

	hints := errors.GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "#[no_kind]")
}

// =============================================================================
// DetectOverride
// =============================================================================

func TestDetectOverride(t *testing.T) {
	custom := &Struct{Name: "Crate", Attrs: NewAttrs("list_node_ids=custom")}
	flagOnly := &Struct{Name: "Item", Attrs: NewAttrs("list_node_ids")}
	other := &Enum{Name: "ItemKind", Attrs: NewAttrs("list_node_ids=generated")}
	opaque := &Flag{Name: "Mutability", Attrs: NewAttrs("list_node_ids=custom")}

	assert.True(t, DetectOverride(custom, AttrListNodeIDs))
	assert.False(t, DetectOverride(custom, "match"))
	assert.False(t, DetectOverride(flagOnly, AttrListNodeIDs))
	assert.False(t, DetectOverride(other, AttrListNodeIDs))
	assert.True(t, DetectOverride(opaque, AttrListNodeIDs))
}

// =============================================================================
// VariantPaths
// =============================================================================

type pair struct {
	variant *Struct
	path    string
}

func collect(d Decl) []pair {
	var out []pair
	for v, path := range VariantPaths(d) {
		out = append(out, pair{v, path})
	}
	return out
}

func TestVariantPathsStruct(t *testing.T) {
	s := &Struct{Name: "Crate", Fields: fields("module", "attrs", "span")}
	assert.Equal(t, []pair{{s, "Crate"}}, collect(s))
}

func TestVariantPathsEnum(t *testing.T) {
	c1 := &Struct{Name: "C1", IsTuple: true, Fields: fields("a")}
	c2 := &Struct{Name: "C2", Fields: fields("b")}
	e := &Enum{Name: "E", Variants: []*Struct{c1, c2}}

	got := collect(e)
	assert.Equal(t, []pair{{c1, "E::C1"}, {c2, "E::C2"}}, got)

	// Restartable: a second walk sees the same sequence
	assert.Equal(t, got, collect(e))
}

func TestVariantPathsEarlyStop(t *testing.T) {
	e := &Enum{Name: "E", Variants: []*Struct{{Name: "A"}, {Name: "B"}, {Name: "C"}}}
	var seen []string
	for _, path := range VariantPaths(e) {
		seen = append(seen, path)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"E::A", "E::B"}, seen)
}

func TestVariantPathsFlagAndEmptyEnum(t *testing.T) {
	assert.Empty(t, collect(&Flag{Name: "Mutability"}))
	assert.Empty(t, collect(&Enum{Name: "Never"}))
}

// =============================================================================
// Helpers
// =============================================================================

func TestDuplicates(t *testing.T) {
	decls := []Decl{
		&Struct{Name: "A"},
		&Enum{Name: "B"},
		&Flag{Name: "A"},
		&Struct{Name: "A"},
		&Struct{Name: "B"},
	}
	assert.Equal(t, []string{"A", "B"}, Duplicates(decls))
	assert.Empty(t, Duplicates(nil))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, "struct", KindOf(&Struct{}))
	assert.Equal(t, "enum", KindOf(&Enum{}))
	assert.Equal(t, "flag", KindOf(&Flag{}))
}

func TestFieldNames(t *testing.T) {
	s := &Struct{Fields: fields("a", "b")}
	assert.Equal(t, []string{"a", "b"}, s.FieldNames())
}
