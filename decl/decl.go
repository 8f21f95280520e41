// Package decl models the declarations of an AST description: structs,
// enums and opaque flag types, together with their attribute bags.
//
// The declaration list is built once by the description loader and treated
// as immutable input by every generator.
package decl

// Decl is one AST node-type definition. It is a closed sum type: the only
// implementations are *Struct, *Enum and *Flag.
type Decl interface {
	// DeclName returns the type name used in generated impl headers
	DeclName() string
	// DeclAttrs returns the declaration-level attributes
	DeclAttrs() Attrs

	isDecl()
}

// Field is a named (or positionally named) member of a struct or enum case.
type Field struct {
	Name  string
	Attrs Attrs
}

// Struct is a struct declaration or, inside an Enum, one enum case.
type Struct struct {
	Name  string
	Attrs Attrs
	// Fields in declaration order
	Fields []Field
	// IsTuple is set when fields are positional: Foo(a, b) rather than Foo { a, b }
	IsTuple bool
}

// Enum is an enum declaration. Each case is struct shaped; cases never nest.
type Enum struct {
	Name     string
	Attrs    Attrs
	Variants []*Struct
}

// Flag is an opaque leaf type (primitive, external or bitflag type) that has
// no fields the generators can look into.
type Flag struct {
	Name  string
	Attrs Attrs
}

func (s *Struct) DeclName() string { return s.Name }
func (s *Struct) DeclAttrs() Attrs { return s.Attrs }
func (*Struct) isDecl()            {}

func (e *Enum) DeclName() string { return e.Name }
func (e *Enum) DeclAttrs() Attrs { return e.Attrs }
func (*Enum) isDecl()            {}

func (f *Flag) DeclName() string { return f.Name }
func (f *Flag) DeclAttrs() Attrs { return f.Attrs }
func (*Flag) isDecl()            {}

// FieldNames returns the names of the struct's fields in order.
func (s *Struct) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Duplicates returns declaration names that occur more than once, in order
// of their second occurrence. Generators do not reject duplicates; callers
// use this to warn.
func Duplicates(decls []Decl) []string {
	seen := make(map[string]int, len(decls))
	var dups []string
	for _, d := range decls {
		seen[d.DeclName()]++
		if seen[d.DeclName()] == 2 {
			dups = append(dups, d.DeclName())
		}
	}
	return dups
}

// KindOf returns a short label for the declaration's shape, used in logs.
func KindOf(d Decl) string {
	switch d.(type) {
	case *Struct:
		return "struct"
	case *Enum:
		return "enum"
	case *Flag:
		return "flag"
	default:
		return "unknown"
	}
}
