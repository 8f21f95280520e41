package decl

import "iter"

// VariantPaths yields every constructible shape of d with the path used to
// name it in a match pattern: the struct itself under its own name, or each
// enum case under "Enum::Case", in declaration order. Flags yield nothing.
//
// The sequence holds no state between iterations and can be ranged over any
// number of times.
func VariantPaths(d Decl) iter.Seq2[*Struct, string] {
	return func(yield func(*Struct, string) bool) {
		switch d := d.(type) {
		case *Struct:
			yield(d, d.Name)
		case *Enum:
			for _, c := range d.Variants {
				if !yield(c, d.Name+"::"+c.Name) {
					return
				}
			}
		}
	}
}
