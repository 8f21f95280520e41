package decl

import (
	"fmt"

	"github.com/teranos/astgen/errors"
)

// ErrAmbiguousKindField is matched (errors.Is) by every error FindKindField
// returns for a struct with more than one #[kind] field.
var ErrAmbiguousKindField = errors.New("ambiguous kind field")

// AmbiguousKindFieldError reports a struct with several fields marked #[kind].
type AmbiguousKindFieldError struct {
	Struct string
	Count  int
}

func (e *AmbiguousKindFieldError) Error() string {
	return fmt.Sprintf("struct %s has %d fields marked #[kind] (expected 0 or 1)", e.Struct, e.Count)
}

func (e *AmbiguousKindFieldError) Is(target error) bool {
	return target == ErrAmbiguousKindField
}

// FindKindField returns the name of the struct's kind discriminant field.
//
// #[no_kind] on the struct disables the lookup. Otherwise exactly one field
// marked #[kind] wins; with none marked, a field literally named "kind" is
// used. Two or more marked fields is a configuration error.
func FindKindField(s *Struct) (string, bool, error) {
	if s.Attrs.Has(AttrNoKind) {
		return "", false, nil
	}

	var marked []string
	for _, f := range s.Fields {
		if f.Attrs.Has(AttrKind) {
			marked = append(marked, f.Name)
		}
	}

	switch {
	case len(marked) == 1:
		return marked[0], true, nil
	case len(marked) > 1:
		err := errors.Mark(&AmbiguousKindFieldError{Struct: s.Name, Count: len(marked)}, ErrAmbiguousKindField)
		return "", false, errors.WithHintf(errors.WithStack(err),
			"keep #[kind] on one of: %v, or add #[no_kind] to %s", marked, s.Name)
	}

	for _, f := range s.Fields {
		if f.Name == AttrKind {
			return f.Name, true, nil
		}
	}
	return "", false, nil
}

// DetectOverride reports whether the declaration opts out of a generator by
// carrying #[opt=custom].
func DetectOverride(d Decl, opt string) bool {
	return d.DeclAttrs().Is(opt, ValueCustom)
}
