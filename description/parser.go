// Package description reads AST descriptions into declaration lists.
//
// The text format declares one item per statement:
//
//	// comment
//	#[rewrite_seq_item] #[list_node_ids=custom]
//	struct Item { ident, #[kind] kind, id, span }
//	struct Lifetime(id, ident);
//	struct Unit;
//	enum ItemKind {
//	    Use(tree),
//	    #[no_kind] Struct { def, generics },
//	    Placeholder,
//	}
//	flag Mutability;
//
// YAML, TOML and JSON descriptions carry the same information; see Load.
package description

import (
	"fmt"

	"github.com/teranos/astgen/decl"
	"github.com/teranos/astgen/errors"
)

// SyntaxError reports malformed description text.
type SyntaxError struct {
	File string
	Pos  Pos
	Msg  string
	Hint string
}

func (e *SyntaxError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s:%s: %s", e.File, e.Pos, e.Msg)
}

// Parse reads the text format. name is used in error positions.
func Parse(name string, src []byte) ([]decl.Decl, error) {
	p := &parser{lex: newLexer(src)}
	decls, err := p.parseFile()
	if err != nil {
		return nil, invalid(name, err)
	}
	return decls, nil
}

// invalid marks err as ErrInvalidDescription, attaching file name and hint
// when err is a *SyntaxError.
func invalid(name string, err error) error {
	var se *SyntaxError
	if !errors.As(err, &se) {
		return errors.Mark(errors.Wrapf(err, "%s", name), errors.ErrInvalidDescription)
	}
	se.File = name
	out := errors.Mark(errors.WithStack(se), errors.ErrInvalidDescription)
	if se.Hint != "" {
		out = errors.WithHint(out, se.Hint)
	}
	return out
}

type parser struct {
	lex    *lexer
	tok    token
	peeked bool
}

func (p *parser) peek() (token, error) {
	if !p.peeked {
		tok, err := p.lex.next()
		if err != nil {
			return token{}, err
		}
		p.tok, p.peeked = tok, true
	}
	return p.tok, nil
}

func (p *parser) take() (token, error) {
	tok, err := p.peek()
	if err != nil {
		return token{}, err
	}
	p.peeked = false
	return tok, nil
}

// accept consumes the next token if it is the punctuation s.
func (p *parser) accept(s string) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	if tok.kind == tokPunct && tok.text == s {
		p.peeked = false
		return true, nil
	}
	return false, nil
}

func (p *parser) expect(s, hint string) (token, error) {
	tok, err := p.take()
	if err != nil {
		return token{}, err
	}
	if tok.kind != tokPunct || tok.text != s {
		return token{}, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("expected %q, found %s", s, tok), Hint: hint}
	}
	return tok, nil
}

func (p *parser) ident(what string) (token, error) {
	tok, err := p.take()
	if err != nil {
		return token{}, err
	}
	if tok.kind != tokIdent {
		return token{}, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("expected %s, found %s", what, tok)}
	}
	return tok, nil
}

func (p *parser) parseFile() ([]decl.Decl, error) {
	var decls []decl.Decl
	for {
		attrs, err := p.parseAttrs()
		if err != nil {
			return nil, err
		}
		tok, err := p.take()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEOF {
			if attrs != nil {
				return nil, &SyntaxError{Pos: tok.pos, Msg: "attributes at end of file", Hint: "attributes must precede a struct, enum or flag"}
			}
			return decls, nil
		}
		if tok.kind != tokIdent {
			return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("expected declaration, found %s", tok), Hint: "declarations start with struct, enum or flag"}
		}

		var d decl.Decl
		switch tok.text {
		case "struct":
			d, err = p.parseStruct(attrs)
		case "enum":
			d, err = p.parseEnum(attrs)
		case "flag":
			d, err = p.parseFlag(attrs)
		default:
			return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("unknown declaration kind %q", tok.text), Hint: "declarations start with struct, enum or flag"}
		}
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
}

// parseAttrs reads any number of #[name] or #[name=value] attributes.
func (p *parser) parseAttrs() (decl.Attrs, error) {
	var attrs decl.Attrs
	for {
		ok, err := p.accept("#")
		if err != nil || !ok {
			return attrs, err
		}
		if _, err := p.expect("[", "attributes are written #[name] or #[name=value]"); err != nil {
			return nil, err
		}
		name, err := p.ident("attribute name")
		if err != nil {
			return nil, err
		}
		var value *string
		if ok, err := p.accept("="); err != nil {
			return nil, err
		} else if ok {
			tok, err := p.take()
			if err != nil {
				return nil, err
			}
			if tok.kind != tokIdent && tok.kind != tokString {
				return nil, &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("expected attribute value, found %s", tok)}
			}
			v := tok.text
			value = &v
		}
		if _, err := p.expect("]", "attributes are written #[name] or #[name=value]"); err != nil {
			return nil, err
		}
		attrs.Set(name.text, value)
	}
}

func (p *parser) parseStruct(attrs decl.Attrs) (*decl.Struct, error) {
	name, err := p.ident("struct name")
	if err != nil {
		return nil, err
	}
	s, err := p.parseShape(name.text, attrs, true)
	if err != nil {
		return nil, err
	}
	if _, err := p.accept(";"); err != nil {
		return nil, err
	}
	return s, nil
}

// parseShape reads the body after a struct or enum case name. Top-level
// structs need a ';' after a tuple body or in place of a body.
func (p *parser) parseShape(name string, attrs decl.Attrs, topLevel bool) (*decl.Struct, error) {
	s := &decl.Struct{Name: name, Attrs: attrs}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.kind == tokPunct && tok.text == "{":
		p.peeked = false
		s.Fields, err = p.parseFields("}")
		return s, err

	case tok.kind == tokPunct && tok.text == "(":
		p.peeked = false
		s.IsTuple = true
		if s.Fields, err = p.parseFields(")"); err != nil {
			return nil, err
		}
		if topLevel {
			if _, err := p.expect(";", fmt.Sprintf("tuple structs end with ';': struct %s(...);", name)); err != nil {
				return nil, err
			}
		}
		return s, nil

	default:
		s.IsTuple = true
		if topLevel {
			if _, err := p.expect(";", fmt.Sprintf("use struct %s; or struct %s { ... }", name, name)); err != nil {
				return nil, err
			}
		}
		return s, nil
	}
}

// parseFields reads a comma separated field list up to and including closer.
func (p *parser) parseFields(closer string) ([]decl.Field, error) {
	var fields []decl.Field
	for {
		if ok, err := p.accept(closer); err != nil || ok {
			return fields, err
		}
		attrs, err := p.parseAttrs()
		if err != nil {
			return nil, err
		}
		name, err := p.ident("field name")
		if err != nil {
			return nil, err
		}
		fields = append(fields, decl.Field{Name: name.text, Attrs: attrs})

		if ok, err := p.accept(","); err != nil {
			return nil, err
		} else if !ok {
			if _, err := p.expect(closer, "separate fields with ','"); err != nil {
				return nil, err
			}
			return fields, nil
		}
	}
}

func (p *parser) parseEnum(attrs decl.Attrs) (*decl.Enum, error) {
	name, err := p.ident("enum name")
	if err != nil {
		return nil, err
	}
	e := &decl.Enum{Name: name.text, Attrs: attrs}
	if _, err := p.expect("{", fmt.Sprintf("enums list their cases in braces: enum %s { A, B(x) }", name.text)); err != nil {
		return nil, err
	}

	for {
		if ok, err := p.accept("}"); err != nil {
			return nil, err
		} else if ok {
			break
		}
		caseAttrs, err := p.parseAttrs()
		if err != nil {
			return nil, err
		}
		caseName, err := p.ident("enum case name")
		if err != nil {
			return nil, err
		}
		c, err := p.parseShape(caseName.text, caseAttrs, false)
		if err != nil {
			return nil, err
		}
		e.Variants = append(e.Variants, c)

		if ok, err := p.accept(","); err != nil {
			return nil, err
		} else if !ok {
			if _, err := p.expect("}", "separate enum cases with ','"); err != nil {
				return nil, err
			}
			break
		}
	}

	if _, err := p.accept(";"); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *parser) parseFlag(attrs decl.Attrs) (*decl.Flag, error) {
	name, err := p.ident("flag name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(";", fmt.Sprintf("flags are declared as flag %s;", name.text)); err != nil {
		return nil, err
	}
	return &decl.Flag{Name: name.text, Attrs: attrs}, nil
}
