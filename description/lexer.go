package description

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokPunct
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of file"
	case tokIdent:
		return "identifier"
	case tokString:
		return "string"
	default:
		return "punctuation"
	}
}

// Pos is a 1-based position in a description file.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

type token struct {
	kind tokenKind
	text string
	pos  Pos
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of file"
	case tokString:
		return fmt.Sprintf("string %q", t.text)
	default:
		return fmt.Sprintf("%q", t.text)
	}
}

const punctuation = "#[]={}(),;"

// lexer splits a description into tokens, skipping whitespace and // comments.
type lexer struct {
	src  string
	off  int
	line int
	col  int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: string(src), line: 1, col: 1}
}

func (l *lexer) peekRune() (rune, int) {
	if l.off >= len(l.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(l.src[l.off:])
}

func (l *lexer) advance() rune {
	r, w := l.peekRune()
	l.off += w
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) skipSpaceAndComments() {
	for l.off < len(l.src) {
		r, _ := l.peekRune()
		switch {
		case unicode.IsSpace(r):
			l.advance()
		case strings.HasPrefix(l.src[l.off:], "//"):
			for l.off < len(l.src) {
				if l.advance() == '\n' {
					break
				}
			}
		default:
			return
		}
	}
}

func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }
func isIdentPart(r rune) bool  { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }

// next returns the next token. Malformed input yields a *SyntaxError.
func (l *lexer) next() (token, error) {
	l.skipSpaceAndComments()
	pos := Pos{Line: l.line, Col: l.col}
	if l.off >= len(l.src) {
		return token{kind: tokEOF, pos: pos}, nil
	}

	r, _ := l.peekRune()
	switch {
	case isIdentStart(r):
		start := l.off
		for l.off < len(l.src) {
			r, _ := l.peekRune()
			if !isIdentPart(r) {
				break
			}
			l.advance()
		}
		return token{kind: tokIdent, text: l.src[start:l.off], pos: pos}, nil

	case r == '"':
		l.advance()
		var sb strings.Builder
		for {
			if l.off >= len(l.src) {
				return token{}, &SyntaxError{Pos: pos, Msg: "unterminated string"}
			}
			c := l.advance()
			switch c {
			case '"':
				return token{kind: tokString, text: sb.String(), pos: pos}, nil
			case '\n':
				return token{}, &SyntaxError{Pos: pos, Msg: "newline in string"}
			case '\\':
				if l.off >= len(l.src) {
					return token{}, &SyntaxError{Pos: pos, Msg: "unterminated string"}
				}
				sb.WriteRune(l.advance())
			default:
				sb.WriteRune(c)
			}
		}

	case strings.ContainsRune(punctuation, r):
		l.advance()
		return token{kind: tokPunct, text: string(r), pos: pos}, nil
	}

	return token{}, &SyntaxError{Pos: pos, Msg: fmt.Sprintf("unexpected character %q", r)}
}
