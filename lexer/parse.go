package lexer

import (
	"strconv"

	"github.com/ava12/combo/cursor"
	"github.com/ava12/combo/parser"
	"github.com/ava12/combo/source"
)

// OfType returns a parser matching a token with given type name.
func OfType(typeName string) *parser.Parser[*Token, *Token] {
	return parser.Satisfy(func(t *Token) bool {
		return t.typeName == typeName
	}, typeName)
}

// Literal returns a parser matching a token with given text.
func Literal(text string) *parser.Parser[*Token, *Token] {
	return parser.Satisfy(func(t *Token) bool {
		return t.text == text
	}, strconv.Quote(text))
}

// Text returns a parser yielding the text of tokens matched by p.
func Text(p *parser.Parser[*Token, *Token]) *parser.Parser[*Token, string] {
	return parser.Map(p, (*Token).Text)
}

// ParseAll tokenizes src with l and applies p to all tokens.
// Returns *combo.Error on lexical error or parse failure.
func ParseAll[V any](l *Lexer, p *parser.Parser[*Token, V], src *source.Source, opts ...parser.Option) (V, error) {
	var zero V
	tokens, e := l.Tokenize(src)
	if e != nil {
		return zero, e
	}

	o := p.ParseAll(cursor.NewSlice(tokens), opts...)
	if !o.IsSuccess() {
		return zero, o.Err()
	}
	return o.Value(), nil
}
