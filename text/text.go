// Package text contains rune-level parsers built from parser.Satisfy and parser.New.
package text

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/ava12/combo/cursor"
	"github.com/ava12/combo/parser"
	"github.com/ava12/combo/source"
)

// Parse parses input string named name with p, not requiring all input to be consumed.
func Parse[V any](p *parser.Parser[rune, V], name, input string, opts ...parser.Option) parser.Outcome[rune, V] {
	return p.Parse(cursor.NewText(source.NewString(name, input)), opts...)
}

// ParseAll parses input string named name with p, failing if input remains.
func ParseAll[V any](p *parser.Parser[rune, V], name, input string, opts ...parser.Option) parser.Outcome[rune, V] {
	return p.ParseAll(cursor.NewText(source.NewString(name, input)), opts...)
}

// Rune matches rune r.
func Rune(r rune) *parser.Parser[rune, rune] {
	return parser.Satisfy(func(c rune) bool { return c == r }, strconv.QuoteRune(r))
}

// RuneIn matches any rune of set.
func RuneIn(set string) *parser.Parser[rune, rune] {
	return parser.Satisfy(func(c rune) bool { return strings.ContainsRune(set, c) }, "one of "+strconv.Quote(set))
}

// RuneNotIn matches any rune not in set.
func RuneNotIn(set string) *parser.Parser[rune, rune] {
	return parser.Satisfy(func(c rune) bool { return !strings.ContainsRune(set, c) }, "none of "+strconv.Quote(set))
}

// Letter matches a Unicode letter.
func Letter() *parser.Parser[rune, rune] {
	return parser.Satisfy(unicode.IsLetter, "letter")
}

// Digit matches a decimal digit.
func Digit() *parser.Parser[rune, rune] {
	return parser.Satisfy(func(c rune) bool { return c >= '0' && c <= '9' }, "digit")
}

// Space matches a whitespace rune.
func Space() *parser.Parser[rune, rune] {
	return parser.Satisfy(unicode.IsSpace, "whitespace")
}

// Spaces matches zero or more whitespace runes.
func Spaces() *parser.Parser[rune, string] {
	return parser.Map(parser.ZeroOrMore(Space()), func(rs []rune) string { return string(rs) })
}

// Token returns p followed by optional whitespace.
func Token[V any](p *parser.Parser[rune, V]) *parser.Parser[rune, V] {
	return p.ThenSkip(Spaces())
}

func matchRunes(at cursor.Cursor[rune], expected []rune, fold func(rune) rune) (cursor.Cursor[rune], bool) {
	for _, r := range expected {
		if at.AtEnd() || fold(at.Current()) != r {
			return at, false
		}
		at = at.Advance()
	}
	return at, true
}

func noFold(r rune) rune {
	return r
}

// String matches s as a whole: if s does not match nothing is consumed.
func String(s string) *parser.Parser[rune, string] {
	expected := strconv.Quote(s)
	runes := []rune(s)
	return parser.New(expected, func(_ *parser.Context[rune], at cursor.Cursor[rune]) parser.Outcome[rune, string] {
		next, ok := matchRunes(at, runes, noFold)
		if !ok {
			return parser.Failed[rune, string](parser.NewFailure(parser.NoMatch, at, expected, nil))
		}
		return parser.Success(s, next)
	})
}

// StringFold matches s ignoring case (using Unicode case folding) and returns matched text.
func StringFold(s string) *parser.Parser[rune, string] {
	folded := []rune(cases.Fold().String(s))
	expected := fmt.Sprintf("%q (any case)", s)
	// Caser is stateful, so a new one is made per rune
	foldRune := func(r rune) rune {
		fr := []rune(cases.Fold().String(string(r)))
		if len(fr) != 1 {
			return r
		}
		return fr[0]
	}

	return parser.New(expected, func(_ *parser.Context[rune], at cursor.Cursor[rune]) parser.Outcome[rune, string] {
		next, ok := matchRunes(at, folded, foldRune)
		if !ok {
			return parser.Failed[rune, string](parser.NewFailure(parser.NoMatch, at, expected, nil))
		}
		return parser.Success(Slice(at, next), next)
	})
}

// Slice returns the text between cursors from and to of the same sequence.
func Slice(from, to cursor.Cursor[rune]) string {
	if t, f := from.(cursor.Text); f {
		if tt, f := to.(cursor.Text); f {
			return t.Rest()[:tt.Offset()-t.Offset()]
		}
	}

	var sb strings.Builder
	for at := from; at.Pos() < to.Pos(); at = at.Advance() {
		sb.WriteRune(at.Current())
	}
	return sb.String()
}
