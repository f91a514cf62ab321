package text

import (
	"io"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/ava12/combo/cursor"
	"github.com/ava12/combo/parser"
)

type runeReader struct {
	at cursor.Cursor[rune]
}

func (r *runeReader) ReadRune() (rune, int, error) {
	if r.at.AtEnd() {
		return 0, 0, io.EOF
	}
	c := r.at.Current()
	r.at = r.at.Advance()
	return c, runeSize(c), nil
}

// runeSize returns UTF-8 length of r, invalid runes count as utf8.RuneError.
func runeSize(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}

// Regexp matches regular expression expr anchored at current position and returns matched text.
// Panics if expr cannot be compiled.
//
// Text cursors are matched directly. Other rune cursors are read through an io.RuneReader;
// the regexp engine may read ahead of the match, so bounded-window streams need a window
// larger than that lookahead.
func Regexp(expr string) *parser.Parser[rune, string] {
	re := regexp.MustCompile(`^(?:` + expr + `)`)
	expected := "text matching " + strconv.Quote(expr)

	return parser.New(expected, func(_ *parser.Context[rune], at cursor.Cursor[rune]) parser.Outcome[rune, string] {
		fail := func() parser.Outcome[rune, string] {
			return parser.Failed[rune, string](parser.NewFailure(parser.NoMatch, at, expected, nil))
		}

		if t, f := at.(cursor.Text); f {
			rest := t.Rest()
			loc := re.FindStringIndex(rest)
			if loc == nil {
				return fail()
			}
			return parser.Success(rest[:loc[1]], cursor.Cursor[rune](t.SkipBytes(loc[1])))
		}

		loc := re.FindReaderIndex(&runeReader{at})
		if loc == nil {
			return fail()
		}

		var runes []rune
		next := at
		for size := 0; size < loc[1]; next = next.Advance() {
			c := next.Current()
			runes = append(runes, c)
			size += runeSize(c)
		}
		return parser.Success(string(runes), next)
	})
}
