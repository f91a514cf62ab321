package text

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ava12/combo/cursor"
	"github.com/ava12/combo/parser"
)

const maxHintDistance = 3

const identExpr = `[\p{L}_][\p{L}\p{N}_]*`

// Ident matches an identifier: a letter or underscore followed by letters, digits, and underscores.
func Ident() *parser.Parser[rune, string] {
	return Regexp(identExpr).Named("identifier")
}

// closest returns candidates nearest to word by edit distance, if any is closer than maxHintDistance.
func closest(word string, candidates []string) []string {
	minDistance := maxHintDistance
	var res []string
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(word, c)
		switch {
		case d >= maxHintDistance:
		case d < minDistance:
			res = []string{c}
			minDistance = d
		case d == minDistance:
			res = append(res, c)
		}
	}
	slices.Sort(res)
	return res
}

// Keyword matches a whole identifier equal to one of words. If an identifier is found
// but is not a keyword, the failure suggests the closest keywords.
func Keyword(words ...string) *parser.Parser[rune, string] {
	words = slices.Clone(words)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = strconv.Quote(w)
	}
	expected := "keyword " + strings.Join(quoted, " or ")
	ident := Regexp(identExpr)

	return parser.New(expected, func(ctx *parser.Context[rune], at cursor.Cursor[rune]) parser.Outcome[rune, string] {
		o := parser.Apply(ctx, ident, at)
		if !o.IsSuccess() {
			return parser.Failed[rune, string](parser.NewFailure(parser.NoMatch, at, expected, nil))
		}

		word := o.Value()
		if slices.Contains(words, word) {
			return o
		}

		exp := expected
		if hints := closest(word, words); len(hints) > 0 {
			exp = fmt.Sprintf("%s (did you mean %q?)", expected, hints[0])
		}
		return parser.Failed[rune, string](parser.NewFailure(parser.NoMatch, at, exp, nil))
	})
}
