package text

import (
	"strconv"

	"github.com/ava12/combo/parser"
)

// Int matches an optionally signed decimal integer.
func Int() *parser.Parser[rune, int] {
	return parser.Bind(Regexp(`[-+]?[0-9]+`), func(s string) *parser.Parser[rune, int] {
		v, e := strconv.Atoi(s)
		if e != nil {
			return parser.Fail[rune, int]("integer in range")
		}
		return parser.Pure[rune](v)
	}).Named("integer")
}

// Float matches a decimal floating point number with optional sign, fraction, and exponent.
func Float() *parser.Parser[rune, float64] {
	return parser.Bind(Regexp(`[-+]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?`), func(s string) *parser.Parser[rune, float64] {
		v, e := strconv.ParseFloat(s, 64)
		if e != nil {
			return parser.Fail[rune, float64]("number in range")
		}
		return parser.Pure[rune](v)
	}).Named("number")
}
