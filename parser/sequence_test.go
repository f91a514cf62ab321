package parser_test

import (
	"strings"
	"testing"

	"github.com/ava12/combo/internal/test"
	"github.com/ava12/combo/parser"
	"github.com/ava12/combo/text"
)

func TestMapAndValue(t *testing.T) {
	test.ExpectInt(t, 7, parse(digit(), "7").Value())
	test.ExpectBool(t, true, parse(parser.Value(text.String("yes"), true), "yes").Value())
}

func TestBind(t *testing.T) {
	counted := parser.Bind(digit(), func(n int) *parser.Parser[rune, []rune] {
		return parser.Repeat(parser.Any[rune](), n)
	})

	o := parse(counted, "3abcd")
	test.ExpectString(t, "abc", string(o.Value()))
	test.ExpectInt(t, 4, o.Next().Pos())
	expectKind(t, parser.PartialMatch, parse(counted, "3ab"))
	expectKind(t, parser.NoMatch, parse(counted, "x"))
}

func TestAp(t *testing.T) {
	inc := parser.Value(text.Rune('+'), func(n int) int { return n + 1 })
	o := parse(parser.Ap(inc, digit()), "+4")
	test.ExpectInt(t, 5, o.Value())
	expectKind(t, parser.PartialMatch, parse(parser.Ap(inc, digit()), "+x"))
}

func TestSkipping(t *testing.T) {
	o := parse(digit().ThenSkip(text.Rune(';'), text.Spaces()), "1;  2")
	test.ExpectInt(t, 1, o.Value())
	test.ExpectInt(t, 4, o.Next().Pos())

	expectKind(t, parser.PartialMatch, parse(digit().ThenSkip(text.Rune(';')), "1,"))

	o = parse(parser.SkipThen(text.Rune('#'), digit()), "#5")
	test.ExpectInt(t, 5, o.Value())
	expectKind(t, parser.NoMatch, parse(parser.SkipThen(text.Rune('#'), digit()), "5"))

	test.ExpectInt(t, 5, parseAll(digit().Between(text.Rune('['), text.Rune(']')), "[5]").Value())
	test.ExpectInt(t, 5, parseAll(digit().Trim(text.Spaces()), "  5 ").Value())
}

func TestSequence(t *testing.T) {
	p := parser.Sequence(text.String("a"), text.String("b"), text.String("c"))
	o := parse(p, "abcd")
	test.ExpectDiff(t, []string{"a", "b", "c"}, o.Value())
	test.ExpectInt(t, 3, o.Next().Pos())
	expectKind(t, parser.PartialMatch, parse(p, "abd"))

	empty := parse(parser.Sequence[rune, string](), "x")
	test.ExpectInt(t, 0, len(empty.Value()))
}

func TestBuilder(t *testing.T) {
	letter := parser.Map(text.Letter(), func(r rune) string { return string(r) })
	join := func(ss ...string) string { return strings.Join(ss, "") }

	s2 := parser.Then(letter, letter)
	s3 := parser.Then3(s2, letter)
	s4 := parser.Then4(s3, letter)
	s5 := parser.Then5(s4, letter)
	s6 := parser.Then6(s5, letter)
	s7 := parser.Then7(s6, letter)
	s8 := parser.Then8(s7, digit())

	test.ExpectString(t, "ab", parse(parser.Map2(s2, func(a, b string) string { return join(a, b) }), "abcdefgh").Value())
	test.ExpectString(t, "abc", parse(parser.Map3(s3, func(a, b, c string) string { return join(a, b, c) }), "abc").Value())

	m8 := parser.Map8(s8, func(a, b, c, d, e, f, g string, n int) string {
		return strings.Repeat(join(a, b, c, d, e, f, g), n)
	})
	o := parse(m8, "abcdefg2")
	test.ExpectString(t, "abcdefgabcdefg", o.Value())
	test.ExpectInt(t, 8, o.Next().Pos())

	o = parse(m8, "abcdefgh")
	expectKind(t, parser.PartialMatch, o)
	test.ExpectInt(t, 7, o.Failure().At().Pos())
	expectKind(t, parser.NoMatch, parse(m8, "1"))
}

func TestBuilderThenSkip(t *testing.T) {
	p := parser.Map3(
		parser.Then3(parser.Then(digit(), text.Rune('+')).ThenSkip(text.Spaces()), digit()).ThenSkip(text.Rune(';')),
		func(a int, _ rune, b int) int { return a + b },
	)

	o := parse(p, "1+  2;")
	test.ExpectInt(t, 3, o.Value())
	test.ExpectInt(t, 6, o.Next().Pos())
	expectKind(t, parser.PartialMatch, parse(p, "1+2"))
}
