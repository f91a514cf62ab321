package parser_test

import (
	"testing"

	"github.com/ava12/combo/internal/test"
	"github.com/ava12/combo/parser"
	"github.com/ava12/combo/text"
)

func TestOrderedChoice(t *testing.T) {
	p := parser.OneOf(text.String("a"), text.String("ab"))
	o := parse(p, "ab")
	test.ExpectString(t, "a", o.Value())
	test.ExpectInt(t, 1, o.Next().Pos())

	p = text.String("ab").Or(text.String("a"))
	test.ExpectString(t, "ab", parse(p, "ab").Value())
}

func TestChoiceCombinesNoMatch(t *testing.T) {
	p := parser.OneOf(text.String("a"), text.String("b"), text.String("c"))
	test.ExpectString(t, `one of "a", "b", "c"`, p.Expected())

	o := parse(p, "x")
	expectKind(t, parser.NoMatch, o)
	test.ExpectInt(t, 3, len(o.Failure().Combined()))
	test.ExpectString(t, `"b"`, o.Failure().Combined()[1].Expected())
}

func TestEmptyChoicePanics(t *testing.T) {
	expectPanicCode(t, parser.EmptyChoiceError, func() { parser.OneOf[rune, int]() })
}

func ifThen() *parser.Parser[rune, string] {
	return parser.SkipThen(text.String("if"), parser.Fail[rune, string]("condition"))
}

func TestChoiceCommitsOnPartial(t *testing.T) {
	p := parser.OneOf(ifThen(), text.String("ifelse"))
	o := parse(p, "ifelse")
	expectKind(t, parser.PartialMatch, o)
	test.ExpectInt(t, 2, o.Failure().At().Pos())
}

func TestAttemptRestoresBacktracking(t *testing.T) {
	p := parser.OneOf(ifThen().Attempt(), text.String("ifelse"))
	o := parse(p, "ifelse")
	test.ExpectString(t, "ifelse", o.Value())
	test.ExpectInt(t, 6, o.Next().Pos())

	o = parse(ifThen().Attempt(), "ifelse")
	expectKind(t, parser.NoMatch, o)
	test.ExpectInt(t, 0, o.Next().Pos())
	test.Assert(t, o.Failure().Cause().Kind() == parser.PartialMatch, "cause must keep the partial match")
	test.ExpectInt(t, 2, o.Failure().Cause().At().Pos())
}

func TestAttemptInNestedChoice(t *testing.T) {
	inner := parser.OneOf(ifThen().Attempt(), text.String("iffy"))
	outer := parser.OneOf(inner, text.String("ifelse"))

	o := parse(outer, "ifelse")
	test.ExpectString(t, "ifelse", o.Value())
	test.ExpectInt(t, 6, o.Next().Pos())

	o = parse(outer, "ifx")
	expectKind(t, parser.NoMatch, o)
	test.ExpectInt(t, 0, o.Failure().At().Pos())
	test.ExpectInt(t, 2, len(o.Failure().Combined()))

	innerFail := o.Failure().Combined()[0]
	test.Assert(t, innerFail.Kind() == parser.NoMatch, "got %s", innerFail.Kind())
	test.ExpectInt(t, 2, len(innerFail.Combined()))

	attempted := innerFail.Combined()[0]
	test.Assert(t, attempted.Kind() == parser.NoMatch, "got %s", attempted.Kind())
	test.ExpectInt(t, 0, attempted.At().Pos())
	test.Assert(t, attempted.Cause() != nil && attempted.Cause().Kind() == parser.PartialMatch, "cause must keep the partial match")
	test.ExpectInt(t, 2, attempted.Cause().At().Pos())
	test.ExpectString(t, "condition", attempted.Cause().Expected())

	test.ExpectDiff(t, []string{
		"1:1: expected condition, found 'i'",
		"  1:3: expected condition, found 'x'",
		`1:1: expected "iffy", found 'i'`,
		`1:1: expected "ifelse", found 'i'`,
	}, o.Failure().Lines())
}

func TestAttemptKeepsFatal(t *testing.T) {
	p := parser.Many(parser.Optional(parser.Pure[rune](1))).Attempt()
	expectKind(t, parser.ZeroWidthError, parse(p, "x"))
}

func TestOptional(t *testing.T) {
	p := parser.Optional(text.String("ab"))

	o := parse(p, "ab")
	test.ExpectBool(t, true, o.Value().Ok)
	test.ExpectString(t, "ab", o.Value().Value)

	o = parse(p, "x")
	test.ExpectBool(t, false, o.Value().Ok)
	test.ExpectInt(t, 0, o.Next().Pos())

	ab := parser.Map2(parser.Then(text.String("a"), text.String("b")), func(a, b string) string { return a + b })
	o = parse(parser.Optional(ab), "ax")
	test.ExpectBool(t, false, o.Value().Ok)
	test.ExpectInt(t, 0, o.Next().Pos())
}

func TestOrElse(t *testing.T) {
	p := digit().OrElse(-1)
	test.ExpectInt(t, 7, parse(p, "7").Value())

	o := parse(p, "x")
	test.ExpectInt(t, -1, o.Value())
	test.ExpectInt(t, 0, o.Next().Pos())
}

func TestLookaheadAndNot(t *testing.T) {
	o := parse(text.String("ab").Lookahead(), "ab")
	test.ExpectString(t, "ab", o.Value())
	test.ExpectInt(t, 0, o.Next().Pos())
	expectKind(t, parser.NoMatch, parse(text.String("ab").Lookahead(), "ax"))

	not := text.Rune('a').Not()
	o2 := parse(not, "b")
	test.Assert(t, o2.IsSuccess(), "unexpected failure: %v", o2.Err())
	test.ExpectInt(t, 0, o2.Next().Pos())
	expectKind(t, parser.NoMatch, parse(not, "a"))
}
