package parser_test

import (
	"testing"

	"github.com/ava12/combo/internal/test"
	"github.com/ava12/combo/parser"
	"github.com/ava12/combo/text"
)

func TestRepetition(t *testing.T) {
	a := text.Rune('a')
	samples := []struct {
		p     *parser.Parser[rune, []rune]
		input string
		count int
		next  int
	}{
		{parser.ZeroOrMore(a), "", 0, 0},
		{parser.ZeroOrMore(a), "aab", 2, 2},
		{parser.OneOrMore(a), "aaa", 3, 3},
		{parser.Many(a), "ab", 1, 1},
		{parser.Repeat(a, 2), "aaa", 2, 2},
		{parser.RepeatRange(a, 1, 2), "aaa", 2, 2},
		{parser.RepeatRange(a, 0, parser.Unlimited), "aaaa", 4, 4},
		{parser.ZeroOrMoreUntil(a, text.Rune(';')), "aa;a", 2, 3},
		{parser.ZeroOrMoreUntil(a, text.Rune(';')), ";", 0, 1},
		{parser.OneOrMoreUntil(a, text.Rune(';')), "a;", 1, 2},
	}

	for i, s := range samples {
		o := parse(s.p, s.input)
		test.Assert(t, o.IsSuccess(), "sample #%d: unexpected failure: %v", i, o.Err())
		test.Assert(t, len(o.Value()) == s.count, "sample #%d: expecting %d items, got %d", i, s.count, len(o.Value()))
		test.Assert(t, o.Next().Pos() == s.next, "sample #%d: expecting position %d, got %d", i, s.next, o.Next().Pos())
	}
}

func TestRepetitionFailures(t *testing.T) {
	a := text.Rune('a')
	samples := []struct {
		p     *parser.Parser[rune, []rune]
		input string
		kind  parser.Kind
	}{
		{parser.OneOrMore(a), "b", parser.NoMatch},
		{parser.Repeat(a, 3), "aab", parser.PartialMatch},
		{parser.ZeroOrMoreUntil(a, text.Rune(';')), "aa", parser.PartialMatch},
		{parser.ZeroOrMoreUntil(a, text.Rune(';')), "", parser.NoMatch},
		{parser.OneOrMoreUntil(a, text.Rune(';')), ";", parser.NoMatch},
		{parser.ZeroOrMore(parser.Pure[rune]('a')), "a", parser.ZeroWidthError},
	}

	for i, s := range samples {
		o := parse(s.p, s.input)
		test.Assert(t, !o.IsSuccess(), "sample #%d: unexpected success", i)
		test.Assert(t, o.Failure().Kind() == s.kind, "sample #%d: expecting %s, got %s", i, s.kind, o.Failure().Kind())
	}
}

func TestZeroWidthRepetition(t *testing.T) {
	o := parse(parser.Many(parser.Optional(parser.Pure[rune](1))), "")
	expectKind(t, parser.ZeroWidthError, o)
	test.ExpectBool(t, true, o.Failure().Fatal())
}

func TestRepeatBodyCommits(t *testing.T) {
	ab := parser.Map2(parser.Then(text.Rune('a'), text.Rune('b')), func(a, b rune) string { return string([]rune{a, b}) })
	o := parse(parser.ZeroOrMore(ab), "ababax")
	expectKind(t, parser.PartialMatch, o)
	test.ExpectInt(t, 5, o.Failure().At().Pos())
}

func TestBadRepeatRange(t *testing.T) {
	expectPanicCode(t, parser.BadRepeatRangeError, func() { parser.RepeatRange(text.Rune('a'), 3, 1) })
	expectPanicCode(t, parser.BadRepeatRangeError, func() { parser.Repeat(text.Rune('a'), -1) })
}

func TestSepBy(t *testing.T) {
	p := parser.SepBy(digit(), text.Rune(','))

	o := parse(p, "1,2,3")
	test.ExpectDiff(t, []int{1, 2, 3}, o.Value())
	test.ExpectInt(t, 5, o.Next().Pos())

	o = parse(p, "x")
	test.ExpectInt(t, 0, len(o.Value()))
	test.ExpectInt(t, 0, o.Next().Pos())

	expectKind(t, parser.PartialMatch, parse(p, "1,"))
	expectKind(t, parser.NoMatch, parse(parser.SepBy1(digit(), text.Rune(',')), "x"))
}
