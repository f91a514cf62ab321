package parser

import (
	"fmt"
	"math"

	"github.com/ava12/combo"
	"github.com/ava12/combo/cursor"
)

// Unlimited is the maximum repetition count meaning "no limit".
const Unlimited = math.MaxInt

// repeat is the primitive behind all repetition combinators.
// Each iteration first tries term (if not nil): its success ends the loop and is consumed.
// Otherwise p is applied. A NoMatch of p ends the loop if no terminator is expected and
// at least min values are collected. Other failures of p are propagated.
// An iteration that succeeds without consuming input fails with ZeroWidthError.
func repeat[S, V any](p *Parser[S, V], min, max int, term Rule[S]) *Parser[S, []V] {
	if min < 0 || max < min {
		panic(combo.FormatError(BadRepeatRangeError, "wrong repetition range [%d, %d]", min, max))
	}

	expected := p.Expected()
	switch {
	case term != nil:
		expected = fmt.Sprintf("%s until %s", p.Expected(), term.Expected())
	case min == max:
		expected = fmt.Sprintf("%d of %s", min, p.Expected())
	case min > 1:
		expected = fmt.Sprintf("at least %d of %s", min, p.Expected())
	}

	return New(expected, func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, []V] {
		var res []V
		next := at
		for {
			var termFail *Failure[S]
			if term != nil {
				n, f := term.skip(ctx, next)
				if f == nil {
					if len(res) < min {
						return Failed[S, []V](commit(NewFailure(NoMatch, next, p.Expected(), nil), at))
					}
					return Success(res, n)
				}
				if f.Fatal() {
					return Failed[S, []V](f)
				}
				termFail = f
			}

			if len(res) >= max {
				if termFail != nil {
					return Failed[S, []V](commit(termFail, at))
				}
				return Success(res, next)
			}

			o := Apply(ctx, p, next)
			if o.fail != nil {
				if o.fail.kind != NoMatch {
					return Failed[S, []V](o.fail)
				}
				if termFail != nil {
					f := NewFailure(NoMatch, next, expected, nil)
					f.combined = []*Failure[S]{termFail, o.fail}
					return Failed[S, []V](commit(f, at))
				}
				if len(res) >= min {
					return Success(res, next)
				}
				return Failed[S, []V](commit(o.fail, at))
			}

			if o.next.Pos() == next.Pos() {
				return Failed[S, []V](NewFailure(ZeroWidthError, next, p.Expected(), nil))
			}

			res = append(res, o.value)
			next = o.next
		}
	})
}

// ZeroOrMore returns a parser applying p while it matches. Always succeeds unless p fails after consuming input.
func ZeroOrMore[S, V any](p *Parser[S, V]) *Parser[S, []V] {
	return repeat[S, V](p, 0, Unlimited, nil)
}

// OneOrMore returns a parser applying p while it matches, at least once.
func OneOrMore[S, V any](p *Parser[S, V]) *Parser[S, []V] {
	return repeat[S, V](p, 1, Unlimited, nil)
}

// Many is OneOrMore.
func Many[S, V any](p *Parser[S, V]) *Parser[S, []V] {
	return OneOrMore(p)
}

// Repeat returns a parser applying p exactly n times.
func Repeat[S, V any](p *Parser[S, V], n int) *Parser[S, []V] {
	return repeat[S, V](p, n, n, nil)
}

// RepeatRange returns a parser applying p from min to max times. Use Unlimited for no upper bound.
func RepeatRange[S, V any](p *Parser[S, V], min, max int) *Parser[S, []V] {
	return repeat[S, V](p, min, max, nil)
}

// ZeroOrMoreUntil returns a parser applying p until term matches. term is consumed, but its value is discarded.
func ZeroOrMoreUntil[S, V any](p *Parser[S, V], term Rule[S]) *Parser[S, []V] {
	return repeat(p, 0, Unlimited, term)
}

// OneOrMoreUntil is ZeroOrMoreUntil requiring at least one value.
func OneOrMoreUntil[S, V any](p *Parser[S, V], term Rule[S]) *Parser[S, []V] {
	return repeat(p, 1, Unlimited, term)
}

// SepBy returns a parser for zero or more p separated by sep.
func SepBy[S, V any](p *Parser[S, V], sep Rule[S]) *Parser[S, []V] {
	return SepBy1(p, sep).Otherwise(nil)
}

// SepBy1 returns a parser for one or more p separated by sep.
func SepBy1[S, V any](p *Parser[S, V], sep Rule[S]) *Parser[S, []V] {
	return Map2(Then(p, ZeroOrMore(SkipThen(sep, p))), func(first V, rest []V) []V {
		return append([]V{first}, rest...)
	})
}

// Otherwise returns a parser yielding v without consuming input if p fails with NoMatch.
// Unlike OrElse, failures of p that consumed input are propagated.
func (p *Parser[S, V]) Otherwise(v V) *Parser[S, V] {
	return New(p.Expected(), func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		o := Apply(ctx, p, at)
		if o.fail != nil && o.fail.kind == NoMatch {
			return Success(v, at)
		}
		return o
	})
}
