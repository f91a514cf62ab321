package parser

import (
	"strings"

	"github.com/ava12/combo"
	"github.com/ava12/combo/cursor"
)

func describeChoice(expected []string) string {
	switch len(expected) {
	case 1:
		return expected[0]
	case 2:
		return expected[0] + " or " + expected[1]
	default:
		return "one of " + strings.Join(expected, ", ")
	}
}

// OneOf returns ordered choice of ps. Alternatives are applied at the same cursor in given order:
// the first success is returned, so is the first failure that consumed input or is fatal.
// If all alternatives fail with NoMatch the result is a NoMatch combining their failures.
// Panics if ps is empty.
func OneOf[S, V any](ps ...*Parser[S, V]) *Parser[S, V] {
	if len(ps) == 0 {
		panic(combo.FormatError(EmptyChoiceError, "choice needs at least one alternative"))
	}

	ps = append([]*Parser[S, V](nil), ps...)
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Expected()
	}
	expected := describeChoice(names)

	return New(expected, func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		fails := make([]*Failure[S], 0, len(ps))
		for _, p := range ps {
			o := Apply(ctx, p, at)
			if o.fail == nil || o.fail.kind != NoMatch {
				return o
			}

			fails = append(fails, o.fail)
		}

		if len(fails) == 1 {
			return Failed[S, V](fails[0])
		}
		f := NewFailure(NoMatch, at, expected, nil)
		f.combined = fails
		return Failed[S, V](f)
	})
}

// Or is OneOf(p, other).
func (p *Parser[S, V]) Or(other *Parser[S, V]) *Parser[S, V] {
	return OneOf(p, other)
}

// Attempt returns a parser that reports PartialMatch failures of p as NoMatch at the entry cursor,
// so an enclosing choice tries its next alternative. The original failure is kept as the cause.
// Fatal failures are passed through.
func (p *Parser[S, V]) Attempt() *Parser[S, V] {
	return New(p.Expected(), func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		o := Apply(ctx, p, at)
		if o.fail != nil && o.fail.kind == PartialMatch {
			return Failed[S, V](NewFailure(NoMatch, at, o.fail.expected, o.fail))
		}
		return o
	})
}

// Opt holds an optional value.
type Opt[V any] struct {
	Value V
	Ok    bool
}

// Optional returns a parser that always succeeds unless p fails fatally.
// On failure of p nothing is consumed and the result has Ok == false.
func Optional[S, V any](p *Parser[S, V]) *Parser[S, Opt[V]] {
	return New("optional "+p.Expected(), func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, Opt[V]] {
		o := Apply(ctx, p, at)
		if o.fail == nil {
			return Success(Opt[V]{o.value, true}, o.next)
		}
		if o.fail.Fatal() {
			return Cast[Opt[V]](o)
		}
		return Success(Opt[V]{}, at)
	})
}

// OrElse returns a parser yielding v without consuming input if p fails non-fatally.
func (p *Parser[S, V]) OrElse(v V) *Parser[S, V] {
	return New(p.Expected(), func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		o := Apply(ctx, p, at)
		if o.fail != nil && !o.fail.Fatal() {
			return Success(v, at)
		}
		return o
	})
}

// Lookahead returns a parser that succeeds with the value of p without consuming input.
// Failures are reported at the entry cursor.
func (p *Parser[S, V]) Lookahead() *Parser[S, V] {
	return New(p.Expected(), func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		o := Apply(ctx, p, at)
		if o.fail == nil {
			return Success(o.value, at)
		}
		if o.fail.Fatal() {
			return o
		}
		return Failed[S, V](NewFailure(NoMatch, at, p.Expected(), o.fail))
	})
}

// Not returns a parser that succeeds without consuming input if p fails non-fatally,
// and fails with NoMatch if p succeeds.
func (p *Parser[S, V]) Not() *Parser[S, struct{}] {
	expected := "not " + p.Expected()
	return New(expected, func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, struct{}] {
		o := Apply(ctx, p, at)
		if o.fail == nil {
			return Failed[S, struct{}](NewFailure(NoMatch, at, expected, nil))
		}
		if o.fail.Fatal() {
			return Cast[struct{}](o)
		}
		return Success(struct{}{}, at)
	})
}
