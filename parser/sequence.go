package parser

import (
	"github.com/ava12/combo/cursor"
)

// Map returns a parser transforming the value of p with f.
func Map[S, V, W any](p *Parser[S, V], f func(V) W) *Parser[S, W] {
	return New(p.Expected(), func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, W] {
		return MapOutcome(Apply(ctx, p, at), f)
	})
}

// Value returns a parser yielding v whenever p succeeds.
func Value[S, V, W any](p *Parser[S, V], v W) *Parser[S, W] {
	return Map(p, func(V) W { return v })
}

// Bind applies p, then the parser produced by f from the value of p.
// A NoMatch failure of the second parser is reported as PartialMatch if p consumed input.
func Bind[S, A, B any](p *Parser[S, A], f func(A) *Parser[S, B]) *Parser[S, B] {
	return New(p.Expected(), func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, B] {
		oa := Apply(ctx, p, at)
		if oa.fail != nil {
			return Cast[B](oa)
		}

		ob := Apply(ctx, f(oa.value), oa.next)
		if ob.fail != nil {
			return Failed[S, B](commit(ob.fail, at))
		}
		return ob
	})
}

// Ap applies pf, then pa, and calls the function produced by pf with the value of pa.
// It is the step the N-ary builder is made of.
func Ap[S, A, R any](pf *Parser[S, func(A) R], pa *Parser[S, A]) *Parser[S, R] {
	return New(pf.Expected(), func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, R] {
		of := Apply(ctx, pf, at)
		if of.fail != nil {
			return Cast[R](of)
		}

		oa := Apply(ctx, pa, of.next)
		if oa.fail != nil {
			return Failed[S, R](commit(oa.fail, at))
		}
		return Success(of.value(oa.value), oa.next)
	})
}

// ThenSkip returns a parser applying p, then rules in order, keeping the value of p.
func (p *Parser[S, V]) ThenSkip(rules ...Rule[S]) *Parser[S, V] {
	rules = append([]Rule[S](nil), rules...)
	return New(p.Expected(), func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		o := Apply(ctx, p, at)
		if o.fail != nil {
			return o
		}

		next := o.next
		for _, r := range rules {
			n, f := r.skip(ctx, next)
			if f != nil {
				return Failed[S, V](commit(f, at))
			}
			next = n
		}
		return Success(o.value, next)
	})
}

// SkipThen returns a parser applying first, then p, keeping the value of p.
func SkipThen[S, V any](first Rule[S], p *Parser[S, V]) *Parser[S, V] {
	return New(first.Expected(), func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		next, f := first.skip(ctx, at)
		if f != nil {
			return Failed[S, V](f)
		}

		o := Apply(ctx, p, next)
		if o.fail != nil {
			return Failed[S, V](commit(o.fail, at))
		}
		return o
	})
}

// Between returns a parser for p enclosed in open and close.
func (p *Parser[S, V]) Between(open, close Rule[S]) *Parser[S, V] {
	return SkipThen(open, p.ThenSkip(close))
}

// Trim returns a parser for p surrounded by ws on both sides.
func (p *Parser[S, V]) Trim(ws Rule[S]) *Parser[S, V] {
	return p.Between(ws, ws)
}

// Sequence returns a parser applying ps in order and collecting their values.
func Sequence[S, V any](ps ...*Parser[S, V]) *Parser[S, []V] {
	ps = append([]*Parser[S, V](nil), ps...)
	expected := "nothing"
	if len(ps) > 0 {
		expected = ps[0].Expected()
	}

	return New(expected, func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, []V] {
		res := make([]V, 0, len(ps))
		next := at
		for _, p := range ps {
			o := Apply(ctx, p, next)
			if o.fail != nil {
				return Failed[S, []V](commit(o.fail, at))
			}
			res = append(res, o.value)
			next = o.next
		}
		return Success(res, next)
	})
}
