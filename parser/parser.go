// Package parser defines composable typed parsers and the combinators building them.
//
// A Parser[S, V] consumes symbols of type S from a cursor.Cursor[S] and produces a value of type V.
// Applying a parser yields an Outcome: a value with the next cursor, or a Failure.
// Failures are classified relative to the cursor where the enclosing parser started:
// NoMatch (nothing consumed) allows an enclosing choice to try further alternatives,
// PartialMatch (something consumed) commits the choice. Attempt converts the latter into the former.
//
// Parsers are immutable once built, except for references created by Ref, which are set exactly once.
// Parsers may be shared between goroutines: all mutable parse state lives in a Context created
// for each Parse or ParseAll call.
package parser

//go:generate go run ../internal/cmd/seqgen -o seq_gen.go

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ava12/combo"
	"github.com/ava12/combo/cursor"
)

// Handler is the function wrapped by a parser.
type Handler[S, V any] func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, V]

// Parser is a typed composable parsing function. Its identity is its address.
type Parser[S, V any] struct {
	expected string
	handler  Handler[S, V]
	isRef    bool
	target   *Parser[S, V]
}

// Rule is implemented by all parsers with symbol type S regardless of their value type.
// It is used where the value of a parser is discarded.
type Rule[S any] interface {
	Expected() string
	skip(ctx *Context[S], at cursor.Cursor[S]) (cursor.Cursor[S], *Failure[S])
}

// New creates a parser from a handler. expected describes what the parser matches, it is used in failures.
func New[S, V any](expected string, h Handler[S, V]) *Parser[S, V] {
	return &Parser[S, V]{expected: expected, handler: h}
}

// Expected returns the description of what the parser matches.
func (p *Parser[S, V]) Expected() string {
	if p.isRef && p.expected == "" {
		if p.target == nil {
			return "unset reference"
		}
		return p.target.Expected()
	}
	return p.expected
}

func (p *Parser[S, V]) skip(ctx *Context[S], at cursor.Cursor[S]) (cursor.Cursor[S], *Failure[S]) {
	o := Apply(ctx, p, at)
	return o.next, o.fail
}

// Named returns a parser with a different description. Failures of p reported at the entry
// position are replaced with a NoMatch expecting name, keeping the original failure as cause.
func (p *Parser[S, V]) Named(name string) *Parser[S, V] {
	return New(name, func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		o := Apply(ctx, p, at)
		if o.fail != nil && o.fail.kind == NoMatch {
			return Failed[S, V](NewFailure(NoMatch, at, name, o.fail))
		}
		return o
	})
}

// Pure returns a parser that always succeeds with v and consumes nothing.
func Pure[S, V any](v V) *Parser[S, V] {
	return New("nothing", func(_ *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		return Success(v, at)
	})
}

// Fail returns a parser that always fails with NoMatch.
func Fail[S, V any](expected string) *Parser[S, V] {
	return New(expected, func(_ *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		return Failed[S, V](NewFailure(NoMatch, at, expected, nil))
	})
}

// Satisfy returns a parser matching a single symbol for which pred returns true.
// It is the primitive all symbol-level parsers are built from.
func Satisfy[S any](pred func(S) bool, expected string) *Parser[S, S] {
	return New(expected, func(_ *Context[S], at cursor.Cursor[S]) Outcome[S, S] {
		if at.AtEnd() {
			return Failed[S, S](NewFailure(NoMatch, at, expected, nil))
		}

		sym := at.Current()
		if !pred(sym) {
			return Failed[S, S](NewFailure(NoMatch, at, expected, nil))
		}
		return Success(sym, at.Advance())
	})
}

// Any returns a parser matching any single symbol.
func Any[S any]() *Parser[S, S] {
	return Satisfy(func(S) bool { return true }, "any symbol")
}

// End returns a parser matching end of input.
func End[S any]() *Parser[S, struct{}] {
	return New("end of input", func(_ *Context[S], at cursor.Cursor[S]) Outcome[S, struct{}] {
		if at.AtEnd() {
			return Success(struct{}{}, at)
		}
		return Failed[S, struct{}](NewFailure(NoMatch, at, "end of input", nil))
	})
}

type abortSignal struct {
	err error
	at  any
}

// Abort returns a parser that stops the whole parse when applied. The parse returns
// a failure of Aborted kind that wraps err. Abort is meant for unrecoverable conditions
// detected by client code, combinators never produce Aborted failures themselves.
func Abort[S, V any](err error) *Parser[S, V] {
	return New("abort", func(_ *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		panic(&abortSignal{err, at})
	})
}

// Ref returns an unset reference. Applying it panics until Set is called.
// References are the way to write self-referential rules:
//
//	expr := parser.Ref[rune, int]()
//	term := parser.OneOf(number, parser.SkipThen(open, expr.ThenSkip(close)))
//	expr.Set(parser.ChainLeft(term, plus))
func Ref[S, V any]() *Parser[S, V] {
	return NamedRef[S, V]("")
}

// NamedRef is Ref described as name instead of the description of the parser it is set to.
// Combinators built before Set see the name, which makes failures of recursive rules readable.
func NamedRef[S, V any](name string) *Parser[S, V] {
	r := &Parser[S, V]{expected: name, isRef: true}
	r.handler = func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		if r.target == nil {
			panic(combo.FormatError(UnsetRefError, "reference is applied before Set"))
		}
		return Apply(ctx, r.target, at)
	}
	return r
}

// Set installs the parser a reference delegates to. Panics if r is not a reference or is already set.
func (r *Parser[S, V]) Set(p *Parser[S, V]) {
	if !r.isRef {
		panic(combo.FormatError(NotRefError, "Set called on %s, which is not a reference", r.Expected()))
	}
	if r.target != nil {
		panic(combo.FormatError(RefAlreadySetError, "reference to %s is already set", r.target.Expected()))
	}
	if p == nil {
		panic(combo.FormatError(UnsetRefError, "reference cannot be set to nil"))
	}

	r.target = p
}

// Parse applies p at cursor at. The input need not be consumed entirely.
func (p *Parser[S, V]) Parse(at cursor.Cursor[S], opts ...Option) Outcome[S, V] {
	return run(newContext[S](opts), p, at, false)
}

// ParseAll applies p at cursor at and fails with TrailingInput if input remains after success.
func (p *Parser[S, V]) ParseAll(at cursor.Cursor[S], opts ...Option) Outcome[S, V] {
	return run(newContext[S](opts), p, at, true)
}

func run[S, V any](ctx *Context[S], p *Parser[S, V], at cursor.Cursor[S], all bool) (o Outcome[S, V]) {
	started := time.Now()

	defer func() {
		if x := recover(); x != nil {
			signal, valid := x.(*abortSignal)
			if !valid {
				panic(x)
			}

			abortedAt, _ := signal.at.(cursor.Cursor[S])
			if abortedAt == nil {
				abortedAt = at
			}
			f := NewFailure(Aborted, abortedAt, p.Expected(), nil)
			f.err = signal.err
			o = Failed[S, V](f)
		}

		if ctx.opts.observer != nil {
			e := ParseEvent{
				Parser:   p.Expected(),
				Success:  o.fail == nil,
				Consumed: o.next.Pos() - at.Pos(),
				Duration: time.Since(started),
			}
			if o.fail != nil {
				e.Kind = o.fail.kind
			}
			ctx.opts.observer.ObserveParse(e)
		}
	}()

	o = Apply(ctx, p, at)
	if all && o.fail == nil && !o.next.AtEnd() {
		o = Failed[S, V](NewFailure(TrailingInput, o.next, "end of input", nil))
	}
	return o
}

// Trace returns a parser logging every application of p at debug level with given name.
func (p *Parser[S, V]) Trace(name string) *Parser[S, V] {
	return New(p.Expected(), func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		log := ctx.Logger().WithFields(logrus.Fields{"parser": name, "pos": at.Pos()})
		log.Debug("enter")
		o := Apply(ctx, p, at)
		if o.fail == nil {
			log.WithField("next", o.next.Pos()).Debug("match")
		} else {
			log.WithFields(logrus.Fields{"kind": o.fail.kind.String(), "at": o.fail.at.Pos()}).Debug("fail")
		}
		return o
	})
}

// Memoize returns a parser caching outcomes of p by position within one parse (packrat parsing).
// Cache capacity is set with WithMemoSize. Recursion failures are never cached since they depend
// on the enclosing applications.
func (p *Parser[S, V]) Memoize() *Parser[S, V] {
	m := &Parser[S, V]{expected: p.Expected()}
	m.handler = func(ctx *Context[S], at cursor.Cursor[S]) Outcome[S, V] {
		key := memoKey{m, at.Origin(), at.Pos()}
		if cached, f := ctx.memoGet(key); f {
			return cached.(Outcome[S, V])
		}

		o := Apply(ctx, p, at)
		if o.fail == nil || o.fail.kind != RecursionError {
			ctx.memoAdd(key, o)
		}
		return o
	}
	return m
}
