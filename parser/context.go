package parser

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/ava12/combo/cursor"
)

// DefaultMemoSize is the default capacity of per-parse memo cache used by Memoize.
const DefaultMemoSize = 4096

// ParseEvent describes a finished top-level parse.
type ParseEvent struct {
	// Parser contains the expected description of the root parser.
	Parser string
	// Success tells whether the parse succeeded.
	Success bool
	// Kind contains failure kind, zero on success.
	Kind Kind
	// Consumed contains the number of symbols between start and resulting cursors.
	Consumed int
	// Duration is the wall time spent in the parse.
	Duration time.Duration
}

// Observer receives parse statistics. Implementations must be safe for concurrent use
// if the same observer is passed to concurrent parses.
type Observer interface {
	ObserveParse(e ParseEvent)
	ObserveRecursion(parser string, pos int)
}

type options struct {
	logger   logrus.FieldLogger
	observer Observer
	memoSize int
}

// Option configures a single Parse or ParseAll call.
type Option func(*options)

// WithLogger sets logger used by Trace and by recursion guard. Default is logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithObserver sets parse statistics observer.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithMemoSize sets capacity of memo cache, 0 disables memoization.
func WithMemoSize(size int) Option {
	return func(o *options) {
		if size < 0 {
			size = 0
		}
		o.memoSize = size
	}
}

type guardEntry[S any] struct {
	at     cursor.Cursor[S]
	parser any
}

type memoKey struct {
	parser any
	origin any
	pos    int
}

// Context holds the state of a single top-level parse: the recursion guard stack, memo cache,
// logger, and observer. A new Context is created for every Parse or ParseAll call and is never
// shared between calls, so the same parser graph may be used by concurrent parses.
type Context[S any] struct {
	opts  options
	guard []guardEntry[S]
	memo  *lru.Cache[memoKey, any]
}

func newContext[S any](opts []Option) *Context[S] {
	ctx := &Context[S]{
		opts: options{
			logger:   logrus.StandardLogger(),
			memoSize: DefaultMemoSize,
		},
		guard: make([]guardEntry[S], 0, 16),
	}
	for _, opt := range opts {
		opt(&ctx.opts)
	}
	return ctx
}

// Logger returns the logger of current parse.
func (ctx *Context[S]) Logger() logrus.FieldLogger {
	return ctx.opts.logger
}

// Depth returns the number of parser applications in progress.
func (ctx *Context[S]) Depth() int {
	return len(ctx.guard)
}

func (ctx *Context[S]) entered(p any, at cursor.Cursor[S]) bool {
	for i := len(ctx.guard) - 1; i >= 0; i-- {
		g := &ctx.guard[i]
		if g.parser == p && cursor.SamePlace(g.at, at) {
			return true
		}
	}
	return false
}

func (ctx *Context[S]) memoGet(key memoKey) (any, bool) {
	if ctx.memo == nil {
		return nil, false
	}
	return ctx.memo.Get(key)
}

func (ctx *Context[S]) memoAdd(key memoKey, value any) {
	if ctx.memo == nil {
		if ctx.opts.memoSize == 0 {
			return
		}
		ctx.memo, _ = lru.New[memoKey, any](ctx.opts.memoSize)
	}
	ctx.memo.Add(key, value)
}

// Apply applies p at cursor at within ctx. Custom handlers must use Apply for child parsers.
//
// Every application is recorded on the recursion guard stack of ctx as (position, parser).
// If the same parser is already being applied at the same position the application fails
// with RecursionError instead of re-entering the parser. A NoMatch failure reported at other
// position than at is reclassified as PartialMatch.
func Apply[S, V any](ctx *Context[S], p *Parser[S, V], at cursor.Cursor[S]) Outcome[S, V] {
	if ctx.entered(p, at) {
		ctx.opts.logger.WithFields(logrus.Fields{
			"parser": p.Expected(),
			"pos":    at.Pos(),
		}).Debug("recursion guard tripped")
		if ctx.opts.observer != nil {
			ctx.opts.observer.ObserveRecursion(p.Expected(), at.Pos())
		}
		return Failed[S, V](NewFailure(RecursionError, at, p.Expected(), nil))
	}

	ctx.guard = append(ctx.guard, guardEntry[S]{at, p})
	o := p.handler(ctx, at)
	ctx.guard = ctx.guard[:len(ctx.guard)-1]

	if o.fail != nil {
		o.fail = commit(o.fail, at)
		o.next = o.fail.at
	}
	return o
}
