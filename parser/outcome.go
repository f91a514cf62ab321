package parser

import (
	"github.com/ava12/combo"
	"github.com/ava12/combo/cursor"
)

// Kind classifies failures. Kind values are error codes of combo.SyntaxErrors class.
type Kind int

const (
	// NoMatch means that nothing was consumed relative to the entry cursor, enclosing choice may try
	// the next alternative.
	NoMatch Kind = combo.SyntaxErrors + iota

	// PartialMatch means that some input was consumed before failing, enclosing choice commits to it.
	PartialMatch

	// RecursionError means that a parser was re-entered at the same position without consuming input.
	RecursionError

	// ZeroWidthError means that a repeated parser succeeded without consuming input.
	ZeroWidthError

	// TrailingInput is reported by ParseAll when input remains after a successful parse.
	TrailingInput

	// Aborted is reported when a parser created by Abort was applied.
	Aborted
)

// Logic error codes, raised as panics carrying *combo.Error.
const (
	ValueOfFailureError = combo.SyntaxErrors + 10 + iota
	CastOfSuccessError
	UnsetRefError
	RefAlreadySetError
	NotRefError
	EmptyChoiceError
	BadRepeatRangeError
)

var kindNames = map[Kind]string{
	NoMatch:        "no match",
	PartialMatch:   "partial match",
	RecursionError: "recursion",
	ZeroWidthError: "zero-width repetition",
	TrailingInput:  "trailing input",
	Aborted:        "aborted",
}

func (k Kind) String() string {
	name, f := kindNames[k]
	if !f {
		return "unknown"
	}
	return name
}

// Failure describes why a parser did not match.
type Failure[S any] struct {
	kind     Kind
	at       cursor.Cursor[S]
	expected string
	cause    *Failure[S]
	combined []*Failure[S]
	err      error
}

// NewFailure creates a failure of given kind at cursor at.
// Custom handlers normally use NoMatch kind, the enclosing application reclassifies it when needed.
func NewFailure[S any](kind Kind, at cursor.Cursor[S], expected string, cause *Failure[S]) *Failure[S] {
	return &Failure[S]{kind: kind, at: at, expected: expected, cause: cause}
}

func (f *Failure[S]) Kind() Kind {
	return f.kind
}

// At returns the cursor where the failure happened.
func (f *Failure[S]) At() cursor.Cursor[S] {
	return f.at
}

// Expected returns description of what was expected.
func (f *Failure[S]) Expected() string {
	return f.expected
}

// Cause returns the failure this one was derived from, or nil.
func (f *Failure[S]) Cause() *Failure[S] {
	return f.cause
}

// Combined returns failures of all alternatives of a choice that failed without consuming input.
func (f *Failure[S]) Combined() []*Failure[S] {
	return f.combined
}

// Consumed reports whether input was consumed before failing.
func (f *Failure[S]) Consumed() bool {
	return f.kind != NoMatch
}

// Fatal reports whether the failure must never be recovered by choices, optional parsers, or fallbacks.
func (f *Failure[S]) Fatal() bool {
	return f.kind == RecursionError || f.kind == ZeroWidthError || f.kind == Aborted
}

// Unwrap returns the error passed to Abort.
func (f *Failure[S]) Unwrap() error {
	return f.err
}

func (f *Failure[S]) withKind(k Kind) *Failure[S] {
	res := *f
	res.kind = k
	return &res
}

// commit reclassifies NoMatch failure as PartialMatch if it happened after entry position.
func commit[S any](f *Failure[S], entry cursor.Cursor[S]) *Failure[S] {
	if f.kind == NoMatch && f.at.Pos() != entry.Pos() {
		return f.withKind(PartialMatch)
	}
	return f
}

// Outcome is the result of applying a parser: either a value with the next cursor, or a failure.
type Outcome[S, V any] struct {
	value V
	next  cursor.Cursor[S]
	fail  *Failure[S]
}

// Success creates successful outcome.
func Success[S, V any](value V, next cursor.Cursor[S]) Outcome[S, V] {
	return Outcome[S, V]{value: value, next: next}
}

// Failed creates failed outcome. f must not be nil.
func Failed[S, V any](f *Failure[S]) Outcome[S, V] {
	return Outcome[S, V]{next: f.at, fail: f}
}

func (o Outcome[S, V]) IsSuccess() bool {
	return o.fail == nil
}

// Value returns parsed value. Panics if the outcome is a failure.
func (o Outcome[S, V]) Value() V {
	if o.fail != nil {
		panic(combo.FormatError(ValueOfFailureError, "value requested from failed outcome: %s", o.fail.Error()))
	}
	return o.value
}

// Next returns the cursor after parsed input, or the failing cursor.
func (o Outcome[S, V]) Next() cursor.Cursor[S] {
	return o.next
}

// Failure returns the failure or nil.
func (o Outcome[S, V]) Failure() *Failure[S] {
	return o.fail
}

// Err returns nil on success or *combo.Error describing the failure.
func (o Outcome[S, V]) Err() error {
	if o.fail == nil {
		return nil
	}
	return o.fail.Err()
}

// MapOutcome transforms successful value, failures are passed through.
func MapOutcome[S, V, W any](o Outcome[S, V], f func(V) W) Outcome[S, W] {
	if o.fail != nil {
		return Failed[S, W](o.fail)
	}
	return Success(f(o.value), o.next)
}

// Cast re-views a failed outcome as an outcome of another value type. Panics on success.
func Cast[W, S, V any](o Outcome[S, V]) Outcome[S, W] {
	if o.fail == nil {
		panic(combo.FormatError(CastOfSuccessError, "cannot cast successful outcome"))
	}
	return Failed[S, W](o.fail)
}
