// Package cursor defines immutable input positions used by parsers.
//
// A cursor never changes: Advance and AdvanceBy return new cursors. Three forms are provided:
// Slice (array-backed, any symbol type), Text (string-backed runes with line and column
// information), and Stream (pulls symbols on demand and keeps a bounded window, see Stream).
package cursor

import (
	"github.com/ava12/combo"
)

// Error codes used by cursors. Cursor errors are contract violations and are raised as panics
// carrying *combo.Error, they are never reported as parse failures.
const (
	// EndOfInputError indicates that Current was called on a cursor at end of input.
	EndOfInputError = combo.CursorErrors + iota

	// RewoundError indicates that a stream cursor was read at a position dropped from its window.
	RewoundError

	// NegativeAdvanceError indicates a negative AdvanceBy argument.
	NegativeAdvanceError
)

// Cursor is an immutable position in a sequence of symbols.
type Cursor[S any] interface {
	// AtEnd reports whether there are no symbols at this position.
	AtEnd() bool

	// Current returns the symbol at this position. Panics if AtEnd is true.
	Current() S

	// Pos returns zero-based symbol index, it grows by one with each Advance.
	Pos() int

	// Advance returns the cursor for the next position, or the same position at end of input.
	Advance() Cursor[S]

	// AdvanceBy returns the cursor n symbols ahead, stopping at end of input.
	AdvanceBy(n int) Cursor[S]

	// Origin returns a comparable value identifying the underlying sequence.
	Origin() any
}

// TextPos is implemented by cursors that know line and column of their position.
type TextPos interface {
	combo.SourcePos

	// Snippet returns the whole line containing the position.
	Snippet() string
}

// SamePlace reports whether both cursors point to the same position of the same sequence.
func SamePlace[S any](a, b Cursor[S]) bool {
	return a.Pos() == b.Pos() && a.Origin() == b.Origin()
}

// PosOf returns text position information for c if available.
// Falls back to the current symbol when it implements combo.SourcePos (e.g. lexer tokens).
func PosOf[S any](c Cursor[S]) (combo.SourcePos, bool) {
	if sp, f := c.(combo.SourcePos); f {
		return sp, true
	}

	if !c.AtEnd() {
		if sp, f := any(c.Current()).(combo.SourcePos); f {
			return sp, true
		}
	}

	return nil, false
}

func endOfInputError(pos int) *combo.Error {
	return combo.FormatError(EndOfInputError, "current symbol requested at end of input (position %d)", pos)
}

func negativeAdvanceError(n int) *combo.Error {
	return combo.FormatError(NegativeAdvanceError, "cannot advance by %d symbols", n)
}
