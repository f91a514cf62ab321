package cursor

import (
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/ava12/combo"
	"github.com/ava12/combo/internal/queue"
)

type stream[S any] struct {
	next   func() (S, error)
	buf    *queue.Queue[S]
	base   int
	window int
	eof    bool
	err    error
}

func (s *stream[S]) fill(pos int) {
	for !s.eof && s.base+s.buf.Len() <= pos {
		sym, e := s.next()
		if e != nil {
			s.eof = true
			if e != io.EOF {
				s.err = errors.Wrapf(e, "stream read at position %d", s.base+s.buf.Len())
			}
			break
		}

		s.buf.Append(sym)
		if s.window > 0 && s.buf.Len() > s.window {
			s.buf.First()
			s.base++
		}
	}
}

func (s *stream[S]) check(pos int) {
	if pos < s.base {
		panic(combo.FormatError(RewoundError, "stream position %d is out of window (oldest retained position is %d)", pos, s.base))
	}
}

// Stream is a single-pass cursor pulling symbols on demand.
//
// Symbols are kept in a shared window. With a positive window size at most that many symbols are
// retained behind the furthest read point, so a parser backtracking further than that makes the
// cursor panic with a RewoundError *combo.Error instead of silently reading wrong data.
// Grammars parsed from bounded-window streams must not backtrack past the window size.
// A zero window retains everything read so far, giving full backtracking at the cost of memory.
//
// Stream cursors share mutable state and are not safe for concurrent use.
type Stream[S any] struct {
	st  *stream[S]
	pos int
}

// NewStream creates a cursor pulling symbols from next until it returns an error.
// io.EOF marks normal end of input, other errors are available from Err.
func NewStream[S any](next func() (S, error), window int) Stream[S] {
	if window < 0 {
		window = 0
	}
	return Stream[S]{st: &stream[S]{next: next, buf: queue.New[S](), window: window}}
}

// NewRuneStream creates a cursor reading runes from r.
func NewRuneStream(r io.RuneReader, window int) Stream[rune] {
	return NewStream(func() (rune, error) {
		c, _, e := r.ReadRune()
		return c, e
	}, window)
}

func (c Stream[S]) AtEnd() bool {
	c.st.check(c.pos)
	c.st.fill(c.pos)
	return c.pos >= c.st.base+c.st.buf.Len()
}

func (c Stream[S]) Current() S {
	if c.AtEnd() {
		panic(endOfInputError(c.pos))
	}
	sym, _ := c.st.buf.At(c.pos - c.st.base)
	return sym
}

func (c Stream[S]) Pos() int {
	return c.pos
}

func (c Stream[S]) Advance() Cursor[S] {
	return c.AdvanceBy(1)
}

func (c Stream[S]) AdvanceBy(n int) Cursor[S] {
	if n < 0 {
		panic(negativeAdvanceError(n))
	}

	if n == 0 {
		return c
	}

	last := math.MaxInt
	if n-1 <= math.MaxInt-c.pos {
		last = c.pos + n - 1
	}
	c.st.fill(last)
	if rest := c.st.base + c.st.buf.Len() - c.pos; n > rest {
		n = rest
	}
	c.pos += n
	return c
}

func (c Stream[S]) Origin() any {
	return c.st
}

// Err returns the read error that terminated the stream, if any.
func (c Stream[S]) Err() error {
	return c.st.err
}
