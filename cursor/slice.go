package cursor

type sliceData[S any] struct {
	items []S
}

// Slice is an array-backed cursor. Symbols may be of any type, e.g. runes, bytes, or tokens.
type Slice[S any] struct {
	data *sliceData[S]
	pos  int
}

// NewSlice creates a cursor at the first item. items must not be modified afterwards.
func NewSlice[S any](items []S) Slice[S] {
	return Slice[S]{data: &sliceData[S]{items}}
}

func (c Slice[S]) AtEnd() bool {
	return c.pos >= len(c.data.items)
}

func (c Slice[S]) Current() S {
	if c.AtEnd() {
		panic(endOfInputError(c.pos))
	}
	return c.data.items[c.pos]
}

func (c Slice[S]) Pos() int {
	return c.pos
}

func (c Slice[S]) Advance() Cursor[S] {
	return c.AdvanceBy(1)
}

func (c Slice[S]) AdvanceBy(n int) Cursor[S] {
	if n < 0 {
		panic(negativeAdvanceError(n))
	}

	if rest := len(c.data.items) - c.pos; n > rest {
		n = rest
	}
	c.pos += n
	return c
}

func (c Slice[S]) Origin() any {
	return c.data
}

// Len returns total number of items.
func (c Slice[S]) Len() int {
	return len(c.data.items)
}

// Rest returns items starting at current position.
func (c Slice[S]) Rest() []S {
	return c.data.items[c.pos:]
}
