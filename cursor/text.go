package cursor

import (
	"unicode/utf8"

	"github.com/ava12/combo/source"
)

type textData struct {
	src  *source.Source
	text string
}

// Text is a cursor over runes of a source. Invalid UTF-8 bytes are returned as utf8.RuneError,
// one byte per rune. Text implements TextPos.
type Text struct {
	data *textData
	off  int
	pos  int
}

// NewText creates a cursor at the start of src.
func NewText(src *source.Source) Text {
	return Text{data: &textData{src, string(src.Content())}}
}

// FromString creates a cursor over an unnamed source.
func FromString(s string) Text {
	return NewText(source.NewString("", s))
}

func (c Text) AtEnd() bool {
	return c.off >= len(c.data.text)
}

func (c Text) Current() rune {
	if c.AtEnd() {
		panic(endOfInputError(c.pos))
	}
	r, _ := utf8.DecodeRuneInString(c.data.text[c.off:])
	return r
}

func (c Text) Pos() int {
	return c.pos
}

func (c Text) Advance() Cursor[rune] {
	return c.advance(1)
}

func (c Text) AdvanceBy(n int) Cursor[rune] {
	if n < 0 {
		panic(negativeAdvanceError(n))
	}
	return c.advance(n)
}

func (c Text) advance(n int) Text {
	for ; n > 0 && c.off < len(c.data.text); n-- {
		_, size := utf8.DecodeRuneInString(c.data.text[c.off:])
		c.off += size
		c.pos++
	}
	return c
}

// SkipBytes returns the cursor n bytes ahead. n must end on a rune boundary,
// it is used by parsers matching whole substrings at once.
func (c Text) SkipBytes(n int) Text {
	end := c.off + n
	if end > len(c.data.text) {
		end = len(c.data.text)
	}
	c.pos += utf8.RuneCountInString(c.data.text[c.off:end])
	c.off = end
	return c
}

func (c Text) Origin() any {
	return c.data
}

// Offset returns byte offset of the position.
func (c Text) Offset() int {
	return c.off
}

// Rest returns remaining text.
func (c Text) Rest() string {
	return c.data.text[c.off:]
}

// Source returns the underlying source.
func (c Text) Source() *source.Source {
	return c.data.src
}

func (c Text) SourceName() string {
	return c.data.src.Name()
}

func (c Text) Line() int {
	line, _ := c.data.src.LineCol(c.off)
	return line
}

func (c Text) Col() int {
	_, col := c.data.src.LineCol(c.off)
	return col
}

func (c Text) Snippet() string {
	return c.data.src.Snippet(c.Line())
}
