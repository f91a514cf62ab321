package lexer

import (
	"strconv"

	"github.com/ava12/combo/source"
)

// Token is a lexeme with its type and position. Token implements combo.SourcePos,
// so parse failures on token cursors are reported with line and column.
type Token struct {
	tokenType int
	typeName  string
	text      string
	pos       source.Pos
}

func (t *Token) Type() int {
	return t.tokenType
}

func (t *Token) TypeName() string {
	return t.typeName
}

func (t *Token) Text() string {
	return t.text
}

// Pos returns the position of the first byte of the token.
func (t *Token) Pos() source.Pos {
	return t.pos
}

func (t *Token) SourceName() string {
	return t.pos.SourceName()
}

func (t *Token) Line() int {
	return t.pos.Line()
}

func (t *Token) Col() int {
	return t.pos.Col()
}

func (t *Token) String() string {
	return t.typeName + " " + strconv.Quote(t.text)
}

func NewToken(tokenType int, typeName, text string, pos source.Pos) *Token {
	return &Token{tokenType, typeName, text, pos}
}
