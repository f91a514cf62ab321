// Package lexer defines a regexp-based lexical analyzer and parsers working on its tokens.
package lexer

import (
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"

	"github.com/ava12/combo"
	"github.com/ava12/combo/cursor"
	"github.com/ava12/combo/source"
)

const (
	// ErrorTokenType is the type for fake tokens capturing broken lexemes (e.g. incorrect string literals).
	// The purpose of these tokens is to generate more informative error messages.
	// Lexer will never return a token of this type, an error with message containing token text will be returned instead.
	ErrorTokenType = -1

	// ErrorTokenName is the type name for ErrorTokenType.
	ErrorTokenName = "-error-"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that lexer cannot fetch any token at current position.
	// Error message contains the rune at current source position.
	WrongCharError = combo.LexicalErrors + iota

	// BadTokenError indicates that lexer has fetched a token of ErrorTokenType.
	BadTokenError
)

// TokenType describes token type for specific capturing group of regular expression.
type TokenType struct {
	// Type contains token type, any value >= 0. Negative values are treated as ErrorTokenType.
	Type int

	// TypeName contains token type name, may be any value.
	TypeName string
}

// Lexer splits sources into tokens using regexp.Regexp.
// Lexer is immutable, stateless, and safe for concurrent use.
// Each token type that may be returned by lexer maps to its own regexp capturing group index.
// A match containing no captured groups is treated as insignificant lexeme (e.g. whitespace),
// in this case lexer tries to fetch a token again at new position.
// Every byte of source must belong to some lexeme.
type Lexer struct {
	types []TokenType
	re    *regexp.Regexp
}

// New creates new Lexer.
// Each n-th element of types describes token type for (n+1)-th regexp capturing group.
// A group that has no description or that has negative token type is treated as ErrorTokenType.
func New(re *regexp.Regexp, types []TokenType) *Lexer {
	ts := make([]TokenType, len(types))
	for i, t := range types {
		ts[i].TypeName = t.TypeName
		if t.Type >= 0 {
			ts[i].Type = t.Type
		} else {
			ts[i].Type = ErrorTokenType
		}
	}
	return &Lexer{types: ts, re: re}
}

func wrongCharError(s *source.Source, content []byte, line, col int) *combo.Error {
	r, _ := utf8.DecodeRune(content)
	msg := fmt.Sprintf("wrong char \"%c\" (u+%x)", r, r)
	return combo.NewError(WrongCharError, msg, s.Name(), line, col)
}

func wrongTokenError(t *Token) *combo.Error {
	return combo.FormatErrorPos(t, BadTokenError, "bad token %q", t.Text())
}

// match returns the token at byte offset pos (nil for insignificant lexemes) and lexeme length.
func (l *Lexer) match(src *source.Source, pos int) (*Token, int, error) {
	content := src.Content()[pos:]
	match := l.re.FindSubmatchIndex(content)
	if len(match) == 0 || match[0] != 0 || match[1] <= match[0] {
		line, col := src.LineCol(pos)
		return nil, 0, wrongCharError(src, content, line, col)
	}

	for i := 2; i < len(match); i += 2 {
		if match[i] < 0 || match[i+1] < 0 {
			continue
		}

		sp := source.NewPos(src, pos+match[i])
		tokenType := ErrorTokenType
		typeName := ErrorTokenName
		if len(l.types) >= (i >> 1) {
			tokenType = l.types[(i>>1)-1].Type
			typeName = l.types[(i>>1)-1].TypeName
		}
		token := NewToken(tokenType, typeName, string(content[match[i]:match[i+1]]), sp)
		if tokenType == ErrorTokenType {
			return nil, 0, wrongTokenError(token)
		}

		return token, match[1], nil
	}

	return nil, match[1], nil
}

// Next fetches the first token starting at byte offset pos of src.
// Returns the token and the offset past it, nil token and src.Len() at the end of source,
// or nil token and *combo.Error if there is a lexical error.
func (l *Lexer) Next(src *source.Source, pos int) (*Token, int, error) {
	for pos < src.Len() {
		t, advance, e := l.match(src, pos)
		if e != nil {
			return nil, pos, e
		}

		pos += advance
		if t != nil {
			return t, pos, nil
		}
	}
	return nil, src.Len(), nil
}

// Tokenize splits the whole src into tokens.
func (l *Lexer) Tokenize(src *source.Source) ([]*Token, error) {
	var res []*Token
	pos := 0
	for {
		t, next, e := l.Next(src, pos)
		if e != nil {
			return nil, e
		}
		if t == nil {
			return res, nil
		}

		res = append(res, t)
		pos = next
	}
}

// Stream returns a cursor fetching tokens of src on demand. A lexical error ends the stream,
// it is available from Err method of returned cursor. See cursor.Stream for window semantics.
func (l *Lexer) Stream(src *source.Source, window int) cursor.Stream[*Token] {
	pos := 0
	return cursor.NewStream(func() (*Token, error) {
		t, next, e := l.Next(src, pos)
		if e != nil {
			return nil, e
		}
		if t == nil {
			return nil, io.EOF
		}

		pos = next
		return t, nil
	}, window)
}
