/*
Package combo is a parser-combinator library.

Parsers are built by composing small typed parsing functions instead of generating tables from
a grammar file. Consists of subpackages:
  - cursor: immutable input positions over slices, strings, and streams;
  - parser: parser type, outcomes and failures, combinators, N-ary sequencing builder;
  - text: rune-level parsers (literals, regular expressions, numbers, keywords);
  - lexer: regexp-based tokenizer and token-level parsers;
  - ebnf: compiles EBNF grammars (golang.org/x/exp/ebnf) into parsers;
  - promstats: prometheus collector for parse statistics;
  - source: named text sources with line and column lookup.

Typical usage is:

1. Build primitive parsers with parser.Satisfy or the text and lexer packages.

2. Compose them with combinators: ordered choice (OneOf, Or), sequencing (Then, Map2 .. Map8),
repetition (ZeroOrMore, OneOrMore, Repeat), operator chains (ChainLeft, ChainRight).
Self-referential rules are declared with parser.Ref and installed with Set.

3. Apply the root parser to a cursor with Parse or ParseAll and inspect the outcome.

Failures are ordinary values. A failure that consumed no input (NoMatch) lets an enclosing
choice try the next alternative, a failure that consumed input (PartialMatch) commits it.
Attempt turns the latter into the former where backtracking is wanted.
*/
package combo

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	CursorErrors  = 1   // used by cursor
	LexicalErrors = 101 // used by lexer
	SyntaxErrors  = 201 // used by parser for parse failures
	GrammarErrors = 301 // used by ebnf
	ClientErrors  = 401 // free for applications
)

// Error is the error type used by combo subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// text cursors and lexer tokens implement this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// line and col will be added to error message if provided (non-zero), name is added if not empty.
func NewError(code int, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name == "" {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		} else {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		}
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
