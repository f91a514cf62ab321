package parser

import (
	"fmt"
	"strings"

	"github.com/ava12/combo"
	"github.com/ava12/combo/cursor"
)

func (f *Failure[S]) message() string {
	switch f.kind {
	case NoMatch, PartialMatch:
		return fmt.Sprintf("expected %s, found %s", f.expected, found(f.at))
	case RecursionError:
		return "infinite recursion in " + f.expected
	case ZeroWidthError:
		return "repetition does not advance: " + f.expected
	case TrailingInput:
		return "unexpected " + found(f.at) + ", expected end of input"
	case Aborted:
		if f.err != nil {
			return "aborted: " + f.err.Error()
		}
		return "aborted"
	default:
		return f.expected
	}
}

func found[S any](at cursor.Cursor[S]) (res string) {
	defer func() {
		if recover() != nil {
			res = "unavailable input"
		}
	}()

	if at.AtEnd() {
		return "end of input"
	}

	switch sym := any(at.Current()).(type) {
	case rune:
		return fmt.Sprintf("%q", sym)
	case fmt.Stringer:
		return sym.String()
	default:
		return fmt.Sprintf("%v", sym)
	}
}

func location[S any](at cursor.Cursor[S]) string {
	sp, f := cursor.PosOf(at)
	if !f || sp.Line() == 0 {
		return fmt.Sprintf("position %d", at.Pos())
	}

	if sp.SourceName() == "" {
		return fmt.Sprintf("%d:%d", sp.Line(), sp.Col())
	}
	return fmt.Sprintf("%s:%d:%d", sp.SourceName(), sp.Line(), sp.Col())
}

// Lines renders the failure, one line per distinct failed alternative.
// Causes are rendered after the failure they caused, indented.
func (f *Failure[S]) Lines() []string {
	var res []string
	seen := make(map[string]bool)
	f.render("", &res, seen)
	return res
}

func (f *Failure[S]) render(indent string, res *[]string, seen map[string]bool) {
	if len(f.combined) > 0 {
		for _, c := range f.combined {
			c.render(indent, res, seen)
		}
		return
	}

	line := indent + location(f.at) + ": " + f.message()
	if !seen[line] {
		seen[line] = true
		*res = append(*res, line)
	}
	if f.cause != nil {
		f.cause.render(indent+"  ", res, seen)
	}
}

func (f *Failure[S]) Error() string {
	return strings.Join(f.Lines(), "\n")
}

// Err converts the failure to *combo.Error with failure kind as error code.
func (f *Failure[S]) Err() *combo.Error {
	msg := f.message()
	if len(f.combined) > 0 {
		alts := make([]string, 0, len(f.combined))
		for _, c := range f.combined {
			alts = append(alts, c.expected)
		}
		msg = fmt.Sprintf("expected one of %s, found %s", strings.Join(alts, ", "), found(f.at))
	}

	sp, hasPos := cursor.PosOf(f.at)
	if !hasPos {
		return combo.FormatError(int(f.kind), "%s at position %d", msg, f.at.Pos())
	}
	return combo.FormatErrorPos(sp, int(f.kind), "%s", msg)
}
