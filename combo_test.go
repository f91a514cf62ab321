package combo

import (
	"testing"
)

type posSample struct {
	name      string
	line, col int
}

func (p posSample) SourceName() string { return p.name }
func (p posSample) Line() int          { return p.line }
func (p posSample) Col() int           { return p.col }

func TestErrorMessages(t *testing.T) {
	samples := []struct {
		e        *Error
		expected string
	}{
		{FormatError(SyntaxErrors, "plain"), "plain"},
		{FormatError(SyntaxErrors, "value %d", 42), "value 42"},
		{FormatErrorPos(posSample{"in.txt", 2, 3}, LexicalErrors, "bad %q", "x"), `bad "x" in in.txt at line 2 col 3`},
		{FormatErrorPos(posSample{"", 1, 5}, LexicalErrors, "bad"), "bad at line 1 col 5"},
		{FormatErrorPos(posSample{"in.txt", 0, 0}, LexicalErrors, "bad"), "bad"},
	}

	for i, s := range samples {
		if s.e.Error() != s.expected {
			t.Errorf("sample #%d: expecting %q, got %q", i, s.expected, s.e.Error())
		}
	}
}

func TestErrorFields(t *testing.T) {
	e := FormatErrorPos(posSample{"f", 4, 7}, GrammarErrors+2, "x")
	if e.Code != GrammarErrors+2 || e.SourceName != "f" || e.Line != 4 || e.Col != 7 {
		t.Errorf("unexpected error fields: %#v", e)
	}
}
