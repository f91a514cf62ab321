package lexer

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/ava12/combo"
	"github.com/ava12/combo/cursor"
	"github.com/ava12/combo/internal/test"
	"github.com/ava12/combo/parser"
	"github.com/ava12/combo/source"
)

var (
	tokenRe      = regexp.MustCompile(`(?s:[\s]+|(\d+)|([a-z_][a-z0-9_]*)|('.*?')|('.{0,10}))`)
	tokenTypes   = []TokenType{{1, "number"}, {2, "name"}, {3, "string"}}
	tokenSamples = "123 foo 'bar'"
)

func testLexer() *Lexer {
	return New(tokenRe, tokenTypes)
}

func TestEmpty(t *testing.T) {
	sources := []string{"", " ", "  ", " \t\r\n "}
	for _, src := range sources {
		tokens, e := testLexer().Tokenize(source.NewString("", src))
		if e != nil {
			t.Fatalf("source %q: unexpected error %s", src, e)
		}
		if len(tokens) != 0 {
			t.Fatalf("source %q: unexpected token %s", src, tokens[0])
		}
	}
}

func TestTokenSamples(t *testing.T) {
	tokens, e := testLexer().Tokenize(source.NewString("", tokenSamples))
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	test.ExpectInt(t, len(tokenTypes), len(tokens))

	for i, tokType := range tokenTypes {
		tok := tokens[i]
		if tok.TypeName() != tokType.TypeName || tok.Type() != tokType.Type {
			t.Fatalf("expecting %q (%d) token, got %q (%d)", tokType.TypeName, tokType.Type, tok.TypeName(), tok.Type())
		}
	}
	test.ExpectString(t, "'bar'", tokens[2].Text())
	test.ExpectInt(t, 9, tokens[2].Col())
}

func TestBrokenToken(t *testing.T) {
	_, e := testLexer().Tokenize(source.NewString("", "\n  '*  *"))
	ee, f := e.(*combo.Error)
	if !f || ee.Code != BadTokenError {
		t.Fatalf("expected BadTokenError, got %v", e)
	}
	if ee.Line != 2 || ee.Col != 3 {
		t.Fatalf("expected error at line 2, col 3, got %d, %d", ee.Line, ee.Col)
	}
	if !strings.Contains(ee.Message, "\"'*  *\"") {
		t.Fatalf("expected broken token in error message, got %q", ee.Message)
	}
}

func TestTokenTypes(t *testing.T) {
	re := regexp.MustCompile(`(\d+)|\s+|(\w+)|#.*\n|([+-])`)
	types := []TokenType{{0, "num"}, {2, "name"}, {4, "op"}}
	expected := []int{0, 2, 1}

	tokens, e := New(re, types).Tokenize(source.NewString("", "1 + # comment\n foo"))
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	test.ExpectInt(t, len(expected), len(tokens))
	for i, n := range expected {
		tok := tokens[i]
		if tok.Type() != types[n].Type || tok.TypeName() != types[n].TypeName {
			t.Fatalf(
				"sample #%d: expecting token %q (%d), got %q (%d)",
				i,
				types[n].TypeName,
				types[n].Type,
				tok.TypeName(),
				tok.Type(),
			)
		}
	}
}

func TestErrorPos(t *testing.T) {
	re := regexp.MustCompile(`(\s+)|(\w+)|(<\w+>)|(<.+)`)
	types := []TokenType{
		{0, "space"},
		{1, "word"},
		{2, "tag"},
		{ErrorTokenType, ""},
	}
	samples := []struct {
		src            string
		err, line, col int
	}{
		{"foo\n<bar> &baz", WrongCharError, 2, 7},
		{"foo\n <bar\nbaz", BadTokenError, 2, 2},
	}
	l := New(re, types)
	for i, s := range samples {
		_, e := l.Tokenize(source.NewString("src", s.src))
		if e == nil {
			t.Errorf("sample %d: expecting an error, got success", i)
			continue
		}

		ee, f := e.(*combo.Error)
		if !f {
			t.Errorf("sample %d: expecting *combo.Error, got: %s", i, e)
			continue
		}

		tail := fmt.Sprintf("line %d col %d", s.line, s.col)
		if ee.Code != s.err || !strings.HasSuffix(ee.Message, tail) {
			t.Errorf("sample %d: expecting err %d at line %d col %d, got: %s", i, s.err, s.line, s.col, ee.Message)
		}
	}
}

func TestStream(t *testing.T) {
	c := testLexer().Stream(source.NewString("", tokenSamples), 0)
	var names []string
	var at cursor.Cursor[*Token] = c
	for ; !at.AtEnd(); at = at.Advance() {
		names = append(names, at.Current().TypeName())
	}
	test.ExpectDiff(t, []string{"number", "name", "string"}, names)
	test.Assert(t, c.Err() == nil, "unexpected error: %v", c.Err())

	c = testLexer().Stream(source.NewString("", "12 'x"), 0)
	at = c.Advance()
	test.Assert(t, at.AtEnd(), "stream expected to stop at broken token")
	test.ExpectErrorCode(t, BadTokenError, c.Err())
}

func assignments() *parser.Parser[*Token, map[string]string] {
	assign := parser.Map3(
		parser.Then3(parser.Then(Text(OfType("name")), Literal("=")), Text(OfType("number").Or(OfType("string")))),
		func(name string, _ *Token, value string) [2]string { return [2]string{name, value} },
	)
	return parser.Map(parser.SepBy(assign, Literal(";")), func(pairs [][2]string) map[string]string {
		res := make(map[string]string, len(pairs))
		for _, p := range pairs {
			res[p[0]] = p[1]
		}
		return res
	})
}

func TestParseTokens(t *testing.T) {
	re := regexp.MustCompile(`\s+|(\d+)|([a-z]+)|('[^']*')|([=;])`)
	l := New(re, []TokenType{{1, "number"}, {2, "name"}, {3, "string"}, {4, "op"}})

	res, e := ParseAll(l, assignments(), source.NewString("conf", "a = 1; b='x'\n;c=22"))
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	test.ExpectDiff(t, map[string]string{"a": "1", "b": "'x'", "c": "22"}, res)

	_, e = ParseAll(l, assignments(), source.NewString("conf", "a = 1;\nb c"))
	test.ExpectErrorCode(t, int(parser.PartialMatch), e)
	ce := e.(*combo.Error)
	test.ExpectInt(t, 2, ce.Line)
	test.ExpectInt(t, 3, ce.Col)
	test.Assert(t, strings.Contains(ce.Message, `expected "=", found name "c"`), "got %q", ce.Message)

	_, e = ParseAll(l, assignments(), source.NewString("conf", "a = ?"))
	test.ExpectErrorCode(t, WrongCharError, e)
}
