package ebnf

import (
	"strings"
	"testing"

	"github.com/ava12/combo/internal/test"
	"github.com/ava12/combo/parser"
	"github.com/ava12/combo/text"
)

const listGrammar = `
List   = "[" [ Items ] "]" .
Items  = Item { "," Item } .
Item   = number | ident | List .
number = digit { digit } .
ident  = letter { letter | digit } .
digit  = "0" … "9" .
letter = "a" … "z" .
`

func dump(n *Node) string {
	if isLexical(n.Name) {
		return n.Name + ":" + n.Text
	}

	children := make([]string, len(n.Children))
	for i, c := range n.Children {
		children[i] = dump(c)
	}
	return n.Name + "(" + strings.Join(children, " ") + ")"
}

func compileList(t *testing.T, opts ...Option) *parser.Parser[rune, *Node] {
	t.Helper()
	p, e := CompileString("list.ebnf", listGrammar, "List", opts...)
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	return p
}

func TestTree(t *testing.T) {
	p := compileList(t, WithWhitespace(`\s+`))
	samples := []struct {
		src, tree string
	}{
		{"[]", "List()"},
		{"[1]", "List(Items(Item(number:1)))"},
		{"[1, ab, [2]]", "List(Items(Item(number:1) Item(ident:ab) Item(List(Items(Item(number:2))))))"},
		{" [ a1 ,\n[ ] ] ", "List(Items(Item(ident:a1) Item(List())))"},
	}

	for i, s := range samples {
		o := text.ParseAll(p, "sample", s.src)
		if !o.IsSuccess() {
			t.Errorf("sample #%d: got error: %s", i, o.Failure().Error())
			continue
		}
		if got := dump(o.Value()); got != s.tree {
			t.Errorf("sample #%d: expecting %s, got %s", i, s.tree, got)
		}
	}
}

func TestNodePositions(t *testing.T) {
	p := compileList(t, WithWhitespace(`\s+`))
	root := text.ParseAll(p, "sample", "  [ 1,\n  ab ]  ").Value()

	test.ExpectString(t, "[ 1,\n  ab ]", root.Text)
	test.ExpectInt(t, 2, root.Pos)
	test.ExpectInt(t, 3, root.Col)

	items := root.Children[0]
	test.ExpectString(t, "1,\n  ab", items.Text)
	test.ExpectInt(t, 5, items.Col)

	ab := items.Children[1]
	test.ExpectString(t, "ab", ab.Text)
	test.ExpectInt(t, 2, ab.Line)
	test.ExpectInt(t, 3, ab.Col)
	test.ExpectString(t, "ab", ab.Children[0].Text)
	test.Assert(t, ab.Children[0].Children == nil, "lexical nodes have no children")
}

func TestNoWhitespace(t *testing.T) {
	p := compileList(t)
	test.ExpectString(t, "List(Items(Item(number:12) Item(ident:x)))", dump(text.ParseAll(p, "", "[12,x]").Value()))

	o := text.ParseAll(p, "", "[12, x]")
	test.Assert(t, !o.IsSuccess(), "whitespace expected to fail")
}

func TestSyntaxError(t *testing.T) {
	p := compileList(t, WithWhitespace(`\s+`))

	o := text.ParseAll(p, "sample", "[1, ]")
	test.Assert(t, !o.IsSuccess(), "unexpected success")
	test.Assert(t, o.Failure().Kind() == parser.PartialMatch, "got %s", o.Failure().Kind())
	test.ExpectInt(t, 4, o.Failure().At().Pos())

	e := o.Failure().Err()
	test.ExpectInt(t, 1, e.Line)
	test.ExpectInt(t, 5, e.Col)
	test.Assert(t, strings.Contains(e.Message, "expected Item, found ']'"), "got %q", e.Message)

	lines := o.Failure().Lines()
	test.ExpectString(t, "sample:1:5: expected Item, found ']'", lines[0])
	test.ExpectString(t, "  sample:1:5: expected number, found ']'", lines[1])

	o = text.ParseAll(p, "sample", "[1] x")
	test.Assert(t, o.Failure().Kind() == parser.TrailingInput, "got %s", o.Failure().Kind())
}

func TestLeftRecursion(t *testing.T) {
	p, e := CompileString("expr", `
Expr = Expr "+" Term | Term .
Term = "x" .
`, "Expr")
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}

	o := text.ParseAll(p, "", "x+x")
	test.Assert(t, !o.IsSuccess(), "left recursion expected to fail")
	test.Assert(t, o.Failure().Kind() == parser.RecursionError, "got %s", o.Failure().Kind())
	test.Assert(t, strings.Contains(o.Failure().Error(), "infinite recursion in Expr"), "got %q", o.Failure().Error())
}

func TestRightRecursion(t *testing.T) {
	p, e := CompileString("expr", `
Expr = Term "+" Expr | Term .
Term = "x" | "(" Expr ")" .
`, "Expr")
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}

	for _, src := range []string{"x", "x+x", "(x+x)+x", "((x))"} {
		o := text.ParseAll(p, "", src)
		test.Assert(t, o.IsSuccess(), "%s: got error: %v", src, o.Err())
		test.ExpectString(t, src, o.Value().Text)
	}

	o := text.ParseAll(p, "", "x+x", parser.WithMemoSize(0))
	test.Assert(t, o.IsSuccess(), "got error: %v", o.Err())
}

func TestGrammarErrors(t *testing.T) {
	_, e := CompileString("bad", `A = "a" `, "A")
	test.ExpectErrorCode(t, SyntaxError, e)

	_, e = CompileString("list", listGrammar, "Missing")
	test.ExpectErrorCode(t, InvalidGrammarError, e)

	_, e = CompileString("unused", listGrammar+"Unused = \"u\" .\n", "List")
	test.ExpectErrorCode(t, InvalidGrammarError, e)

	_, e = CompileString("list", listGrammar, "List", WithWhitespace(`(`))
	test.ExpectErrorCode(t, WhitespaceError, e)
}
