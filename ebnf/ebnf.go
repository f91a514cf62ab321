// Package ebnf compiles grammars written in EBNF (as accepted by golang.org/x/exp/ebnf) into parsers.
//
// Every production becomes a reference, so productions may refer to each other in any order and
// recursively. Alternatives are ordered and backtracking: the first alternative that matches wins.
// Left-recursive productions fail with parser.RecursionError when applied.
//
// Productions whose names start with a lower case letter are lexical: input they match is taken
// verbatim. Other productions are syntactic: insignificant input (see WithWhitespace) is skipped
// after every literal and every lexical production they refer to, and before the start production.
package ebnf

import (
	"io"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/exp/ebnf"

	"github.com/ava12/combo"
	"github.com/ava12/combo/cursor"
	"github.com/ava12/combo/parser"
	"github.com/ava12/combo/text"
)

// Error codes used by grammar compiler:
const (
	// SyntaxError indicates malformed grammar source.
	SyntaxError = combo.GrammarErrors + iota

	// InvalidGrammarError indicates a grammar that failed verification (undefined or unused productions and the like).
	InvalidGrammarError

	// WhitespaceError indicates wrong whitespace regular expression.
	WhitespaceError

	// UnsupportedExpressionError indicates an expression the compiler does not know.
	UnsupportedExpressionError
)

// Node is a parse tree node produced for every applied production.
type Node struct {
	// Name contains production name.
	Name string `json:"name" yaml:"name"`
	// Text contains input matched by the production, without trailing whitespace.
	Text string `json:"text" yaml:"text"`
	// Children contains nodes of syntactic productions and of lexical productions they refer to.
	// Nodes of lexical productions have no children.
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
	// Pos contains symbol index of the first matched symbol.
	Pos int `json:"pos" yaml:"pos"`
	// Line and Col contain text position of the first matched symbol, zero if unknown.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	Col  int `json:"col,omitempty" yaml:"col,omitempty"`
}

// Option configures the compiler.
type Option func(*compiler)

// WithWhitespace sets regular expression for insignificant input (like `\s+` or `(\s|#.*\n)+`)
// skipped in syntactic productions.
func WithWhitespace(expr string) Option {
	return func(c *compiler) {
		c.whitespace = expr
	}
}

type nodes = []*Node

type compiler struct {
	whitespace string
	ws         *parser.Parser[rune, parser.Opt[string]]
	trailing   *regexp.Regexp
	refs       map[string]*parser.Parser[rune, *Node]
}

// Load reads and parses grammar source.
func Load(name string, r io.Reader) (ebnf.Grammar, error) {
	g, e := ebnf.Parse(name, r)
	if e != nil {
		return nil, combo.FormatError(SyntaxError, "cannot parse grammar %s: %s", name, e)
	}
	return g, nil
}

// Compile verifies grammar g and returns a parser for its production start.
// If whitespace is set the parser also accepts leading whitespace.
func Compile(g ebnf.Grammar, start string, opts ...Option) (*parser.Parser[rune, *Node], error) {
	if e := ebnf.Verify(g, start); e != nil {
		return nil, combo.FormatError(InvalidGrammarError, "invalid grammar: %s", e)
	}

	c := &compiler{refs: make(map[string]*parser.Parser[rune, *Node], len(g))}
	for _, opt := range opts {
		opt(c)
	}

	if c.whitespace != "" {
		if _, e := regexp.Compile(c.whitespace); e != nil {
			return nil, combo.FormatError(WhitespaceError, "wrong whitespace expression %q: %s", c.whitespace, e)
		}
		c.ws = parser.Optional(text.Regexp(c.whitespace))
		c.trailing = regexp.MustCompile(`(?:` + c.whitespace + `)$`)
	}

	for name := range g {
		c.refs[name] = parser.NamedRef[rune, *Node](name)
	}
	for name, prod := range g {
		body, e := c.expression(prod.Expr, isLexical(name))
		if e != nil {
			return nil, errors.Wrapf(e, "production %s", name)
		}
		c.refs[name].Set(c.production(name, body).Memoize())
	}

	root := c.refs[start]
	if c.ws != nil {
		root = parser.SkipThen(c.ws, root)
	}
	return root, nil
}

// CompileString is Load and Compile combined.
func CompileString(name, src, start string, opts ...Option) (*parser.Parser[rune, *Node], error) {
	g, e := Load(name, strings.NewReader(src))
	if e != nil {
		return nil, e
	}
	return Compile(g, start, opts...)
}

func isLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsLower(r)
}

func (c *compiler) production(name string, body *parser.Parser[rune, nodes]) *parser.Parser[rune, *Node] {
	lexical := isLexical(name)

	return parser.New(name, func(ctx *parser.Context[rune], at cursor.Cursor[rune]) parser.Outcome[rune, *Node] {
		o := parser.Apply(ctx, body, at)
		if !o.IsSuccess() {
			if f := o.Failure(); f.Kind() == parser.NoMatch {
				return parser.Failed[rune, *Node](parser.NewFailure(parser.NoMatch, at, name, f))
			}
			return parser.Cast[*Node](o)
		}

		n := &Node{Name: name, Text: text.Slice(at, o.Next()), Pos: at.Pos()}
		if !lexical {
			n.Children = o.Value()
			if c.trailing != nil {
				if loc := c.trailing.FindStringIndex(n.Text); loc != nil {
					n.Text = n.Text[:loc[0]]
				}
			}
		}
		if sp, f := cursor.PosOf(at); f {
			n.Line, n.Col = sp.Line(), sp.Col()
		}
		return parser.Success(n, o.Next())
	})
}

// token skips whitespace after p.
func (c *compiler) token(p *parser.Parser[rune, nodes], lexical bool) *parser.Parser[rune, nodes] {
	if lexical || c.ws == nil {
		return p
	}
	return p.ThenSkip(c.ws)
}

func flatten(groups []nodes) nodes {
	var res nodes
	for _, g := range groups {
		res = append(res, g...)
	}
	return res
}

func (c *compiler) expression(expr ebnf.Expression, lexical bool) (*parser.Parser[rune, nodes], error) {
	switch x := expr.(type) {
	case nil:
		return parser.Pure[rune, nodes](nil), nil

	case *ebnf.Name:
		ref := parser.Map(c.refs[x.String], func(n *Node) nodes { return nodes{n} })
		if !lexical && isLexical(x.String) {
			return c.token(ref, false), nil
		}
		return ref, nil

	case *ebnf.Token:
		return c.token(parser.Value(text.String(x.String), nodes(nil)), lexical), nil

	case *ebnf.Range:
		lo, _ := utf8.DecodeRuneInString(x.Begin.String)
		hi, _ := utf8.DecodeRuneInString(x.End.String)
		r := parser.Satisfy(func(r rune) bool { return r >= lo && r <= hi }, x.Begin.String+"…"+x.End.String)
		return c.token(parser.Value(r, nodes(nil)), lexical), nil

	case *ebnf.Group:
		return c.expression(x.Body, lexical)

	case *ebnf.Option:
		body, e := c.expression(x.Body, lexical)
		if e != nil {
			return nil, e
		}
		return body.Otherwise(nil), nil

	case *ebnf.Repetition:
		body, e := c.expression(x.Body, lexical)
		if e != nil {
			return nil, e
		}
		return parser.Map(parser.ZeroOrMore(body), flatten), nil

	case ebnf.Sequence:
		ps := make([]*parser.Parser[rune, nodes], len(x))
		for i, item := range x {
			p, e := c.expression(item, lexical)
			if e != nil {
				return nil, e
			}
			ps[i] = p
		}
		return parser.Map(parser.Sequence(ps...), flatten), nil

	case ebnf.Alternative:
		ps := make([]*parser.Parser[rune, nodes], len(x))
		for i, item := range x {
			p, e := c.expression(item, lexical)
			if e != nil {
				return nil, e
			}
			ps[i] = p.Attempt()
		}
		return parser.OneOf(ps...), nil

	default:
		return nil, combo.FormatError(UnsupportedExpressionError, "unsupported expression %T", expr)
	}
}
