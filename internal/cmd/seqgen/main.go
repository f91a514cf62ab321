// seqgen generates the N-ary sequencing builder of package parser.
//
// Usage is
//
//	seqgen [-o <file>] [--max <n>]
//
// -o defines output file name, default is seq_gen.go;
// --max defines the largest builder arity, default is 8.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
)

// Type parameter names, S and R are reserved for symbol and result types.
const letters = "ABCDEFGHIJKLMNOPQ"

var (
	outFileName string
	maxArity    int
)

func main() {
	flag.StringVarP(&outFileName, "output", "o", "seq_gen.go", "output file name")
	flag.IntVar(&maxArity, "max", 8, "largest builder arity")
	flag.Parse()

	if maxArity < 2 || maxArity > len(letters) {
		fmt.Fprintf(os.Stderr, "arity must be in range [2, %d]\n", len(letters))
		os.Exit(2)
	}

	content, e := generate(maxArity)
	if e == nil {
		e = os.WriteFile(outFileName, content, 0o666)
	}
	if e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}
}

func typeNames(n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = letters[i : i+1]
	}
	return res
}

func fieldNames(n int) []string {
	res := typeNames(n)
	for i, t := range res {
		res[i] = strings.ToLower(t)
	}
	return res
}

func generate(max int) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString("// Code generated by seqgen. DO NOT EDIT.\n\npackage parser\n")
	for n := 2; n <= max; n++ {
		writeLevel(buf, n)
	}

	res, e := format.Source(buf.Bytes())
	return res, errors.Wrap(e, "formatting generated source")
}

func writeLevel(buf *bytes.Buffer, n int) {
	types := typeNames(n)
	fields := fieldNames(n)
	params := strings.Join(types, ", ")
	seq := fmt.Sprintf("Seq%d[S, %s]", n, params)
	last := fields[n-1]

	thenName := "Then"
	if n > 2 {
		thenName = fmt.Sprintf("Then%d", n)
	}
	fmt.Fprintf(buf, "\n// Seq%d accumulates %d parsers applied in order. Build it with %s, finish it with Map%d.\n", n, n, thenName, n)
	fmt.Fprintf(buf, "type Seq%d[S, %s any] struct {\n", n, params)
	for i, f := range fields {
		fmt.Fprintf(buf, "\t%s *Parser[S, %s]\n", f, types[i])
	}
	buf.WriteString("}\n")

	if n == 2 {
		buf.WriteString("\n// Then starts a sequence of parsers a and b.\n")
		buf.WriteString("func Then[S, A, B any](a *Parser[S, A], b *Parser[S, B]) *Seq2[S, A, B] {\n")
		buf.WriteString("\treturn &Seq2[S, A, B]{a, b}\n}\n")
	} else {
		prev := fmt.Sprintf("Seq%d[S, %s]", n-1, strings.Join(types[:n-1], ", "))
		fmt.Fprintf(buf, "\n// Then%d extends s with parser %s.\n", n, last)
		fmt.Fprintf(buf, "func Then%d[S, %s any](s *%s, %s *Parser[S, %s]) *%s {\n", n, params, prev, last, types[n-1], seq)
		refs := make([]string, n)
		for i, f := range fields[:n-1] {
			refs[i] = "s." + f
		}
		refs[n-1] = last
		fmt.Fprintf(buf, "\treturn &%s{%s}\n}\n", seq, strings.Join(refs, ", "))
	}

	buf.WriteString("\n// ThenSkip returns a copy of s that also applies rules after the last parser, discarding their values.\n")
	fmt.Fprintf(buf, "func (s *%s) ThenSkip(rules ...Rule[S]) *%s {\n", seq, seq)
	fmt.Fprintf(buf, "\tres := *s\n\tres.%s = res.%s.ThenSkip(rules...)\n\treturn &res\n}\n", last, last)

	fmt.Fprintf(buf, "\n// Map%d returns a parser applying parsers of s in order and combining their values with fn.\n", n)
	fmt.Fprintf(buf, "func Map%d[S, %s, R any](s *%s, fn func(%s) R) *Parser[S, R] {\n", n, params, seq, params)
	fmt.Fprintf(buf, "\tp := Map(s.a, func(a A) %s {\n", curried(types[1:]))
	for i := 1; i < n; i++ {
		indent := strings.Repeat("\t", i+1)
		fmt.Fprintf(buf, "%sreturn func(%s %s) %s {\n", indent, fields[i], types[i], curried(types[i+1:]))
	}
	fmt.Fprintf(buf, "%sreturn fn(%s)\n", strings.Repeat("\t", n+1), strings.Join(fields, ", "))
	for i := n - 1; i >= 1; i-- {
		fmt.Fprintf(buf, "%s}\n", strings.Repeat("\t", i+1))
	}
	buf.WriteString("\t})\n")
	expr := "p"
	for _, f := range fields[1:] {
		expr = fmt.Sprintf("Ap(%s, s.%s)", expr, f)
	}
	fmt.Fprintf(buf, "\treturn %s\n}\n", expr)
}

func curried(types []string) string {
	res := "R"
	for i := len(types) - 1; i >= 0; i-- {
		res = fmt.Sprintf("func(%s) %s", types[i], res)
	}
	return res
}
