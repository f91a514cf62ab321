package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	exebnf "golang.org/x/exp/ebnf"
	"gopkg.in/yaml.v3"

	"github.com/ava12/combo/ebnf"
	"github.com/ava12/combo/parser"
	"github.com/ava12/combo/text"
)

func newEbnfCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ebnf",
		Short: "EBNF grammar tools",
	}

	cmd.AddCommand(
		newEbnfCheckCmd(s),
		newEbnfParseCmd(s),
	)
	return cmd
}

func loadGrammar(name string) (exebnf.Grammar, error) {
	f, e := os.Open(name)
	if e != nil {
		return nil, errors.Wrap(e, "cannot open grammar")
	}
	defer f.Close()

	return ebnf.Load(name, f)
}

func newEbnfCheckCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <grammar>",
		Short: "Parse grammar file and compile its start production",
		Long: "Parse grammar file and compile its start production.\n" +
			"If start production is not set only grammar syntax is checked.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, e := loadGrammar(args[0])
			if e != nil {
				return e
			}

			start := s.vp.GetString(keyStart)
			if start != "" {
				if _, e = ebnf.Compile(g, start, ebnf.WithWhitespace(s.vp.GetString(keyWhitespace))); e != nil {
					return e
				}
			}

			s.log.WithField("productions", len(g)).Debug("grammar checked")
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}

	cmd.Flags().String(keyStart, "", "start production (if empty, only checks syntax)")
	cmd.Flags().String(keyWhitespace, "", "regular expression for input skipped between tokens")
	return cmd
}

func newEbnfParseCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <grammar> [<input>]",
		Short: "Parse input file (or standard input) with a grammar and print the parse tree",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := s.vp.GetString(keyStart)
			if start == "" {
				return errors.New("start production is not set")
			}

			g, e := loadGrammar(args[0])
			if e != nil {
				return e
			}
			p, e := ebnf.Compile(g, start, ebnf.WithWhitespace(s.vp.GetString(keyWhitespace)))
			if e != nil {
				return e
			}

			name, input, e := readInput(cmd, args[1:])
			if e != nil {
				return e
			}

			o := text.ParseAll(p, name, input, s.parserOptions()...)
			if !o.IsSuccess() {
				return reportFailure(cmd.ErrOrStderr(), o.Failure())
			}
			return writeTree(cmd.OutOrStdout(), o.Value(), s.vp.GetString(keyOutput))
		},
	}

	cmd.Flags().String(keyStart, "", "start production")
	cmd.Flags().String(keyWhitespace, `\s+`, "regular expression for input skipped between tokens")
	cmd.Flags().StringP(keyOutput, "o", "text", "output format: text, json, or yaml")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (name, input string, e error) {
	var content []byte
	if len(args) == 0 || args[0] == "-" {
		name = "stdin"
		content, e = io.ReadAll(cmd.InOrStdin())
	} else {
		name = args[0]
		content, e = os.ReadFile(name)
	}
	if e != nil {
		return "", "", errors.Wrapf(e, "cannot read %s", name)
	}
	return name, string(content), nil
}

func reportFailure(w io.Writer, f *parser.Failure[rune]) error {
	for _, line := range f.Lines() {
		fmt.Fprintln(w, line)
	}
	return errors.Errorf("parsing failed: %s", f.Kind())
}

func writeTree(w io.Writer, root *ebnf.Node, format string) error {
	switch format {
	case "text":
		writeNode(w, root, 0)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(root)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if e := enc.Encode(root); e != nil {
			return e
		}
		return enc.Close()
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

func writeNode(w io.Writer, n *ebnf.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.Line > 0 {
		fmt.Fprintf(w, "%s%s %d:%d %q\n", indent, n.Name, n.Line, n.Col, n.Text)
	} else {
		fmt.Fprintf(w, "%s%s %q\n", indent, n.Name, n.Text)
	}
	for _, c := range n.Children {
		writeNode(w, c, depth+1)
	}
}
