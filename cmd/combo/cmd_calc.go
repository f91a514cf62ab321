package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ava12/combo/examples/calc/lib"
)

func newCalcCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "calc [<input>]",
		Short: "Compute calculator lines from input file (or standard input)",
		Long: "Compute calculator lines from input file (or standard input).\n" +
			"Every line is an expression, an assignment (x = 1), or a function definition (func f(x) x * 2).\n" +
			"Incomplete lines are continued with the next input line.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) > 0 && args[0] != "-" {
				f, e := os.Open(args[0])
				if e != nil {
					return errors.Wrap(e, "cannot open input")
				}
				defer f.Close()
				r = f
			}

			failed := runCalc(lib.New(s.parserOptions()...), r, cmd.OutOrStdout())
			if failed > 0 {
				return errors.Errorf("%d line(s) failed", failed)
			}
			return nil
		},
	}
}

// runCalc computes every input line and returns the number of failed lines.
func runCalc(calc *lib.Calculator, r io.Reader, w io.Writer) int {
	session := lib.NewSession(calc)
	scanner := bufio.NewScanner(r)
	failed := 0

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" && !session.Pending() {
			continue
		}

		res, done, e := session.Feed(line)
		switch {
		case e != nil:
			fmt.Fprintln(w, "!", e)
			failed++
		case done:
			fmt.Fprintf(w, "%.12g\n", res)
		}
	}

	if e := scanner.Err(); e != nil {
		fmt.Fprintln(w, "!", e)
		failed++
	}
	if e := session.Close(); e != nil {
		fmt.Fprintln(w, "!", e)
		failed++
	}
	return failed
}
