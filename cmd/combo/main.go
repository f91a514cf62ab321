// combo is a command line front end for the combo parser library.
//
// Usage is
//
//	combo [--config <file>] [--log-level <level>] [--memo-size <n>] [--stats] <command>
//
// Commands are:
//
//	ebnf check [--start <name>] <grammar>
//	ebnf parse --start <name> [--whitespace <regexp>] [--output text|json|yaml] <grammar> [<input>]
//	calc [<input>]
//
// Every flag may also be set in config file (YAML, TOML, JSON, whatever viper accepts)
// or in environment variable named after the flag with COMBO_ prefix, e.g. COMBO_LOG_LEVEL.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd(s *settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "combo",
		Short:         "Grammar and calculator tools built on combo parsers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if e := s.vp.BindPFlags(cmd.Flags()); e != nil {
				return e
			}
			return s.load()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return s.writeStats(cmd.ErrOrStderr())
		},
	}
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newEbnfCmd(s),
		newCalcCmd(s),
	)
	return rootCmd
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	rootCmd := newRootCmd(newSettings(newViper(), log))

	if e := rootCmd.Execute(); e != nil {
		fmt.Fprintln(os.Stderr, e)
		os.Exit(1)
	}
}
