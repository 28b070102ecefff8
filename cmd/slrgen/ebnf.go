package main

import (
	"fmt"

	"github.com/npillmayer/slrgen/lr/notation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "ebnf <grammar file>",
		Short:   "Print a grammar in EBNF and check it for undefined or unreachable symbols",
		Example: `  slrgen ebnf expr.grammar`,
		Args:    cobra.ExactArgs(1),
		RunE:    runEBNF,
	}
	rootCmd.AddCommand(cmd)
}

func runEBNF(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprint(w, notation.EBNF(g))
	if err = notation.Check(g); err != nil {
		fmt.Fprint(w, pterm.Warning.Sprintln(err.Error()))
		return nil
	}
	fmt.Fprint(w, pterm.Success.Sprintln("grammar is well-formed"))
	return nil
}
