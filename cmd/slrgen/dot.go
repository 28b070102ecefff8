package main

import (
	"github.com/spf13/cobra"
)

var dotFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "dot <grammar file>",
		Short:   "Export the LR(0) automaton in Graphviz Dot format",
		Example: `  slrgen dot expr.grammar | dot -Tsvg -o expr.svg`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDot,
	}
	dotFlags.output = cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runDot(cmd *cobra.Command, args []string) error {
	p, err := buildParser(cmd, args[0])
	if err != nil {
		return err
	}
	if *dotFlags.output != "" {
		return p.CFSM().CFSM2GraphViz(*dotFlags.output)
	}
	return p.CFSM().ToGraphViz(cmd.OutOrStdout())
}
