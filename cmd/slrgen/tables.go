package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/slrgen/lr"
	"github.com/spf13/cobra"
)

var tablesFlags = struct {
	html   *string
	states *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "tables <grammar file>",
		Short:   "Print FIRST/FOLLOW sets, item sets and the SLR(1) table of a grammar",
		Example: `  slrgen tables expr.grammar --html expr.html`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTables,
	}
	tablesFlags.html = cmd.Flags().String("html", "", "export the parse table to an HTML file")
	tablesFlags.states = cmd.Flags().Bool("states", true, "list the LR(0) item sets")
	rootCmd.AddCommand(cmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	p, err := buildParser(cmd, args[0])
	if err != nil {
		return err
	}
	if err = writeReport(cmd.OutOrStdout(), p, *tablesFlags.states); err != nil {
		return err
	}
	if *tablesFlags.html != "" {
		f, err := os.Create(*tablesFlags.html)
		if err != nil {
			return fmt.Errorf("cannot export table: %w", err)
		}
		defer f.Close()
		if err = lr.TableAsHTML(p.TableGenerator(), f); err != nil {
			return err
		}
		tracer().Infof("parse table written to %s", *tablesFlags.html)
	}
	return nil
}
