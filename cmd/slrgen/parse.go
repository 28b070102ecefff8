package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/slrgen/lr/slr"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source *string
	quiet  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse <grammar file> [tokens…]",
		Short: "Parse a token string and print every step of the parser",
		Example: `  slrgen parse expr.grammar id + id '*' id
  echo "id + id" | slrgen parse expr.grammar`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "read tokens from file (default: arguments or stdin)")
	parseFlags.quiet = cmd.Flags().BoolP("quiet", "q", false, "print the parse trace only")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	p, err := buildParser(cmd, args[0])
	if err != nil {
		return err
	}
	tokens, err := readTokens(cmd, args[1:])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if !*parseFlags.quiet {
		if err = writeReport(w, p, false); err != nil {
			return err
		}
	}
	trace := p.Run(tokens)
	if err = writeTrace(w, trace); err != nil {
		return err
	}
	return outcome(trace)
}

// readTokens takes tokens from the command line, a source file or stdin.
func readTokens(cmd *cobra.Command, args []string) (string, error) {
	if *parseFlags.source != "" {
		text, err := readFile(*parseFlags.source)
		if err != nil {
			return "", fmt.Errorf("cannot read tokens: %w", err)
		}
		return text, nil
	}
	if len(args) > 0 {
		return tokenLine(args), nil
	}
	text, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("cannot read tokens: %w", err)
	}
	return strings.TrimSpace(string(text)), nil
}

// outcome turns a rejected parse into an error, making the command fail.
func outcome(trace *slr.Trace) error {
	if trace.Accepted {
		return nil
	}
	if trace.Err != nil {
		return fmt.Errorf("input rejected: %w", trace.Err)
	}
	return fmt.Errorf("input rejected")
}
