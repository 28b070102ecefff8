/*
Command slrgen is a command line front end for the SLR(1) parser generator.

Grammars are read from files in the text notation of package lr/notation, one
production per line:

    E -> E + T | T
    T -> T * F | F
    F -> ( E ) | id

Usage:

    slrgen tables expr.grammar          # productions, FIRST/FOLLOW, states, table
    slrgen parse expr.grammar id + id   # grammar report and parse trace
    slrgen repl expr.grammar            # interactive parsing
    slrgen dot -o expr.dot expr.grammar # CFSM in Graphviz format
    slrgen ebnf expr.grammar            # grammar in EBNF, verified

Tracing and limits may be configured with a TOML file, see package config.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

// tracer traces with key 'slrgen.cli'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.cli")
}

func main() {
	initDisplay()
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, pterm.Error.Sprint(err.Error()))
		return err
	}
	return nil
}
