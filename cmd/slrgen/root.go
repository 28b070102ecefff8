package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/slrgen/config"
	"github.com/npillmayer/slrgen/lr"
	"github.com/npillmayer/slrgen/lr/notation"
	"github.com/npillmayer/slrgen/lr/slr"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	config    *string
	trace     *string
	maxStates *int
	maxSteps  *int
}{}

var rootCmd = &cobra.Command{
	Use:   "slrgen",
	Short: "Generate SLR(1) parser tables and trace parse runs",
	Long: `slrgen reads a context-free grammar, computes FIRST and FOLLOW sets,
builds the LR(0) automaton and the SLR(1) parse table, and runs token
strings through a table driven parser, printing every step.
Conflicts are reported, never resolved.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupConfig,
}

func init() {
	rootFlags.config = rootCmd.PersistentFlags().StringP("config", "c", "", "TOML configuration file")
	rootFlags.trace = rootCmd.PersistentFlags().String("trace", "", "trace level for all tracers [Debug|Info|Error]")
	rootFlags.maxStates = rootCmd.PersistentFlags().Int("max-states", 0, "bound for the number of automaton states (0 = configured default)")
	rootFlags.maxSteps = rootCmd.PersistentFlags().Int("max-steps", 0, "bound for the number of steps of a parse run (0 = configured default)")
}

// setupConfig loads the configuration, if any, and installs tracing.
func setupConfig(cmd *cobra.Command, args []string) error {
	var conf *config.TConf
	if *rootFlags.config != "" {
		var err error
		if conf, err = config.Load(*rootFlags.config); err != nil {
			return err
		}
	} else {
		conf = config.New(config.AppTag)
	}
	if *rootFlags.trace != "" {
		conf.Set("tracelevel.root", *rootFlags.trace)
		for _, key := range config.TraceKeys {
			conf.Set("tracelevel."+key, *rootFlags.trace)
		}
	}
	if err := config.ConfigureTracing(conf); err != nil {
		return fmt.Errorf("cannot set up tracing: %w", err)
	}
	tracer().Debugf("configuration installed")
	return nil
}

// parserOptions collects limits given on the command line. Limits not given
// are taken from the configuration by package slr.
func parserOptions() []slr.Option {
	var opts []slr.Option
	if *rootFlags.maxStates > 0 {
		opts = append(opts, slr.StateLimit(*rootFlags.maxStates))
	}
	if *rootFlags.maxSteps > 0 {
		opts = append(opts, slr.StepLimit(*rootFlags.maxSteps))
	}
	return opts
}

// readGrammar reads a grammar from a file, or from stdin if path is "-".
func readGrammar(path string, stdin io.Reader) (*lr.Grammar, error) {
	var text string
	var err error
	if path == "-" {
		var b []byte
		b, err = io.ReadAll(stdin)
		text = string(b)
	} else {
		text, err = readFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read grammar %s: %w", path, err)
	}
	return notation.ParseNamed(grammarName(path), text)
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func grammarName(path string) string {
	if path == "-" {
		return "G"
	}
	return path
}

// buildParser reads a grammar and constructs its parser.
func buildParser(cmd *cobra.Command, path string) (*slr.Parser, error) {
	g, err := readGrammar(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	p, err := slr.BuildParser(g, parserOptions()...)
	if err != nil {
		return nil, fmt.Errorf("cannot build parser for %s: %w", path, err)
	}
	return p, nil
}
