package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/slrgen/lr/slr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	history *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "repl <grammar file>",
		Short: "Interactively parse token strings",
		Long: `repl builds a parser for a grammar and reads token strings, one per line,
printing the parse trace for each of them. Lines starting with ':' are
commands, see ':help'.`,
		Example: `  slrgen repl expr.grammar`,
		Args:    cobra.ExactArgs(1),
		RunE:    runREPL,
	}
	replFlags.history = cmd.Flags().String("history", "", "file to keep the input history in")
	rootCmd.AddCommand(cmd)
}

var replCommands = []struct {
	name, help string
}{
	{":grammar", "print the augmented grammar"},
	{":first", "print the FIRST sets"},
	{":follow", "print the FOLLOW sets"},
	{":states", "print the LR(0) item sets"},
	{":table", "print the SLR(1) parse table"},
	{":conflicts", "list conflicting table cells"},
	{":load", "load another grammar file"},
	{":help", "list commands"},
	{":quit", "leave the REPL"},
}

// Intp is our interpreter object
type Intp struct {
	parser *slr.Parser
	out    io.Writer
	cmd    *cobra.Command
}

func runREPL(cmd *cobra.Command, args []string) error {
	p, err := buildParser(cmd, args[0])
	if err != nil {
		return err
	}
	items := make([]readline.PrefixCompleterInterface, len(replCommands))
	for i, c := range replCommands {
		items[i] = readline.PcItem(c.name)
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "slrgen> ",
		HistoryFile:     *replFlags.history,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
	})
	if err != nil {
		return fmt.Errorf("cannot start REPL: %w", err)
	}
	defer rl.Close()
	intp := &Intp{parser: p, out: rl.Stdout(), cmd: cmd}
	fmt.Fprint(intp.out, pterm.Info.Sprintln("Welcome to slrgen, grammar "+p.G.Name))
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL(rl)
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL(rl *readline.Instance) {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if err != nil { // io.EOF
			break
		}
		quit, err := intp.Eval(line)
		if err != nil {
			fmt.Fprint(intp.out, pterm.Error.Sprintln(err.Error()))
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

// Eval evaluates a single input line, either a command or a token string.
func (intp *Intp) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if !strings.HasPrefix(line, ":") {
		trace := intp.parser.Run(line)
		return false, writeTrace(intp.out, trace)
	}
	fields := strings.Fields(line)
	p := intp.parser
	switch fields[0] {
	case ":quit", ":q":
		return true, nil
	case ":grammar", ":g":
		writeProductions(intp.out, p)
	case ":first":
		writeSets(intp.out, "FIRST Sets", p.FirstSets())
	case ":follow":
		writeSets(intp.out, "FOLLOW Sets", p.FollowSets())
	case ":states":
		writeStates(intp.out, p)
	case ":table":
		return false, writeParseTable(intp.out, p)
	case ":conflicts":
		writeConflicts(intp.out, p)
	case ":load":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: :load <grammar file>")
		}
		np, err := buildParser(intp.cmd, fields[1])
		if err != nil {
			return false, err
		}
		intp.parser = np
		fmt.Fprint(intp.out, pterm.Info.Sprintln("loaded grammar "+np.G.Name))
	case ":help", ":h":
		for _, c := range replCommands {
			fmt.Fprintf(intp.out, "%-12s %s\n", c.name, c.help)
		}
		fmt.Fprintln(intp.out, "anything else is parsed as a token string")
	default:
		return false, fmt.Errorf("unknown command %s, try :help", fields[0])
	}
	return false, nil
}
