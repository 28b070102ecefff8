package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/slrgen/lr/slr"
	"github.com/pterm/pterm"
)

// writeSection writes a section headline.
func writeSection(w io.Writer, title string) {
	fmt.Fprint(w, pterm.DefaultSection.Sprintln(title))
}

// writeTable renders rows of strings as a table, the first row being the header.
func writeTable(w io.Writer, rows [][]string) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, s)
	return nil
}

func writeProductions(w io.Writer, p *slr.Parser) {
	writeSection(w, "Augmented Grammar")
	for _, r := range p.Productions() {
		fmt.Fprintf(w, "%d: %s\n", r.Serial, r)
	}
}

func writeSets(w io.Writer, title string, sets []slr.SymbolSet) {
	writeSection(w, title)
	for _, set := range sets {
		fmt.Fprintln(w, set.String())
	}
}

func writeStates(w io.Writer, p *slr.Parser) {
	writeSection(w, "LR(0) Item Sets")
	for _, s := range p.States() {
		label := fmt.Sprintf("I%d", s.ID)
		if s.Accept {
			label += " (accept)"
		}
		fmt.Fprintln(w, label)
		for _, item := range s.Items() {
			fmt.Fprintf(w, "    %s\n", item)
		}
		for v := 0; v < p.G.SymbolCount(); v++ {
			A := p.G.Symbol(v)
			if to, ok := p.CFSM().Goto(s, A); ok {
				fmt.Fprintf(w, "    on %s goto I%d\n", A.Name, to.ID)
			}
		}
	}
}

func writeParseTable(w io.Writer, p *slr.Parser) error {
	writeSection(w, "SLR(1) Parse Table")
	return writeTable(w, p.TableRows())
}

// writeConflicts reports conflicting cells. It returns the number of conflicts.
func writeConflicts(w io.Writer, p *slr.Parser) int {
	conflicts := p.Conflicts()
	if len(conflicts) == 0 {
		fmt.Fprint(w, pterm.Success.Sprintln("grammar is SLR(1)"))
		return 0
	}
	for _, c := range conflicts {
		fmt.Fprint(w, pterm.Warning.Sprintln(c.String()))
	}
	return len(conflicts)
}

// writeReport writes everything known about a grammar and its parser.
func writeReport(w io.Writer, p *slr.Parser, withStates bool) error {
	writeProductions(w, p)
	writeSets(w, "FIRST Sets", p.FirstSets())
	writeSets(w, "FOLLOW Sets", p.FollowSets())
	if withStates {
		writeStates(w, p)
	}
	if err := writeParseTable(w, p); err != nil {
		return err
	}
	writeConflicts(w, p)
	return nil
}

// writeTrace renders a parse trace and its outcome.
func writeTrace(w io.Writer, trace *slr.Trace) error {
	writeSection(w, "Parsing Results")
	if err := writeTable(w, trace.Rows()); err != nil {
		return err
	}
	if trace.Accepted {
		fmt.Fprint(w, pterm.Success.Sprintln("input accepted"))
	} else {
		fmt.Fprint(w, pterm.Error.Sprintln(describeFailure(trace.Err)))
	}
	return nil
}

func describeFailure(err error) string {
	if err == nil {
		return "input rejected"
	}
	return "input rejected: " + err.Error()
}

// tokenLine joins command arguments to a token string.
func tokenLine(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
