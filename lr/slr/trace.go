package slr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/slrgen"
	"github.com/npillmayer/slrgen/lr"
)

// Trace is the record of a parse run.
type Trace struct {
	Steps    []Step
	Accepted bool  // did the run end with accept?
	Err      error // error of the final step, if any
}

// Step is a single step of a parse run. Stacks and input are recorded before
// the action is performed.
type Step struct {
	States  []uint      // state stack, bottom first
	Symbols []string    // matched symbols, bottom first
	Input   []string    // remaining input, including the end-of-input marker
	Action  string      // description of the action taken
	Span    slrgen.Span // input covered by the handle of a reduce step
	Err     error       // set for a failing final step
}

func (s *Step) fail(err error) {
	s.Err = err
	s.Action = "ERROR: " + err.Error()
	tracer().Infof("parse error: %v", err)
}

func (t *Trace) end(s Step) *Trace {
	t.Steps = append(t.Steps, s)
	t.Err = s.Err
	return t
}

// Last returns the final step of a trace.
func (t *Trace) Last() (Step, bool) {
	if len(t.Steps) == 0 {
		return Step{}, false
	}
	return t.Steps[len(t.Steps)-1], true
}

// Reductions returns the rules reduced during a parse run, in order.
func (t *Trace) Reductions() []string {
	var r []string
	for _, s := range t.Steps {
		if strings.HasPrefix(s.Action, "reduce by ") {
			r = append(r, strings.TrimPrefix(s.Action, "reduce by "))
		}
	}
	return r
}

// TraceHeader holds the column titles for Rows.
var TraceHeader = []string{"Step", "Stack", "Symbols", "Input", "Action"}

// Rows returns a trace as table rows, one row per step, starting with a header.
func (t *Trace) Rows() [][]string {
	rows := [][]string{TraceHeader}
	for i, s := range t.Steps {
		states := make([]string, len(s.States))
		for k, id := range s.States {
			states[k] = strconv.Itoa(int(id))
		}
		rows = append(rows, []string{
			fmt.Sprintf("(%d)", i+1),
			strings.Join(states, " "),
			strings.Join(s.Symbols, " "),
			strings.Join(s.Input, " "),
			s.Action,
		})
	}
	return rows
}

func (t *Trace) String() string {
	var b strings.Builder
	for _, row := range t.Rows()[1:] {
		b.WriteString(strings.Join(row, " | "))
		b.WriteString("\n")
	}
	return b.String()
}

// --- Display of grammar properties -----------------------------------------

// SymbolSet is a FIRST or FOLLOW set of a non-terminal.
type SymbolSet struct {
	Symbol  *lr.Symbol
	Members []*lr.Symbol // ordered by symbol value
}

func (s SymbolSet) String() string {
	names := make([]string, len(s.Members))
	for i, A := range s.Members {
		names[i] = A.Name
	}
	return fmt.Sprintf("%s = { %s }", s.Symbol.Name, strings.Join(names, ", "))
}

// Productions returns the rules of the augmented grammar, rule 0 being S' -> S.
func (p *Parser) Productions() []*lr.Rule {
	return p.G.Rules()
}

// FirstSets returns FIRST(N) for every non-terminal N, including S'.
func (p *Parser) FirstSets() []SymbolSet {
	var sets []SymbolSet
	for _, N := range p.G.NonTerminals() {
		sets = append(sets, SymbolSet{Symbol: N, Members: p.ga.First(N)})
	}
	return sets
}

// FollowSets returns FOLLOW(N) for every non-terminal N, including S'.
func (p *Parser) FollowSets() []SymbolSet {
	var sets []SymbolSet
	for _, N := range p.G.NonTerminals() {
		sets = append(sets, SymbolSet{Symbol: N, Members: p.ga.Follow(N)})
	}
	return sets
}

// States returns the states of the CFSM, ordered by ID.
func (p *Parser) States() []*lr.CFSMState {
	return p.lrgen.CFSM().States()
}

// CFSM returns the characteristic finite state machine of the parser.
func (p *Parser) CFSM() *lr.CFSM {
	return p.lrgen.CFSM()
}

// Table returns the SLR(1) table of the parser.
func (p *Parser) Table() *lr.Table {
	return p.table
}

// TableGenerator returns the table generator which created the parser's table.
func (p *Parser) TableGenerator() *lr.TableGenerator {
	return p.lrgen
}

// Conflicts lists all conflicting table cells.
func (p *Parser) Conflicts() []lr.Conflict {
	return p.table.Conflicts()
}

// TableRows returns the parser table as rows of strings, starting with a header
// row. Columns are the terminals, $ and the non-terminals.
func (p *Parser) TableRows() [][]string {
	cols := p.table.Columns()
	header := make([]string, 0, len(cols)+1)
	header = append(header, "State")
	for _, A := range cols {
		header = append(header, A.Name)
	}
	rows := [][]string{header}
	for state := 0; state < p.table.StateCount(); state++ {
		row := make([]string, 0, len(cols)+1)
		row = append(row, strconv.Itoa(state))
		for _, A := range cols {
			row = append(row, p.table.Cell(uint(state), A).String())
		}
		rows = append(rows, row)
	}
	return rows
}
