package slr

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/slrgen"
	"github.com/npillmayer/slrgen/lr"
	"github.com/npillmayer/slrgen/lr/notation"
	"github.com/npillmayer/slrgen/lr/scanner"
)

// ConfigMaxSteps is the configuration key for the step limit of parse runs.
const ConfigMaxSteps = "slrgen.max-steps"

// DefaultStepLimit bounds the number of steps of a parse run if neither an
// option nor the configuration provide a limit.
const DefaultStepLimit = 1 << 20

// Option configures parser construction.
type Option func(*options)

type options struct {
	lr    []lr.Option
	steps int
}

// StepLimit bounds the number of steps of every parse run.
func StepLimit(n int) Option {
	return func(o *options) {
		o.steps = n
	}
}

// IterationLimit bounds the number of passes of the FIRST/FOLLOW computation,
// see lr.IterationLimit.
func IterationLimit(n int) Option {
	return func(o *options) {
		o.lr = append(o.lr, lr.IterationLimit(n))
	}
}

// StateLimit bounds the number of CFSM states, see lr.StateLimit.
func StateLimit(n int) Option {
	return func(o *options) {
		o.lr = append(o.lr, lr.StateLimit(n))
	}
}

// Parser is an SLR(1)-parser type. Create and initialize one with BuildParser.
// A parser is immutable; parse runs do not share state.
type Parser struct {
	G        *lr.Grammar
	ga       *lr.LRAnalysis
	lrgen    *lr.TableGenerator
	table    *lr.Table
	maxSteps int
}

// ParseGrammar reads a grammar in text notation, see package notation.
func ParseGrammar(text string) (*lr.Grammar, error) {
	return notation.Parse(text)
}

// BuildParser analyses a grammar and constructs its CFSM and SLR(1) table.
// Conflicts do not make BuildParser fail; clients check Conflicts().
func BuildParser(g *lr.Grammar, opts ...Option) (*Parser, error) {
	o := options{steps: gconf.GetInt(ConfigMaxSteps)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.steps <= 0 {
		o.steps = DefaultStepLimit
	}
	ga, err := lr.Analysis(g, o.lr...)
	if err != nil {
		return nil, err
	}
	lrgen := lr.NewTableGenerator(ga, o.lr...)
	if err = lrgen.CreateTables(); err != nil {
		return nil, err
	}
	return &Parser{
		G:        g,
		ga:       ga,
		lrgen:    lrgen,
		table:    lrgen.Table(),
		maxSteps: o.steps,
	}, nil
}

// Run parses a string of blank-separated terminals. The end-of-input marker is
// appended internally.
func (p *Parser) Run(tokens string) *Trace {
	scan, err := scanner.FieldScanner(tokens)
	if err != nil {
		return &Trace{Err: err}
	}
	return p.Parse(scan)
}

// Parse parses the tokens delivered by a tokenizer. Tokens are matched against
// the terminals of the grammar by their lexemes.
func (p *Parser) Parse(scan scanner.Tokenizer) *Trace {
	var lexemes []string
	var spans []slrgen.Span
	for {
		token := scan.NextToken()
		spans = append(spans, token.Span())
		if token.TokType() == scanner.EOF {
			break
		}
		lexemes = append(lexemes, token.Lexeme())
	}
	return p.run(lexemes, spans)
}

// run executes the shift-reduce algorithm on a complete input. spans holds the
// input spans of the lexemes, followed by the span of the end of input.
//
// http://www.cse.unt.edu/~sweany/CSCE3650/HANDOUTS/LRParseAlg.pdf
func (p *Parser) run(lexemes []string, spans []slrgen.Span) *Trace {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	input := make([]*lr.Symbol, len(lexemes)+1)
	for i, lexeme := range lexemes {
		input[i] = p.terminal(lexeme)
	}
	input[len(lexemes)] = p.G.EOF()
	lexemes = append(lexemes, lr.EOFName)
	//
	trace := &Trace{}
	stack := []stackitem{{stateID: p.lrgen.CFSM().S0.ID}}
	pos := 0
	for {
		step := Step{
			States:  stateIDs(stack),
			Symbols: symbolNames(stack),
			Input:   append([]string(nil), lexemes[pos:]...),
		}
		if len(trace.Steps) >= p.maxSteps {
			step.fail(&lr.IterationLimitError{Phase: "parse", Limit: p.maxSteps})
			return trace.end(step)
		}
		tos := stack[len(stack)-1]
		la := input[pos]
		if la == nil {
			step.fail(&UnrecognizedSymbolError{Symbol: lexemes[pos], Position: pos})
			return trace.end(step)
		}
		cell := p.table.Cell(tos.stateID, la)
		tracer().Debugf("action(%d,%s) = %s", tos.stateID, la, cell)
		if cell.IsConflict() {
			step.fail(&ConflictEncounteredError{Conflict: lr.Conflict{
				State:   tos.stateID,
				Symbol:  la,
				Actions: cell.Actions(),
			}})
			return trace.end(step)
		}
		action, ok := cell.Action()
		if !ok {
			step.fail(&UnparseableInputError{State: tos.stateID, Symbol: la.Name})
			return trace.end(step)
		}
		switch action.Kind {
		case lr.ShiftAction:
			step.Action = "shift"
			stack = append(stack, stackitem{stateID: uint(action.Target), sym: la, span: spans[pos]})
			pos++
		case lr.ReduceAction:
			rule := p.G.Rule(action.Target)
			step.Action = "reduce by " + rule.String()
			var next uint
			if stack, next, ok = p.reduce(stack, rule, spans[pos]); !ok {
				step.fail(&UnparseableInputError{State: stack[len(stack)-1].stateID, Symbol: rule.LHS.Name})
				return trace.end(step)
			}
			step.Span = stack[len(stack)-1].span
			tracer().Debugf("reduced %v, next state = %d", rule, next)
		case lr.AcceptAction:
			step.Action = "accept"
			trace.Accepted = true
			return trace.end(step)
		default:
			step.fail(&UnparseableInputError{State: tos.stateID, Symbol: la.Name})
			return trace.end(step)
		}
		trace.Steps = append(trace.Steps, step)
	}
}

// reduce performs a reduce action for a rule
//
//    LHS --> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn are represented on the stack as states
//
//    [TOS]  Sn(Xn, span_n) ... S1(X1, span1)  ...
//
// They are popped (none for an epsilon rule) and LHS is pushed, with the state
// found in the goto entry for LHS of the state uncovered.
func (p *Parser) reduce(stack []stackitem, rule *lr.Rule, la slrgen.Span) ([]stackitem, uint, bool) {
	n := len(stack) - rule.Len()
	if n < 1 {
		return stack, 0, false
	}
	handlespan := slrgen.Span{la.From(), la.From()} // epsilon is just before lookahead
	if rule.Len() > 0 {
		handlespan = stack[n].span.Cover(stack[len(stack)-1].span)
	}
	for i, sym := range rule.RHS() {
		if stack[n+i].sym != sym {
			tracer().Errorf("Expected %v on stack, got %v", sym, stack[n+i].sym)
		}
	}
	stack = stack[:n]
	tos := stack[n-1]
	gotoAction, ok := p.table.Cell(tos.stateID, rule.LHS).Action()
	if !ok || gotoAction.Kind != lr.GotoAction {
		return stack, 0, false
	}
	next := uint(gotoAction.Target)
	stack = append(stack, stackitem{stateID: next, sym: rule.LHS, span: handlespan})
	return stack, next, true
}

// terminal finds the grammar terminal for an input lexeme. The end-of-input
// marker may not be part of the input.
func (p *Parser) terminal(lexeme string) *lr.Symbol {
	A := p.G.SymbolByName(lexeme)
	if A == nil || !A.IsTerminal() || A.IsEOF() {
		return nil
	}
	return A
}

// We store pairs of state-IDs and symbols on the parse stack.
type stackitem struct {
	stateID uint        // ID of a CFSM state
	sym     *lr.Symbol  // grammar symbol (terminal or non-terminal), nil at bottom
	span    slrgen.Span // input positions this symbol reaches over
}

func stateIDs(stack []stackitem) []uint {
	ids := make([]uint, len(stack))
	for i, item := range stack {
		ids[i] = item.stateID
	}
	return ids
}

func symbolNames(stack []stackitem) []string {
	names := make([]string, 0, len(stack)-1)
	for _, item := range stack[1:] {
		names = append(names, item.sym.Name)
	}
	return names
}
