package lr

import (
	"fmt"
	"strings"
)

// --- Symbols ---------------------------------------------------------------

// SymbolKind tags every grammar symbol. Later stages never re-derive a symbol's
// kind from its name.
type SymbolKind uint8

// Kinds of grammar symbols.
const (
	NonTerminal SymbolKind = iota
	Terminal
	EpsilonKind // the empty body marker
	EndOfInput  // the end-of-input marker
)

func (k SymbolKind) String() string {
	switch k {
	case NonTerminal:
		return "non-terminal"
	case Terminal:
		return "terminal"
	case EpsilonKind:
		return "epsilon"
	case EndOfInput:
		return "end-of-input"
	}
	return "<unknown>"
}

// Names of the reserved symbols.
const (
	EpsilonName = "^"
	EOFName     = "$"
)

// Reserved symbol values. Grammar symbols are numbered from 2 on, in order of
// first appearance.
const (
	epsilonValue = 0
	eofValue     = 1
)

// Symbol is a symbol of a grammar, i.e. a terminal or a non-terminal, or one of
// the reserved markers for the empty body and for end of input.
// Value is a dense serial number, used to index parser tables.
type Symbol struct {
	Name  string
	Value int
	kind  SymbolKind
}

// Kind returns the kind tag of a symbol.
func (A *Symbol) Kind() SymbolKind {
	return A.kind
}

// IsTerminal is a predicate. The end-of-input marker counts as a terminal.
func (A *Symbol) IsTerminal() bool {
	return A.kind == Terminal || A.kind == EndOfInput
}

// IsNonTerminal is a predicate.
func (A *Symbol) IsNonTerminal() bool {
	return A.kind == NonTerminal
}

// IsEpsilon is a predicate: is A the empty body marker?
func (A *Symbol) IsEpsilon() bool {
	return A.kind == EpsilonKind
}

// IsEOF is a predicate: is A the end-of-input marker?
func (A *Symbol) IsEOF() bool {
	return A.kind == EndOfInput
}

func (A *Symbol) String() string {
	return A.Name
}

// --- Rules -----------------------------------------------------------------

// Rule is a production of a grammar. An empty body is represented as an empty
// right hand side.
type Rule struct {
	Serial int
	LHS    *Symbol
	rhs    []*Symbol
}

// RHS returns the right hand side of a rule. It is empty for epsilon rules.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEpsilon is a predicate: does r have an empty body?
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

// Len returns the number of symbols of the right hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// BodyString returns the right hand side as space separated symbol names.
// Epsilon bodies render as the empty body marker.
func (r *Rule) BodyString() string {
	if r.IsEpsilon() {
		return EpsilonName
	}
	names := make([]string, len(r.rhs))
	for i, A := range r.rhs {
		names[i] = A.Name
	}
	return strings.Join(names, " ")
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.LHS.Name, r.BodyString())
}

func (r *Rule) sameBody(rhs []*Symbol) bool {
	if len(r.rhs) != len(rhs) {
		return false
	}
	for i, A := range r.rhs {
		if A != rhs[i] {
			return false
		}
	}
	return true
}

// --- Grammar ---------------------------------------------------------------

// Grammar is an augmented context-free grammar. Rule 0 is always S' -> S,
// where S is the start symbol.
//
// Grammars are created by a GrammarBuilder and are immutable afterwards.
type Grammar struct {
	Name          string
	rules         []*Rule
	symbols       []*Symbol // indexed by symbol value
	terminals     []*Symbol // in order of first appearance, without $
	nonterminals  []*Symbol // in order of first appearance, with S'
	symbolsByName map[string]*Symbol
	start         *Symbol
	augStart      *Symbol
}

// Rule returns rule no. i, or nil.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns all rules, including the augmented start rule as rule 0.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Size returns the number of rules, including the augmented start rule.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Start returns the start symbol of the grammar, i.e. the head of the first
// production in source order.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// AugmentedStart returns the fresh start symbol S'.
func (g *Grammar) AugmentedStart() *Symbol {
	return g.augStart
}

// Epsilon returns the empty body marker.
func (g *Grammar) Epsilon() *Symbol {
	return g.symbols[epsilonValue]
}

// EOF returns the end-of-input marker.
func (g *Grammar) EOF() *Symbol {
	return g.symbols[eofValue]
}

// Terminals returns the terminals of g in order of first appearance.
// The end-of-input marker is not included.
func (g *Grammar) Terminals() []*Symbol {
	return g.terminals
}

// NonTerminals returns the non-terminals of g in order of first appearance,
// starting with the augmented start symbol.
func (g *Grammar) NonTerminals() []*Symbol {
	return g.nonterminals
}

// SymbolCount returns the number of symbols, including the reserved markers.
func (g *Grammar) SymbolCount() int {
	return len(g.symbols)
}

// Symbol returns the symbol with a given value, or nil.
func (g *Grammar) Symbol(value int) *Symbol {
	if value < 0 || value >= len(g.symbols) {
		return nil
	}
	return g.symbols[value]
}

// SymbolByName returns the symbol with a given name, or nil.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.symbolsByName[name]
}

// EachSymbol iterates over all terminals and non-terminals of g, in order of
// their values. The reserved markers are not visited. If mapper returns a
// non-nil value, iteration stops and this value is returned.
func (g *Grammar) EachSymbol(mapper func(A *Symbol) interface{}) interface{} {
	for _, A := range g.symbols[eofValue+1:] {
		if r := mapper(A); r != nil {
			return r
		}
	}
	return nil
}

// EachNonTerminal iterates over all non-terminals of g in order of first
// appearance.
func (g *Grammar) EachNonTerminal(mapper func(N *Symbol) interface{}) interface{} {
	for _, N := range g.nonterminals {
		if r := mapper(N); r != nil {
			return r
		}
	}
	return nil
}

// FindNonTermRules returns all rules with LHS N, in rule order.
func (g *Grammar) FindNonTermRules(N *Symbol) []*Rule {
	var R []*Rule
	for _, r := range g.rules {
		if r.LHS == N {
			R = append(R, r)
		}
	}
	return R
}

// Dump is a debugging helper, tracing all rules on level Debug.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------")
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder constructs grammars. Clients start a rule with LHS and add
// right hand side symbols with N (non-terminal) and T (terminal):
//
//    b := lr.NewGrammarBuilder("G")
//    b.LHS("E").N("E").T("+").N("T").End()  // E -> E + T
//    b.LHS("E").N("T").End()                // E -> T
//    b.LHS("T").T("id").End()               // T -> id
//    b.LHS("X").Epsilon()                   // X -> ^
//    g, err := b.Grammar()
//
// The head of the first rule is the start symbol. Duplicate bodies for the same
// head collapse into one rule.
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// NewGrammarBuilder creates a builder for a new grammar.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	g := &Grammar{
		Name:          gname,
		symbolsByName: make(map[string]*Symbol),
	}
	g.rules = []*Rule{nil} // slot 0 is reserved for S' -> S
	eps := &Symbol{Name: EpsilonName, Value: epsilonValue, kind: EpsilonKind}
	eof := &Symbol{Name: EOFName, Value: eofValue, kind: EndOfInput}
	g.symbols = []*Symbol{eps, eof}
	g.symbolsByName[EpsilonName] = eps
	g.symbolsByName[EOFName] = eof
	return &GrammarBuilder{g: g}
}

func (gb *GrammarBuilder) symbol(name string, kind SymbolKind) *Symbol {
	if A, ok := gb.g.symbolsByName[name]; ok {
		if A.kind != kind && gb.err == nil {
			gb.err = &SymbolKindError{Symbol: name, Have: A.kind, Want: kind}
		}
		return A
	}
	A := &Symbol{Name: name, Value: len(gb.g.symbols), kind: kind}
	gb.g.symbols = append(gb.g.symbols, A)
	gb.g.symbolsByName[name] = A
	if kind == NonTerminal {
		gb.g.nonterminals = append(gb.g.nonterminals, A)
	} else {
		gb.g.terminals = append(gb.g.terminals, A)
	}
	return A
}

// LHS starts a new rule with a non-terminal as its head.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	A := gb.symbol(name, NonTerminal)
	if gb.g.start == nil {
		gb.g.start = A
	}
	return &RuleBuilder{gb: gb, lhs: A}
}

// Grammar returns the augmented grammar. It returns an error if no rule has
// been defined or if a symbol has been used as terminal and non-terminal.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	g := gb.g
	if g.start == nil {
		return nil, fmt.Errorf("grammar %q has no rules", g.Name)
	}
	if g.augStart == nil {
		name := g.start.Name + "'"
		for g.symbolsByName[name] != nil {
			name += "'"
		}
		S := &Symbol{Name: name, Value: len(g.symbols), kind: NonTerminal}
		g.symbols = append(g.symbols, S)
		g.symbolsByName[name] = S
		g.nonterminals = append([]*Symbol{S}, g.nonterminals...)
		g.augStart = S
		g.rules[0] = &Rule{Serial: 0, LHS: S, rhs: []*Symbol{g.start}}
	}
	tracer().Debugf("grammar %s has %d rules and %d symbols", g.Name, len(g.rules), len(g.symbols))
	return g, nil
}

// RuleBuilder collects the right hand side of a rule. Create one with
// GrammarBuilder.LHS.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs *Symbol
	rhs []*Symbol
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.gb.symbol(name, NonTerminal))
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.gb.symbol(name, Terminal))
	return rb
}

// End completes a rule. If a rule with the same head and body already exists,
// that rule is returned.
func (rb *RuleBuilder) End() *Rule {
	g := rb.gb.g
	for _, r := range g.rules[1:] {
		if r.LHS == rb.lhs && r.sameBody(rb.rhs) {
			return r
		}
	}
	r := &Rule{Serial: len(g.rules), LHS: rb.lhs, rhs: rb.rhs}
	g.rules = append(g.rules, r)
	return r
}

// Epsilon completes a rule with an empty body. Symbols appended before are
// dropped.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rhs = nil
	return rb.End()
}
