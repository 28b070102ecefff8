package lr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/slrgen/lr/iteratable"
)

// === CFSM Construction =====================================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     uint             // serial ID of this state
	items  *iteratable.Set  // configuration items within this state
	key    string           // canonical hash of the item set
	gotos  map[*Symbol]uint // outgoing transitions
	Accept bool             // does this state contain S' -> S • ?
}

// CFSM edge between 2 states, directed and labelled with a grammar symbol
type cfsmEdge struct {
	from  *CFSMState
	to    *CFSMState
	label *Symbol
}

// Items returns the items of a state in canonical order.
func (s *CFSMState) Items() []Item {
	return sortedItems(s.items)
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	Dump(s.items)
	tracer().Debugf("-------------------------")
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

func (s *CFSMState) containsCompletedStartRule() bool {
	for _, x := range s.items.Values() {
		i := asItem(x)
		if i.rule.Serial == 0 && i.IsComplete() {
			return true
		}
	}
	return false
}

// We need this for the worklist. It sorts states by serial ID.
func stateComparator(s1, s2 interface{}) int {
	c1 := s1.(*CFSMState)
	c2 := s2.(*CFSMState)
	return utils.IntComparator(int(c1.ID), int(c2.ID))
}

// CFSM is the characteristic finite state machine for a LR grammar, i.e. the
// LR(0) state diagram or canonical collection of LR(0) item sets.
// It will be constructed by a TableGenerator.
// Clients normally do not use it directly. Nevertheless, there are some methods
// defined on it, e.g, for debugging purposes, or even to
// compute your own tables from it.
type CFSM struct {
	g      *Grammar                // this CFSM is for Grammar g
	states *arraylist.List         // all the states, indexed by ID
	bykey  map[string][]*CFSMState // states bucketed by item set key
	edges  *arraylist.List         // all the edges between states
	S0     *CFSMState              // start state
}

// create an empty (initial) CFSM automata.
func emptyCFSM(g *Grammar) *CFSM {
	return &CFSM{
		g:      g,
		states: arraylist.New(),
		bykey:  make(map[string][]*CFSMState),
		edges:  arraylist.New(),
	}
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return c.states.Size()
}

// State returns the state with a given ID, or nil.
func (c *CFSM) State(id uint) *CFSMState {
	x, ok := c.states.Get(int(id))
	if !ok {
		return nil
	}
	return x.(*CFSMState)
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	S := make([]*CFSMState, 0, c.states.Size())
	it := c.states.Iterator()
	for it.Next() {
		S = append(S, it.Value().(*CFSMState))
	}
	return S
}

// Goto returns the state reached from s over symbol A, if any.
func (c *CFSM) Goto(s *CFSMState, A *Symbol) (*CFSMState, bool) {
	id, ok := s.gotos[A]
	if !ok {
		return nil, false
	}
	return c.State(id), true
}

// findStateByItems finds a state by the contained item set. The hash key
// selects a bucket, structural equality decides.
func (c *CFSM) findStateByItems(key string, iset *iteratable.Set) *CFSMState {
	for _, s := range c.bykey[key] {
		if s.items.Equals(iset) {
			return s
		}
	}
	return nil
}

// addState appends a new state for an item set not present in c.
func (c *CFSM) addState(key string, iset *iteratable.Set) *CFSMState {
	s := &CFSMState{
		ID:    uint(c.states.Size()),
		items: iset,
		key:   key,
		gotos: make(map[*Symbol]uint),
	}
	s.Accept = s.containsCompletedStartRule()
	c.states.Add(s)
	c.bykey[key] = append(c.bykey[key], s)
	return s
}

func (c *CFSM) addEdge(s0, s1 *CFSMState, sym *Symbol) {
	if _, ok := s0.gotos[sym]; ok {
		return
	}
	s0.gotos[sym] = s1.ID
	c.edges.Add(&cfsmEdge{from: s0, to: s1, label: sym})
}

func (c *CFSM) allEdges(s *CFSMState) []*cfsmEdge {
	it := c.edges.Iterator()
	r := make([]*cfsmEdge, 0, 2)
	for it.Next() {
		e := it.Value().(*cfsmEdge)
		if e.from == s {
			r = append(r, e)
		}
	}
	return r
}

// Construct the characteristic finite state machine CFSM for a grammar.
//
// States to be processed are kept in a worklist ordered by state ID. Every state
// taken from the worklist is probed with GOTO for every grammar symbol. New item
// sets become new states and enter the worklist, so the loop terminates only
// when no state produces a new state or a new transition.
func (lrgen *TableGenerator) buildCFSM() (*CFSM, error) {
	tracer().Debugf("=== build CFSM ==================================================")
	G := lrgen.g
	cfsm := emptyCFSM(G)
	item, sym := StartItem(G.rules[0])
	tracer().Debugf("Start item=%v/%v", item, sym)
	closure0 := G.closureSet(iteratable.NewSet(item))
	cfsm.S0 = cfsm.addState(itemSetKey(closure0), closure0)
	cfsm.S0.Dump()
	S := treeset.NewWith(stateComparator)
	S.Add(cfsm.S0)
	for S.Size() > 0 {
		s := S.Values()[0].(*CFSMState)
		S.Remove(s)
		var err error
		G.EachSymbol(func(A *Symbol) interface{} {
			gotoset := G.gotoSet(s.items, A)
			if gotoset.Empty() {
				return nil
			}
			key := itemSetKey(gotoset)
			snew := cfsm.findStateByItems(key, gotoset)
			if snew == nil {
				if cfsm.Size() >= lrgen.limits.states {
					err = &IterationLimitError{Phase: "CFSM construction", Limit: lrgen.limits.states}
					return err
				}
				snew = cfsm.addState(key, gotoset)
				S.Add(snew)
				snew.Dump()
			}
			cfsm.addEdge(s, snew, A)
			return nil
		})
		if err != nil {
			tracer().Errorf("CFSM for grammar %s exceeds %d states", G.Name, lrgen.limits.states)
			return nil, err
		}
		tracer().Debugf("-----------------------------------------------------------------")
	}
	tracer().Infof("CFSM for grammar %s has %d states and %d edges", G.Name, cfsm.Size(), cfsm.edges.Size())
	return cfsm, nil
}

// === Table Generator =======================================================

// TableGenerator is a generator object to construct LR parser tables.
// Clients usually create a Grammar G, then a LRAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTables() constructs
// the CFSM and parser tables for an SLR parser recognizing grammar G.
type TableGenerator struct {
	g            *Grammar
	ga           *LRAnalysis
	dfa          *CFSM
	table        *Table
	limits       limits
	HasConflicts bool
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LRAnalysis, opts ...Option) *TableGenerator {
	lrgen := &TableGenerator{}
	lrgen.g = ga.Grammar()
	lrgen.ga = ga
	lrgen.limits = makeLimits(opts)
	return lrgen
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// Clients have to call CreateTables() first.
func (lrgen *TableGenerator) CFSM() *CFSM {
	if lrgen.dfa == nil {
		tracer().P("lr", "gen").Errorf("CFSM not yet constructed")
	}
	return lrgen.dfa
}

// Table returns the ACTION/GOTO table for SLR-parsing a grammar. The table has
// to be built by calling CreateTables() previously.
func (lrgen *TableGenerator) Table() *Table {
	if lrgen.table == nil {
		tracer().P("lr", "gen").Errorf("tables not yet initialized")
	}
	return lrgen.table
}

// CreateTables creates the necessary data structures for an SLR parser.
// Conflicts do not stop table construction; they are flagged in HasConflicts
// and may be listed with Table().Conflicts().
func (lrgen *TableGenerator) CreateTables() error {
	dfa, err := lrgen.buildCFSM()
	if err != nil {
		return err
	}
	lrgen.dfa = dfa
	lrgen.table = lrgen.BuildSLR1Table()
	lrgen.HasConflicts = lrgen.table.HasConflicts()
	if lrgen.HasConflicts {
		tracer().Infof("grammar %s is not SLR(1)", lrgen.g.Name)
	}
	return nil
}

// AcceptingStates returns all states of the CFSM which have an accept action.
// Clients have to call CreateTables() first.
func (lrgen *TableGenerator) AcceptingStates() []uint {
	if lrgen.dfa == nil {
		tracer().Errorf("tables not yet generated; call CreateTables() first")
		return nil
	}
	acc := make([]uint, 0, 3)
	for _, state := range lrgen.dfa.States() {
		if state.Accept {
			acc = append(acc, state.ID)
		}
	}
	return sortedUInts(acc)
}

// BuildSLR1Table constructs the SLR(1) ACTION and GOTO table. This method is
// normally not called by clients, but rather via CreateTables().
//
// For every state of the CFSM we iterate over its items.
// If an item has a terminal immediately after the dot, we produce a shift
// entry. If an item's dot is behind the complete RHS of a rule, we produce
// a reduce entry for the rule for each symbol in FOLLOW(LHS), or an accept
// entry at $ for the augmented start rule.
// Transitions over non-terminals become goto entries.
func (lrgen *TableGenerator) BuildSLR1Table() *Table {
	states := lrgen.dfa.States()
	T := newTable(lrgen.g, len(states))
	tracer().Infof("SLR(1) table of size %d x %d", len(states), lrgen.g.SymbolCount())
	for _, state := range states {
		tracer().Debugf("--- state %d --------------------------------", state.ID)
		for _, i := range state.Items() {
			A := i.PeekSymbol()
			switch {
			case A != nil && A.IsTerminal():
				if target, ok := state.gotos[A]; ok {
					T.add(state.ID, A, Action{Kind: ShiftAction, Target: int(target)})
				}
			case A == nil && i.rule.Serial == 0:
				T.add(state.ID, lrgen.g.EOF(), Action{Kind: AcceptAction})
			case A == nil:
				for _, la := range lrgen.ga.Follow(i.rule.LHS) {
					T.add(state.ID, la, Action{Kind: ReduceAction, Target: i.rule.Serial})
				}
			}
		}
		for _, N := range lrgen.g.NonTerminals() {
			if target, ok := state.gotos[N]; ok {
				T.add(state.ID, N, Action{Kind: GotoAction, Target: int(target)})
			}
		}
	}
	return T
}

// === Parser Table ==========================================================

// ActionKind tags entries of a parser table.
type ActionKind uint8

// Kinds of parser actions.
const (
	ShiftAction  ActionKind = iota + 1 // shift and go to state Target
	ReduceAction                       // reduce by rule no. Target
	GotoAction                         // go to state Target after a reduction
	AcceptAction                       // accept the input
)

func (k ActionKind) String() string {
	switch k {
	case ShiftAction:
		return "shift"
	case ReduceAction:
		return "reduce"
	case GotoAction:
		return "goto"
	case AcceptAction:
		return "accept"
	}
	return "<none>"
}

// Action is a single entry of a parser table.
type Action struct {
	Kind   ActionKind
	Target int // state for shift and goto, rule serial for reduce
}

// String renders an action in the usual short notation, e.g. "s4", "r2",
// "7" (goto) or "acc".
func (a Action) String() string {
	switch a.Kind {
	case ShiftAction:
		return "s" + strconv.Itoa(a.Target)
	case ReduceAction:
		return "r" + strconv.Itoa(a.Target)
	case GotoAction:
		return strconv.Itoa(a.Target)
	case AcceptAction:
		return "acc"
	}
	return ""
}

// Cell is a cell of a parser table. It holds zero actions (empty cell), a
// single action, or more than one action in order of insertion (conflict).
type Cell struct {
	actions []Action
}

// Actions returns the actions of a cell in order of insertion.
func (c Cell) Actions() []Action {
	return c.actions
}

// IsEmpty is a predicate.
func (c Cell) IsEmpty() bool {
	return len(c.actions) == 0
}

// IsConflict is a predicate: does the cell hold more than one action?
func (c Cell) IsConflict() bool {
	return len(c.actions) > 1
}

// Action returns the single action of a cell. ok is false for empty and for
// conflicting cells.
func (c Cell) Action() (a Action, ok bool) {
	if len(c.actions) != 1 {
		return Action{}, false
	}
	return c.actions[0], true
}

func (c Cell) String() string {
	s := make([]string, len(c.actions))
	for k, a := range c.actions {
		s[k] = a.String()
	}
	return strings.Join(s, "/")
}

func (c *Cell) add(a Action) bool {
	for _, b := range c.actions {
		if a == b {
			return false
		}
	}
	c.actions = append(c.actions, a)
	return true
}

// Table is the SLR(1) parser table, indexed by state ID and symbol value.
// Terminal columns hold shift, reduce and accept actions, non-terminal columns
// hold goto actions.
type Table struct {
	g     *Grammar
	cells [][]Cell
}

func newTable(g *Grammar, statecnt int) *Table {
	cells := make([][]Cell, statecnt)
	for i := range cells {
		cells[i] = make([]Cell, g.SymbolCount())
	}
	return &Table{g: g, cells: cells}
}

func (t *Table) add(state uint, A *Symbol, a Action) {
	if t.cells[state][A.Value].add(a) {
		tracer().Debugf("    Action(%d,%s) = %s", state, A, t.cells[state][A.Value])
	}
}

// Grammar returns the grammar the table has been built for.
func (t *Table) Grammar() *Grammar {
	return t.g
}

// StateCount returns the number of rows of the table.
func (t *Table) StateCount() int {
	return len(t.cells)
}

// Cell returns the cell for a state and a symbol. Out-of-range arguments
// result in an empty cell.
func (t *Table) Cell(state uint, A *Symbol) Cell {
	if A == nil || int(state) >= len(t.cells) || A.Value < 0 || A.Value >= len(t.cells[state]) {
		return Cell{}
	}
	return t.cells[state][A.Value]
}

// HasConflicts is a predicate: does any cell hold more than one action?
func (t *Table) HasConflicts() bool {
	for _, row := range t.cells {
		for _, c := range row {
			if c.IsConflict() {
				return true
			}
		}
	}
	return false
}

// Conflicts lists all conflicting cells, ordered by state and symbol value.
func (t *Table) Conflicts() []Conflict {
	var C []Conflict
	for state, row := range t.cells {
		for v, c := range row {
			if c.IsConflict() {
				C = append(C, Conflict{
					State:   uint(state),
					Symbol:  t.g.Symbol(v),
					Actions: c.Actions(),
				})
			}
		}
	}
	return C
}

// Conflict is a table cell with more than one candidate action.
type Conflict struct {
	State   uint
	Symbol  *Symbol
	Actions []Action // in order of insertion
}

// Kind classifies a conflict by the kinds of its candidate actions:
// "shift/reduce" if there is exactly one shift and at least one reduce,
// "reduce/reduce" if all candidates are reduces, otherwise the kinds of all
// candidates joined with "/".
func (c Conflict) Kind() string {
	var shifts, reduces int
	for _, a := range c.Actions {
		switch a.Kind {
		case ShiftAction:
			shifts++
		case ReduceAction:
			reduces++
		}
	}
	switch {
	case shifts == 1 && reduces > 0 && shifts+reduces == len(c.Actions):
		return "shift/reduce"
	case reduces == len(c.Actions):
		return "reduce/reduce"
	}
	kinds := make([]string, len(c.Actions))
	for k, a := range c.Actions {
		kinds[k] = a.Kind.String()
	}
	return strings.Join(kinds, "/")
}

func (c Conflict) String() string {
	s := make([]string, len(c.Actions))
	for k, a := range c.Actions {
		s[k] = a.String()
	}
	return fmt.Sprintf("%s conflict in state %d on %s: %s", c.Kind(), c.State, c.Symbol,
		strings.Join(s, ", "))
}
