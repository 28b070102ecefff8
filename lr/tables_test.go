package lr

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeTables(t *testing.T, g *Grammar, opts ...Option) *TableGenerator {
	ga, err := Analysis(g, opts...)
	if err != nil {
		t.Fatal(err)
	}
	lrgen := NewTableGenerator(ga, opts...)
	if err = lrgen.CreateTables(); err != nil {
		t.Fatal(err)
	}
	return lrgen
}

func TestClosure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	i, A := StartItem(g.Rule(0))
	if A != g.Start() {
		t.Errorf("expected start item to peek at %s, peeks at %v", g.Start(), A)
	}
	C := g.closureSet(newItemSet())
	if !C.Empty() {
		t.Errorf("expected closure of empty set to be empty")
	}
	C.Add(i)
	C = g.closureSet(C)
	if C.Size() != 7 {
		t.Errorf("expected closure of %s to contain 7 items, has %d: %s", i, C.Size(), itemSetString(C))
	}
	G := g.gotoSet(C, g.SymbolByName("+"))
	if !G.Empty() {
		t.Errorf("expected GOTO(I0, +) to be empty, is %s", itemSetString(G))
	}
}

func TestCFSMExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	lrgen := makeTables(t, g)
	cfsm := lrgen.CFSM()
	if cfsm.Size() != 12 {
		t.Errorf("expected 12 states, have %d", cfsm.Size())
	}
	keys := make(map[string]uint)
	for _, s := range cfsm.States() {
		for _, other := range cfsm.States() {
			if other.ID != s.ID && other.items.Equals(s.items) {
				t.Errorf("states %d and %d have equal item sets", s.ID, other.ID)
			}
		}
		keys[s.key] = s.ID
	}
	if len(keys) != 12 {
		t.Errorf("expected 12 distinct state keys, have %d", len(keys))
	}
	if acc := lrgen.AcceptingStates(); len(acc) != 1 || acc[0] != 1 {
		t.Errorf("expected state 1 to be the only accepting state, have %v", acc)
	}
	s, ok := cfsm.Goto(cfsm.S0, g.SymbolByName("id"))
	if !ok || s.ID != 5 {
		t.Errorf("expected GOTO(0, id) = 5, have %v", s)
	}
	if _, ok = cfsm.Goto(cfsm.S0, g.SymbolByName(")")); ok {
		t.Errorf("expected no transition from state 0 over )")
	}
}

func TestItemSetKeyIgnoresOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	i1, _ := StartItem(g.Rule(1))
	i2, _ := StartItem(g.Rule(2))
	S1, S2 := newItemSet(), newItemSet()
	S1.Add(i1, i2, i2.Advance())
	S2.Add(i2.Advance(), i2, i1)
	if itemSetKey(S1) != itemSetKey(S2) {
		t.Errorf("expected equal item sets to have equal keys")
	}
	S2.Remove(i1)
	if itemSetKey(S1) == itemSetKey(S2) {
		t.Errorf("expected different item sets to have different keys")
	}
}

func TestTableExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	lrgen := makeTables(t, g)
	if lrgen.HasConflicts {
		t.Errorf("expected expression grammar to be SLR(1), conflicts: %v", lrgen.Table().Conflicts())
	}
	T := lrgen.Table()
	checks := []struct {
		state  uint
		sym    string
		action string
	}{
		{0, "id", "s5"},
		{0, "(", "s4"},
		{0, "E", "1"},
		{0, "T", "2"},
		{1, "$", "acc"},
		{1, "+", "s6"},
		{2, "+", "r2"},
		{2, "*", "s7"},
		{5, "$", "r6"},
		{9, "+", "r1"},
		{9, "*", "s7"},
		{11, ")", "r5"},
		{0, "+", ""},
	}
	for _, c := range checks {
		cell := T.Cell(c.state, g.SymbolByName(c.sym))
		if cell.String() != c.action {
			t.Errorf("expected Action(%d,%s) = %q, have %q", c.state, c.sym, c.action, cell)
		}
	}
	if !T.Cell(99, g.EOF()).IsEmpty() || !T.Cell(0, nil).IsEmpty() {
		t.Errorf("expected out-of-range cells to be empty")
	}
	for _, s := range lrgen.CFSM().States() {
		if !T.Cell(s.ID, g.AugmentedStart()).IsEmpty() {
			t.Errorf("expected no goto entries for %s", g.AugmentedStart())
		}
	}
}

func TestTableShiftReduceConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Ambiguous")
	b.LHS("E").N("E").T("+").N("E").End()
	b.LHS("E").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	lrgen := makeTables(t, g)
	if !lrgen.HasConflicts {
		t.Fatalf("expected ambiguous grammar to have conflicts")
	}
	C := lrgen.Table().Conflicts()
	if len(C) != 1 {
		t.Fatalf("expected exactly 1 conflict, have %v", C)
	}
	if C[0].State != 4 || C[0].Symbol.Name != "+" || C[0].Kind() != "shift/reduce" {
		t.Errorf("unexpected conflict: %s", C[0])
	}
	if cell := lrgen.Table().Cell(4, g.SymbolByName("+")); cell.String() != "s3/r1" {
		t.Errorf("expected candidates in order of insertion s3/r1, have %s", cell)
	}
	if _, ok := lrgen.Table().Cell(4, g.SymbolByName("+")).Action(); ok {
		t.Errorf("expected conflicting cell not to yield a single action")
	}
}

func TestTableReduceReduceConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("RR")
	b.LHS("S").N("A").End()
	b.LHS("S").N("B").End()
	b.LHS("A").T("x").End()
	b.LHS("B").T("x").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	C := makeTables(t, g).Table().Conflicts()
	if len(C) != 1 || C[0].Kind() != "reduce/reduce" || C[0].Symbol != g.EOF() {
		t.Errorf("expected one reduce/reduce conflict on $, have %v", C)
	}
}

func TestConflictKinds(t *testing.T) {
	c := Conflict{Actions: []Action{{Kind: AcceptAction}, {Kind: ReduceAction, Target: 2}}}
	if c.Kind() != "accept/reduce" {
		t.Errorf("expected accept/reduce, have %s", c.Kind())
	}
	c = Conflict{Actions: []Action{{ShiftAction, 1}, {ShiftAction, 2}, {ReduceAction, 3}}}
	if c.Kind() != "shift/shift/reduce" {
		t.Errorf("expected shift/shift/reduce, have %s", c.Kind())
	}
	var cell Cell
	cell.add(Action{ReduceAction, 3})
	cell.add(Action{ReduceAction, 3})
	if cell.IsConflict() || cell.String() != "r3" {
		t.Errorf("expected identical actions to be recorded once, have %s", cell)
	}
}

func TestTableEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("List")
	b.LHS("X").T("a").N("X").End()
	b.LHS("X").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	lrgen := makeTables(t, g)
	if lrgen.HasConflicts {
		t.Errorf("expected no conflicts, have %v", lrgen.Table().Conflicts())
	}
	if cell := lrgen.Table().Cell(0, g.EOF()); cell.String() != "r2" {
		t.Errorf("expected epsilon reduce in state 0 on $, have %q", cell)
	}
}

func TestCFSMStateLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	ga, err := Analysis(makeExprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	lrgen := NewTableGenerator(ga, StateLimit(3))
	err = lrgen.CreateTables()
	var limitErr *IterationLimitError
	if !errors.As(err, &limitErr) || limitErr.Limit != 3 {
		t.Errorf("expected state limit of 3 to be exceeded, have %v", err)
	}
}

func TestExports(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	lrgen := makeTables(t, makeExprGrammar(t))
	var dot bytes.Buffer
	if err := lrgen.CFSM().ToGraphViz(&dot); err != nil {
		t.Fatal(err)
	}
	for id := 0; id < 12; id++ {
		if !strings.Contains(dot.String(), fmt.Sprintf("s%03d [", id)) {
			t.Errorf("expected Dot output to contain state %d", id)
		}
	}
	if !strings.Contains(dot.String(), `s008 -> s011 [label=")"]`) {
		t.Errorf("expected Dot output to contain edge 8 -> 11")
	}
	var html bytes.Buffer
	if err := TableAsHTML(lrgen, &html); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html.String(), "<td>state 11</td>") {
		t.Errorf("expected HTML table to contain all states")
	}
}
