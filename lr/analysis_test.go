package lr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func names(syms []*Symbol) string {
	return fmt.Sprintf("%v", syms)
}

func TestFirstFollowExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	first := map[string]string{
		"E'": "[( id]",
		"E":  "[( id]",
		"T":  "[( id]",
		"F":  "[( id]",
		"+":  "[+]",
	}
	for name, expected := range first {
		if f := names(ga.First(g.SymbolByName(name))); f != expected {
			t.Errorf("expected FIRST(%s) = %s, have %s", name, expected, f)
		}
	}
	follow := map[string]string{
		"E'": "[$]",
		"E":  "[$ + )]",
		"T":  "[$ + * )]",
		"F":  "[$ + * )]",
	}
	for name, expected := range follow {
		if f := names(ga.Follow(g.SymbolByName(name))); f != expected {
			t.Errorf("expected FOLLOW(%s) = %s, have %s", name, expected, f)
		}
	}
	if ga.Follow(g.SymbolByName("id")) != nil {
		t.Errorf("expected no FOLLOW set for terminals")
	}
}

func TestFirstFollowEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Eps")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").N("B").N("D").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("D").T("d").End()
	b.LHS("D").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ga, err := Analysis(g)
	if err != nil {
		t.Fatal(err)
	}
	checks := []struct {
		sym, first, follow string
	}{
		{"S", "[a b d]", "[$]"},
		{"A", "[^ b d]", "[a]"},
		{"B", "[^ b]", "[a d]"},
		{"D", "[^ d]", "[a]"},
	}
	for _, c := range checks {
		A := g.SymbolByName(c.sym)
		if f := names(ga.First(A)); f != c.first {
			t.Errorf("expected FIRST(%s) = %s, have %s", c.sym, c.first, f)
		}
		if f := names(ga.Follow(A)); f != c.follow {
			t.Errorf("expected FOLLOW(%s) = %s, have %s", c.sym, c.follow, f)
		}
	}
	if !ga.IsNullable(g.SymbolByName("A")) || ga.IsNullable(g.SymbolByName("S")) {
		t.Errorf("expected A to be nullable and S not to be nullable")
	}
}

func TestAnalysisIsFixpoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	ga, err := Analysis(makeExprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	if ga.Passes() < 2 {
		t.Errorf("expected at least 2 passes, have %d", ga.Passes())
	}
	if ga.pass() {
		t.Errorf("expected another pass over a converged analysis to change nothing")
	}
}

func TestAnalysisIterationLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.lr")
	defer teardown()
	//
	_, err := Analysis(makeExprGrammar(t), IterationLimit(1))
	var limitErr *IterationLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected an IterationLimitError, have %v", err)
	}
	if limitErr.Limit != 1 {
		t.Errorf("expected limit 1 to be reported, have %d", limitErr.Limit)
	}
}
