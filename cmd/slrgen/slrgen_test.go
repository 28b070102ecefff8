package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slrgen/lr/slr"
	"github.com/pterm/pterm"
)

const exprGrammar = `E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`

func writeGrammar(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "expr.grammar")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exprParser(t *testing.T) *slr.Parser {
	g, err := slr.ParseGrammar(exprGrammar)
	if err != nil {
		t.Fatal(err)
	}
	p, err := slr.BuildParser(g)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func execute(t *testing.T, args ...string) (string, error) {
	pterm.DisableColor()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(""))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.cli")
	defer teardown()
	//
	pterm.DisableColor()
	var b bytes.Buffer
	if err := writeReport(&b, exprParser(t), true); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{
		"0: E' -> E",
		"E = { (, id }",
		"E = { $, +, ) }",
		"I11",
		"on id goto I5",
		"acc",
		"s5",
		"grammar is SLR(1)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected report to contain %q", want)
		}
	}
}

func TestTraceOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.cli")
	defer teardown()
	//
	pterm.DisableColor()
	p := exprParser(t)
	var b bytes.Buffer
	if err := writeTrace(&b, p.Run("id * id")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "input accepted") {
		t.Errorf("expected 'id * id' to be accepted, output is\n%s", b.String())
	}
	b.Reset()
	trace := p.Run("id +")
	if err := writeTrace(&b, trace); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "input rejected") {
		t.Errorf("expected 'id +' to be rejected, output is\n%s", b.String())
	}
	if outcome(trace) == nil {
		t.Errorf("expected rejected input to make the command fail")
	}
}

func TestConflictReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.cli")
	defer teardown()
	//
	pterm.DisableColor()
	g, err := slr.ParseGrammar("E -> E + E | id")
	if err != nil {
		t.Fatal(err)
	}
	p, err := slr.BuildParser(g)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if n := writeConflicts(&b, p); n != 1 {
		t.Errorf("expected 1 conflict, have %d", n)
	}
	if !strings.Contains(b.String(), "shift/reduce") {
		t.Errorf("expected a shift/reduce conflict to be reported, output is\n%s", b.String())
	}
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.cli")
	defer teardown()
	//
	pterm.DisableColor()
	var b bytes.Buffer
	intp := &Intp{parser: exprParser(t), out: &b, cmd: rootCmd}
	inputs := []struct {
		line string
		want string
		quit bool
		fail bool
	}{
		{"", "", false, false},
		{"( id )", "input accepted", false, false},
		{":grammar", "3: T -> T * F", false, false},
		{":follow", "T = { $, +, *, ) }", false, false},
		{":table", "acc", false, false},
		{":help", ":conflicts", false, false},
		{":load", "", false, true},
		{":nonsense", "", false, true},
		{":quit", "", true, false},
	}
	for _, input := range inputs {
		b.Reset()
		quit, err := intp.Eval(input.line)
		if quit != input.quit {
			t.Errorf("%q: expected quit = %v", input.line, input.quit)
		}
		if (err != nil) != input.fail {
			t.Errorf("%q: unexpected error state %v", input.line, err)
		}
		if !strings.Contains(b.String(), input.want) {
			t.Errorf("%q: expected output to contain %q, is\n%s", input.line, input.want, b.String())
		}
	}
}

func TestCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slrgen.cli")
	defer teardown()
	//
	path := writeGrammar(t, exprGrammar)
	out, err := execute(t, "ebnf", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `E = E "+" T | T .`) || !strings.Contains(out, "well-formed") {
		t.Errorf("unexpected EBNF output\n%s", out)
	}
	out, err = execute(t, "dot", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "digraph") || !strings.Contains(out, "s011") {
		t.Errorf("unexpected Dot output\n%s", out)
	}
	out, err = execute(t, "parse", path, "id", "+", "id", "*", "id")
	if err != nil {
		t.Errorf("expected input to be accepted: %v", err)
	}
	if !strings.Contains(out, "reduce by E -> E + T") {
		t.Errorf("expected trace to show the final reduction\n%s", out)
	}
	if _, err = execute(t, "parse", path, "id", "id"); err == nil {
		t.Errorf("expected 'id id' to make the parse command fail")
	}
	if _, err = execute(t, "tables", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("expected missing grammar file to be reported")
	}
}
