package notation

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/slrgen/lr"
	"golang.org/x/exp/ebnf"
)

// Format writes a grammar in text notation. Consecutive rules with the same head
// are joined into one line. The augmented start rule is omitted.
// Parsing the result yields a grammar with the same symbols and rules.
func Format(g *lr.Grammar) string {
	var b bytes.Buffer
	var head *lr.Symbol
	for _, r := range g.Rules()[1:] {
		if r.LHS == head {
			b.WriteString(" | ")
		} else {
			if head != nil {
				b.WriteString("\n")
			}
			head = r.LHS
			b.WriteString(head.Name)
			b.WriteString(" -> ")
		}
		b.WriteString(r.BodyString())
	}
	if head != nil {
		b.WriteString("\n")
	}
	return b.String()
}

// EBNF exports a grammar as Go-style EBNF, with one production per non-terminal.
// Terminals are written as string tokens, empty bodies make the other
// alternatives optional. The augmented start rule is omitted.
func EBNF(g *lr.Grammar) string {
	var b bytes.Buffer
	for _, N := range g.NonTerminals() {
		if N == g.AugmentedStart() {
			continue
		}
		rules := g.FindNonTermRules(N)
		if len(rules) == 0 {
			continue
		}
		var alts []string
		nullable := false
		for _, r := range rules {
			if r.IsEpsilon() {
				nullable = true
				continue
			}
			syms := make([]string, r.Len())
			for i, A := range r.RHS() {
				if A.IsNonTerminal() {
					syms[i] = A.Name
				} else {
					syms[i] = strconv.Quote(A.Name)
				}
			}
			alts = append(alts, strings.Join(syms, " "))
		}
		expr := strings.Join(alts, " | ")
		if nullable && len(alts) > 0 {
			expr = "[ " + expr + " ]"
		}
		if expr == "" {
			b.WriteString(N.Name + " = .\n")
			continue
		}
		b.WriteString(fmt.Sprintf("%s = %s .\n", N.Name, expr))
	}
	return b.String()
}

// Check verifies a grammar with the EBNF verifier: every non-terminal used in
// a body must have productions, and every production must be reachable from
// the start symbol. The result is meant as a warning; an SLR table may be built
// for a grammar failing the check.
func Check(g *lr.Grammar) error {
	src := EBNF(g)
	grammar, err := ebnf.Parse(g.Name, strings.NewReader(src))
	if err != nil {
		return fmt.Errorf("EBNF export of grammar %s not readable: %w", g.Name, err)
	}
	if err = ebnf.Verify(grammar, g.Start().Name); err != nil {
		tracer().Infof("grammar %s: %v", g.Name, err)
		return err
	}
	return nil
}
