package lr

import (
	"golang.org/x/tools/container/intsets"
)

// LRAnalysis holds the results of a static grammar analysis, i.e. the FIRST
// and FOLLOW sets of all symbols of an (augmented) grammar.
//
// Sets are stored as sparse int sets of symbol values. The empty body marker
// has value 0 and is a member of FIRST(A) whenever A is nullable.
type LRAnalysis struct {
	g      *Grammar
	first  []*intsets.Sparse // indexed by symbol value
	follow []*intsets.Sparse // indexed by symbol value, nil for terminals
	passes int
	limits limits
}

// Analysis computes FIRST and FOLLOW sets for g. The computation iterates over
// all rules until a complete pass changes no set. It returns an error if the
// number of passes exceeds its bound.
func Analysis(g *Grammar, opts ...Option) (*LRAnalysis, error) {
	ga := &LRAnalysis{
		g:      g,
		limits: makeLimits(opts),
	}
	ga.initSets()
	if err := ga.computeFirstAndFollow(); err != nil {
		return nil, err
	}
	tracer().Infof("analysis of grammar %s converged after %d passes", g.Name, ga.passes)
	return ga, nil
}

// Grammar returns the grammar this analysis has been performed for.
func (ga *LRAnalysis) Grammar() *Grammar {
	return ga.g
}

// Passes returns the number of passes the fixpoint loop needed, including the
// final pass which did not change anything.
func (ga *LRAnalysis) Passes() int {
	return ga.passes
}

// First returns FIRST(A), ordered by symbol value. The empty body marker is
// included if A is nullable.
func (ga *LRAnalysis) First(A *Symbol) []*Symbol {
	if A == nil || A.Value >= len(ga.first) {
		return nil
	}
	return ga.symbols(ga.first[A.Value])
}

// Follow returns FOLLOW(A) for a non-terminal A, ordered by symbol value.
func (ga *LRAnalysis) Follow(A *Symbol) []*Symbol {
	if A == nil || A.Value >= len(ga.follow) || ga.follow[A.Value] == nil {
		return nil
	}
	return ga.symbols(ga.follow[A.Value])
}

// IsNullable is a predicate: may A derive the empty string?
func (ga *LRAnalysis) IsNullable(A *Symbol) bool {
	return ga.first[A.Value].Has(epsilonValue)
}

func (ga *LRAnalysis) symbols(set *intsets.Sparse) []*Symbol {
	values := set.AppendTo(nil) // in increasing order
	syms := make([]*Symbol, len(values))
	for i, v := range values {
		syms[i] = ga.g.Symbol(v)
	}
	return syms
}

func (ga *LRAnalysis) initSets() {
	n := ga.g.SymbolCount()
	ga.first = make([]*intsets.Sparse, n)
	ga.follow = make([]*intsets.Sparse, n)
	for v := 0; v < n; v++ {
		A := ga.g.Symbol(v)
		ga.first[v] = &intsets.Sparse{}
		switch {
		case A.IsTerminal():
			ga.first[v].Insert(v)
		case A.IsEpsilon():
			ga.first[v].Insert(epsilonValue)
		case A.IsNonTerminal():
			ga.follow[v] = &intsets.Sparse{}
		}
	}
	ga.follow[ga.g.AugmentedStart().Value].Insert(eofValue)
}

// passLimit returns the bound for the number of passes. Every pass but the last
// one adds at least one element to a FIRST or FOLLOW set of a non-terminal, and
// these sets are bounded by the number of terminals plus the two markers.
func (ga *LRAnalysis) passLimit() int {
	if ga.limits.passes > 0 {
		return ga.limits.passes
	}
	N := len(ga.g.NonTerminals())
	T := len(ga.g.Terminals()) + 2
	return 2*N*T + 2
}

func (ga *LRAnalysis) computeFirstAndFollow() error {
	limit := ga.passLimit()
	for {
		if ga.passes >= limit {
			tracer().Errorf("FIRST/FOLLOW computation exceeds %d passes", limit)
			return &IterationLimitError{Phase: "FIRST/FOLLOW computation", Limit: limit}
		}
		ga.passes++
		if !ga.pass() {
			return nil
		}
	}
}

// pass performs a single pass over all rules. It returns true if any FIRST or
// FOLLOW set has changed.
func (ga *LRAnalysis) pass() bool {
	updated := false
	eps := &intsets.Sparse{}
	eps.Insert(epsilonValue)
	for _, r := range ga.g.Rules() {
		head := r.LHS.Value
		// FIRST(head): walk the body until a non-nullable symbol is found
		nullable := true
		for _, A := range r.RHS() {
			var f intsets.Sparse
			f.Difference(ga.first[A.Value], eps)
			updated = ga.first[head].UnionWith(&f) || updated
			if !ga.first[A.Value].Has(epsilonValue) {
				nullable = false
				break
			}
		}
		if nullable {
			updated = ga.first[head].Insert(epsilonValue) || updated
		}
		// FOLLOW: scan the body right to left with a trailing set
		var trailer intsets.Sparse
		trailer.Copy(ga.follow[head])
		rhs := r.RHS()
		for i := len(rhs) - 1; i >= 0; i-- {
			A := rhs[i]
			if A.IsNonTerminal() {
				var t intsets.Sparse
				t.Difference(&trailer, eps)
				updated = ga.follow[A.Value].UnionWith(&t) || updated
			}
			if ga.first[A.Value].Has(epsilonValue) {
				trailer.UnionWith(ga.first[A.Value])
			} else {
				trailer.Copy(ga.first[A.Value])
			}
		}
	}
	return updated
}
