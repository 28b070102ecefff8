/*
Package lr implements prerequisites for SLR(1) parsing: grammars, static
grammar analysis, the characteristic finite state machine and parser tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may
contain epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()  // S  ->  A a
    b.LHS("A").N("B").N("D").End()  // A  ->  B D
    b.LHS("B").T("b").End()         // B  ->  b
    b.LHS("B").Epsilon()            // B  ->  ^
    b.LHS("D").T("d").End()         // D  ->  d
    b.LHS("D").Epsilon()            // D  ->  ^

The head of the first rule is the start symbol. Every grammar is augmented
with a fresh start symbol S' and rule 0 S' -> S:

   g, _ := b.Grammar()
   g.Dump()

   0: S' -> S
   1: S -> A a
   2: A -> B D
   3: B -> b
   4: B -> ^
   5: D -> d
   6: D -> ^

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LRAnalysis object, which computes FIRST and
FOLLOW sets for the grammar.

Although FIRST and FOLLOW-sets are mainly intended to be used for internal
purposes of constructing the parser tables, methods for getting FIRST(N)
and FOLLOW(N) of non-terminals are defined to be public.

    ga, err := lr.Analysis(g)  // analyser for grammar above
    ga.Grammar().EachNonTerminal(
        func(N *lr.Symbol) interface{} {              // ad-hoc mapper function
            fmt.Printf("FIRST(%s) = %v\n", N, ga.First(N))
            return nil
        })

    // Output:
    FIRST(S') = [a b d]
    FIRST(S) = [a b d]
    FIRST(A) = [^ b d]       // ^ = epsilon
    FIRST(B) = [^ b]
    FIRST(D) = [^ d]

Parser Construction

Using grammar analysis as input, a bottom-up parser can be constructed.
First a characteristic finite state machine (CFSM) is built from the
grammar. The CFSM will then be transformed into an SLR(1) table, holding
ACTION entries in terminal columns and GOTO entries in non-terminal columns.
The CFSM will not be thrown away, but is made available to the client. This is
intended for debugging purposes. It can be exported to Graphviz's Dot-format.

Example:

    lrgen := lr.NewTableGenerator(ga)  // ga is an LRAnalysis, see above
    err := lrgen.CreateTables()        // construct LR parser tables
    for _, c := range lrgen.Table().Conflicts() {
        fmt.Println(c)
    }

A table cell holding more than one action is a conflict. Conflicts are never
resolved; they are reported and the table is complete nevertheless.

Both fixpoint computations are bounded, see IterationLimit and StateLimit.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slrgen.lr'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.lr")
}
