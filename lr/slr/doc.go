/*
Package slr provides an SLR(1)-parser which records every step it takes.
Clients use the tools of package lr, or the convenience functions of this
package, to prepare the parse table. The SLR parser utilizes this table to
create a right derivation for a given input and reports each configuration
of its stacks along the way.

This parser is intended for studying grammars and their SLR(1) tables, e.g.
for small domain-specific languages or in a classroom. Grammars may be given
in text notation (see package notation) and used directly, without a
code-generation or compile step.

Package slr can only handle SLR(1) grammars. Tables are built for other grammars
as well, but a parse run stops as soon as it reaches a conflicting cell.
Conflicts are never resolved.

Usage

Clients construct a grammar, usually from its text notation:

	g, err := slr.ParseGrammar(`
	    E -> E + T | T
	    T -> T * F | F
	    F -> ( E ) | id
	`)

This grammar is subjected to grammar analysis and table generation.

	p, err := slr.BuildParser(g)
	for _, c := range p.Conflicts() { ... }  // not an SLR(1) grammar

Finally parse some input, given as blank-separated terminals:

	trace := p.Run("id + id * id")
	if trace.Accepted { ... }
	for _, step := range trace.Steps { ... }

A parse run which fails ends with a step carrying a typed error:
UnrecognizedSymbolError, UnparseableInputError or ConflictEncounteredError.
The same error is available as trace.Err.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slrgen.lr'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.lr")
}
