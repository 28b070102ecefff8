/*
Package notation reads and writes grammars in a compact line-oriented text format.

Every line holds the productions for one head:

    E -> E + T | T
    T -> T * F | F
    F -> ( E ) | id

Symbols are separated by blanks. A symbol consisting entirely of uppercase letters
is a non-terminal, every other symbol is a terminal. The caret '^' denotes an
empty body and must not be combined with other symbols. The head of the first
line is the start symbol of the grammar. The dollar sign '$' is reserved for
end of input.

Grammars may be exported to Go-style EBNF (see package golang.org/x/exp/ebnf),
which is used to check for non-terminals without productions and for
productions which are unreachable from the start symbol.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package notation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slrgen.lr'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.lr")
}
