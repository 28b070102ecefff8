package slr

import (
	"fmt"

	"github.com/npillmayer/slrgen/lr"
)

// UnrecognizedSymbolError is reported if an input symbol is not a terminal of
// the grammar.
type UnrecognizedSymbolError struct {
	Symbol   string
	Position int // index of the symbol within the input
}

func (e *UnrecognizedSymbolError) Error() string {
	return fmt.Sprintf("unrecognized symbol %s", e.Symbol)
}

// UnparseableInputError is reported if the parser table has no action for the
// current state and lookahead.
type UnparseableInputError struct {
	State  uint
	Symbol string
}

func (e *UnparseableInputError) Error() string {
	return fmt.Sprintf("input cannot be parsed by given grammar (state %d, symbol %s)", e.State, e.Symbol)
}

// ConflictEncounteredError is reported if the parser reaches a table cell
// holding more than one action.
type ConflictEncounteredError struct {
	Conflict lr.Conflict
}

func (e *ConflictEncounteredError) Error() string {
	return fmt.Sprintf("%s conflict at state %d, symbol %s", e.Conflict.Kind(), e.Conflict.State,
		e.Conflict.Symbol)
}
