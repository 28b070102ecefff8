package lr

import "fmt"

// SymbolKindError is returned by a GrammarBuilder if a symbol name is used with
// two different kinds, e.g. as terminal and as non-terminal, or if a reserved
// marker is used as a grammar symbol.
type SymbolKindError struct {
	Symbol string
	Have   SymbolKind
	Want   SymbolKind
}

func (e *SymbolKindError) Error() string {
	return fmt.Sprintf("symbol %q is a %s, cannot be used as %s", e.Symbol, e.Have, e.Want)
}

// IterationLimitError is returned if a fixpoint computation or a parse run
// exceeds its configured bound.
type IterationLimitError struct {
	Phase string // which computation has been stopped
	Limit int
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("%s did not terminate within %d iterations", e.Phase, e.Limit)
}
