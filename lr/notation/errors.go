package notation

import "fmt"

// MalformedHeadError is returned if the head of a production is not a valid
// non-terminal name.
type MalformedHeadError struct {
	Line int
	Head string
}

func (e *MalformedHeadError) Error() string {
	return fmt.Sprintf("line %d: head %q is not capitalized to be treated as a non-terminal", e.Line, e.Head)
}

// NullSymbolMisuseError is returned if the empty body marker appears together
// with other symbols in one body.
type NullSymbolMisuseError struct {
	Line int
	Head string
	Body string
}

func (e *NullSymbolMisuseError) Error() string {
	return fmt.Sprintf("line %d: '%s -> %s': null symbol '^' is not allowed here", e.Line, e.Head, e.Body)
}

// SyntaxError is returned for lines which are not of the form
// 'HEAD -> BODY | BODY …'.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
