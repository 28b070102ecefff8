package slrgen

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Scanners of package lr/scanner define
// the categories they produce.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for an identifier in an expression grammar:
//
//    TokType = scanner.Symbol  // category of this token
//    Lexeme  = "id"            // lexeme how it appeared in the input stream
//    Span    = 5…7             // occured from position 5 in the input stream
//
// The parse engine matches tokens to grammar terminals by lexeme.
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input. Tokens carry the span of
// their lexeme, the parse engine computes spans for reduced handles. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
