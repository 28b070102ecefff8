/*
Package scanner defines an interface for scanners to be used with parsers of package slr.

Scanners are built on top of lexmachine. A Lexer is compiled from a list of
patterns and creates scanners for concrete inputs:

    lexer, err := scanner.NewLexer(
        scanner.Literal("->", ARROW),
        scanner.Pattern{Regex: `[a-z]+`, Type: IDENT},
        scanner.Pattern{Regex: `( |\t)+`, Type: scanner.Ignore},
    )
    scan, err := lexer.Scanner("e -> t")
    for tok := scan.NextToken(); tok.TokType() != scanner.EOF; tok = scan.NextToken() {
        …
    }

A ready-made scanner for whitespace separated symbols is provided by
FieldScanner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slrgen"
)

// tracer traces with key 'slrgen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("slrgen.scanner")
}

// EOF is the token type scanners return at the end of input.
const EOF slrgen.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() slrgen.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, produced by Scanner.
type DefaultToken struct {
	kind   slrgen.TokType
	lexeme string
	span   slrgen.Span
}

var _ slrgen.Token = DefaultToken{}

// MakeDefaultToken creates a token from its parts.
func MakeDefaultToken(typ slrgen.TokType, lexeme string, span slrgen.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() slrgen.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() slrgen.Span {
	return t.span
}
