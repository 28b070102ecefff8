package scanner

import (
	"errors"
	"strings"

	"github.com/npillmayer/slrgen"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Ignore is the token type of patterns whose matches are dropped, e.g. whitespace.
const Ignore slrgen.TokType = 0

// Pattern is a regular expression in lexmachine syntax, together with the token
// type of its matches.
type Pattern struct {
	Regex string
	Type  slrgen.TokType
}

// Literal returns a pattern matching s verbatim.
func Literal(s string, typ slrgen.TokType) Pattern {
	var b strings.Builder
	for _, r := range s {
		b.WriteByte('\\')
		b.WriteRune(r)
	}
	return Pattern{Regex: b.String(), Type: typ}
}

// Lexer is a compiled lexmachine DFA. Scanners for concrete inputs are created
// from it; the lexer itself is not changed by scanning.
type Lexer struct {
	dfa *lexmachine.Lexer
}

// NewLexer compiles patterns into a DFA. lexmachine prefers the longest match;
// for matches of equal length the pattern listed first wins. Literals should
// therefore be listed in front of general patterns.
//
// NewLexer will return an error if compiling the DFA failed.
func NewLexer(patterns ...Pattern) (*Lexer, error) {
	dfa := lexmachine.NewLexer()
	for _, p := range patterns {
		if p.Type == Ignore {
			dfa.Add([]byte(p.Regex), skip)
		} else {
			dfa.Add([]byte(p.Regex), emit(p.Type))
		}
	}
	if err := dfa.Compile(); err != nil {
		tracer().Errorf("cannot compile DFA: %v", err)
		return nil, err
	}
	return &Lexer{dfa: dfa}, nil
}

// Scanner creates a scanner for a given input.
func (lx *Lexer) Scanner(input string) (*Scanner, error) {
	s, err := lx.dfa.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{lms: s, onError: logError, end: uint64(len(input))}, nil
}

// Scanner splits an input into tokens, implementing the Tokenizer interface.
type Scanner struct {
	lms     *lexmachine.Scanner
	onError func(error)
	end     uint64 // length of input
}

var _ Tokenizer = (*Scanner)(nil)

// SetErrorHandler sets an error handler for the scanner. A nil handler restores
// the default, which traces errors.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	s.onError = h
}

// NextToken is part of the Tokenizer interface. Input which does not match any
// pattern is reported to the error handler and skipped. After the last token,
// NextToken returns tokens of type EOF, positioned at the end of the input.
func (s *Scanner) NextToken() slrgen.Token {
	for {
		tok, err, eos := s.lms.Next()
		if eos {
			return MakeDefaultToken(EOF, "", slrgen.Span{s.end, s.end})
		}
		if err != nil {
			s.onError(err)
			var ui *machines.UnconsumedInput
			if !errors.As(err, &ui) {
				return MakeDefaultToken(EOF, "", slrgen.Span{s.end, s.end})
			}
			s.lms.TC = ui.FailTC
			continue
		}
		t := tok.(*lexmachine.Token)
		tracer().Debugf("token %d | %q", t.Type, t.Lexeme)
		from := uint64(t.TC)
		span := slrgen.Span{from, from + uint64(len(t.Lexeme))}
		return MakeDefaultToken(slrgen.TokType(t.Type), string(t.Lexeme), span)
	}
}

// --- lexmachine actions ----------------------------------------------------

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func emit(typ slrgen.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}
