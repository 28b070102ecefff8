package notation

import (
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/slrgen"
	"github.com/npillmayer/slrgen/lr"
	"github.com/npillmayer/slrgen/lr/scanner"
)

// Token types of the grammar notation.
const (
	tokArrow slrgen.TokType = iota + 1
	tokBar
	tokSymbol
	tokNewline
)

var lexer struct {
	once sync.Once
	lx   *scanner.Lexer
	err  error
}

// notationLexer returns the lexer for grammar text, compiling it on first use.
// Symbols end at blanks and at '|', but may contain '-' and '>'.
func notationLexer() (*scanner.Lexer, error) {
	lexer.once.Do(func() {
		lexer.lx, lexer.err = scanner.NewLexer(
			scanner.Literal("->", tokArrow),
			scanner.Literal("|", tokBar),
			scanner.Pattern{Regex: `\r?\n`, Type: tokNewline},
			scanner.Pattern{Regex: `[^ \t\r\n\|]+`, Type: tokSymbol},
			scanner.Pattern{Regex: `( |\t|\r)+`, Type: scanner.Ignore},
		)
	})
	return lexer.lx, lexer.err
}

// IsNonTerminalName is a predicate: does name consist of uppercase letters only?
func IsNonTerminalName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// Parse reads a grammar in text notation. Blank lines are ignored.
// Productions are numbered in the order they appear, starting with 1;
// rule 0 is the augmented start rule. Identical bodies for a head are collapsed.
//
// Parse returns a *MalformedHeadError, a *NullSymbolMisuseError or a
// *SyntaxError for malformed input.
func Parse(text string) (*lr.Grammar, error) {
	return ParseNamed("G", text)
}

// ParseNamed is like Parse, but lets clients name the grammar.
func ParseNamed(name string, text string) (*lr.Grammar, error) {
	lx, err := notationLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lx.Scanner(text)
	if err != nil {
		return nil, err
	}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	b := lr.NewGrammarBuilder(name)
	lineno := 1
	var line []slrgen.Token
	for {
		tok := scan.NextToken()
		if scanErr != nil {
			return nil, &SyntaxError{Line: lineno, Msg: scanErr.Error()}
		}
		if tok.TokType() == scanner.EOF || tok.TokType() == tokNewline {
			if err := parseLine(b, lineno, line); err != nil {
				return nil, err
			}
			if tok.TokType() == scanner.EOF {
				break
			}
			line = line[:0]
			lineno++
			continue
		}
		line = append(line, tok)
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, &SyntaxError{Line: lineno, Msg: err.Error()}
	}
	tracer().Debugf("parsed grammar %s with %d rules", g.Name, g.Size())
	return g, nil
}

// parseLine adds the rules of one line 'HEAD -> BODY | BODY …' to b.
func parseLine(b *lr.GrammarBuilder, lineno int, line []slrgen.Token) error {
	if len(line) == 0 {
		return nil
	}
	if line[0].TokType() != tokSymbol {
		return &SyntaxError{Line: lineno, Msg: "expected production head, found " + quote(line[0])}
	}
	head := line[0].Lexeme()
	if len(line) < 2 || line[1].TokType() != tokArrow {
		return &SyntaxError{Line: lineno, Msg: "expected '->' after " + quote(line[0])}
	}
	if !IsNonTerminalName(head) {
		return &MalformedHeadError{Line: lineno, Head: head}
	}
	var bodies [][]string
	body := []string{}
	for _, tok := range line[2:] {
		switch tok.TokType() {
		case tokArrow:
			return &SyntaxError{Line: lineno, Msg: "more than one '->' in production for " + head}
		case tokBar:
			bodies = append(bodies, body)
			body = []string{}
		default:
			if tok.Lexeme() == lr.EOFName {
				return &SyntaxError{Line: lineno, Msg: "end-of-input marker '$' used as grammar symbol"}
			}
			body = append(body, tok.Lexeme())
		}
	}
	bodies = append(bodies, body)
	for _, body := range bodies {
		if err := addRule(b, lineno, head, body); err != nil {
			return err
		}
	}
	return nil
}

func addRule(b *lr.GrammarBuilder, lineno int, head string, body []string) error {
	if len(body) == 0 {
		return &SyntaxError{Line: lineno, Msg: "empty alternative for " + head + ", use '^' for an empty body"}
	}
	for _, sym := range body {
		if sym == lr.EpsilonName {
			if len(body) > 1 {
				return &NullSymbolMisuseError{Line: lineno, Head: head, Body: strings.Join(body, " ")}
			}
			b.LHS(head).Epsilon()
			return nil
		}
	}
	rb := b.LHS(head)
	for _, sym := range body {
		if IsNonTerminalName(sym) {
			rb.N(sym)
		} else {
			rb.T(sym)
		}
	}
	rb.End()
	return nil
}

func quote(tok slrgen.Token) string {
	return "'" + tok.Lexeme() + "'"
}
