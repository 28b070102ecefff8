package scanner

import (
	"sync"

	"github.com/npillmayer/slrgen"
)

// Symbol is the token type of every token a FieldScanner produces.
const Symbol slrgen.TokType = 1

var fieldLexer struct {
	once  sync.Once
	lexer *Lexer
	err   error
}

// FieldScanner creates a scanner which splits its input at blanks, tabs and
// newlines. Every non-blank run of characters is a token of type Symbol, its
// lexeme being the symbol's name.
func FieldScanner(input string) (*Scanner, error) {
	fieldLexer.once.Do(func() {
		fieldLexer.lexer, fieldLexer.err = NewLexer(
			Pattern{Regex: `[^ \t\r\n]+`, Type: Symbol},
			Pattern{Regex: `[ \t\r\n]+`, Type: Ignore},
		)
	})
	if fieldLexer.err != nil {
		return nil, fieldLexer.err
	}
	return fieldLexer.lexer.Scanner(input)
}
