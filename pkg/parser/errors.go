package parser

import (
	"fmt"
	"strings"

	"github.com/culebra-lang/culebra/pkg/lexer"
)

// ParseError is a syntax error with the token the parser was looking at
// when it failed. The token's position locates the caret in error reports.
type ParseError struct {
	Message string
	Token   lexer.Token
}

func (e *ParseError) Error() string {
	return e.Message
}

// recordExpectation records a mismatch between the expected token types
// and the actual current token. Only the first error of a parse survives;
// later failures during recovery are dropped.
func (p *Parser) recordExpectation(expected []lexer.TokenType) {
	if p.err != nil {
		return
	}

	names := make([]string, len(expected))
	for i, t := range expected {
		names[i] = t.String()
	}

	tok := p.cur()
	p.err = &ParseError{
		Message: fmt.Sprintf("Expected %s, got %s instead in position %d",
			strings.Join(names, ", "), tok.Type, tok.Pos),
		Token: tok,
	}
}

// recordErrorf records an arbitrary first error at the current token.
func (p *Parser) recordErrorf(format string, args ...any) {
	if p.err != nil {
		return
	}

	p.err = &ParseError{
		Message: fmt.Sprintf(format, args...),
		Token:   p.cur(),
	}
}
