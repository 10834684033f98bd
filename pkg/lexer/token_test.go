package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Type: TOKEN_IDENT, Literal: "x"}, "Token(IDENTIFIER, x)"},
		{Token{Type: TOKEN_NUMBER, Literal: "42"}, "Token(NUMBER, 42)"},
		{Token{Type: TOKEN_ASSIGN, Literal: "="}, "Token(ASSIGN, =)"},
		{Token{Type: TOKEN_EOF}, "Token(EOF, )"},
		{Token{Type: TOKEN_INDENT, Literal: "2"}, "Token(INDENT, 2)"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.tok.String())
	}
}

func TestTokenEqualIgnoresPosition(t *testing.T) {
	a := Token{Type: TOKEN_IDENT, Literal: "x", Pos: 0}
	b := Token{Type: TOKEN_IDENT, Literal: "x", Pos: 17}
	c := Token{Type: TOKEN_IDENT, Literal: "y", Pos: 0}

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(Token{Type: TOKEN_STRING, Literal: "x"}))
}

func TestIndentLevel(t *testing.T) {
	tok := Token{Type: TOKEN_INDENT, Literal: "3"}
	require.Equal(t, 3, tok.IndentLevel())
}

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  TokenType
	}{
		{"if", TOKEN_IF},
		{"elif", TOKEN_ELIF},
		{"def", TOKEN_FUNCTION},
		{"true", TOKEN_BOOLEAN},
		{"false", TOKEN_BOOLEAN},
		{"and", TOKEN_AND},
		{"not", TOKEN_NOT},
		{"break", TOKEN_BREAK},
		{"continue", TOKEN_CONTINUE},
		{"iffy", TOKEN_IDENT},
		{"x", TOKEN_IDENT},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, LookupIdent(tt.ident), "ident %q", tt.ident)
	}
}

func TestTokenTypeNames(t *testing.T) {
	require.Equal(t, "FUNCTION_DEFINITION", TOKEN_FUNCTION.String())
	require.Equal(t, "INVALID_IDENTIFIER", TOKEN_INVALID_IDENT.String())
	require.Equal(t, "ILLEGAL_CHARACTER", TOKEN_ILLEGAL_CHARACTER.String())
	require.Equal(t, "LESS_EQ", TOKEN_LESS_EQ.String())
}
