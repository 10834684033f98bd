package types

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/culebra-lang/culebra/pkg/lexer"
)

func ident(name string) *IdentExpr {
	e := &IdentExpr{Name: name}
	e.Tok = lexer.Token{Type: lexer.TOKEN_IDENT, Literal: name}

	return e
}

func integer(v int64) *IntegerExpr {
	e := &IntegerExpr{Value: v}
	e.Tok = lexer.Token{Type: lexer.TOKEN_NUMBER}

	return e
}

func binary(t lexer.TokenType, left, right Expression) *BinaryExpr {
	e := &BinaryExpr{Left: left, Right: right}
	e.Tok = lexer.Token{Type: t}

	return e
}

func TestLiteralStrings(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{integer(3), "Integer(3)"},
		{&FloatExpr{Value: 1.0}, "Float(1.0)"},
		{&FloatExpr{Value: 0.5}, "Float(0.5)"},
		{&FloatExpr{Value: 3.14}, "Float(3.14)"},
		{&StringExpr{Value: "hello"}, "String(hello)"},
		{&BoolExpr{Value: true}, "Bool(True)"},
		{&BoolExpr{Value: false}, "Bool(False)"},
		{ident("x"), "Identifier(x)"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.node.String())
	}
}

func TestArrayString(t *testing.T) {
	array := &ArrayExpr{Elements: []Expression{integer(1), integer(2)}}
	require.Equal(t, "Array([Integer(1), Integer(2)])", array.String())
}

func TestBinaryOperationStrings(t *testing.T) {
	tests := []struct {
		op   lexer.TokenType
		want string
	}{
		{lexer.TOKEN_PLUS, "PlusOperation"},
		{lexer.TOKEN_MINUS, "MinusOperation"},
		{lexer.TOKEN_MUL, "MultiplicationOperation"},
		{lexer.TOKEN_DIV, "DivisionOperation"},
		{lexer.TOKEN_AND, "AndOperation"},
		{lexer.TOKEN_OR, "OrOperation"},
		{lexer.TOKEN_LESS, "LessOperation"},
		{lexer.TOKEN_LESS_EQ, "LessOrEqualOperation"},
		{lexer.TOKEN_GREATER, "GreaterOperation"},
		{lexer.TOKEN_GREATER_EQ, "GreaterOrEqualOperation"},
		{lexer.TOKEN_EQUAL, "EqualOperation"},
		{lexer.TOKEN_NOT_EQUAL, "NotEqualOperation"},
	}

	for _, tt := range tests {
		node := binary(tt.op, integer(1), integer(1))
		require.Equal(t, tt.want+"(Integer(1), Integer(1))", node.String())
	}
}

func TestUnaryOperationStrings(t *testing.T) {
	neg := &UnaryExpr{Value: integer(2)}
	neg.Tok = lexer.Token{Type: lexer.TOKEN_MINUS}
	require.Equal(t, "NegativeOperation(Integer(2))", neg.String())

	not := &UnaryExpr{Value: &BoolExpr{Value: true}}
	not.Tok = lexer.Token{Type: lexer.TOKEN_NOT}
	require.Equal(t, "NotOperation(Bool(True))", not.String())
}

func TestAssignmentString(t *testing.T) {
	assignment := &Assignment{Identifier: ident("x"), Value: integer(1)}
	require.Equal(t, "Assignment(Identifier(x), Integer(1))", assignment.String())
}

func TestConditionalString(t *testing.T) {
	inner := &Conditional{
		Condition: &BoolExpr{Value: true},
		Body:      &Block{Statements: []Statement{&Assignment{Identifier: ident("a"), Value: integer(3)}}},
	}
	outer := &Conditional{
		Condition: binary(lexer.TOKEN_LESS, ident("a"), integer(10)),
		Body:      &Block{Statements: []Statement{&Assignment{Identifier: ident("a"), Value: integer(2)}}},
		Otherwise: inner,
	}

	require.Equal(t,
		"Conditional(LessOperation(Identifier(a), Integer(10))) "+
			"Then [Assignment(Identifier(a), Integer(2))] "+
			"Else [Conditional(Bool(True)) Then [Assignment(Identifier(a), Integer(3))]]",
		outer.String())
}

func TestWhileString(t *testing.T) {
	while := &While{
		Condition: binary(lexer.TOKEN_GREATER, ident("n"), integer(0)),
		Body:      &Block{Statements: []Statement{&ContinueStatement{}}},
	}
	require.Equal(t,
		"While(GreaterOperation(Identifier(n), Integer(0))) Then [ContinueStatement]",
		while.String())
}

func TestForString(t *testing.T) {
	forStmt := &For{
		Pre:       &Assignment{Identifier: ident("i"), Value: integer(0)},
		Condition: binary(lexer.TOKEN_LESS, ident("i"), integer(5)),
		Post:      &Assignment{Identifier: ident("i"), Value: binary(lexer.TOKEN_PLUS, ident("i"), integer(1))},
		Body:      &Block{Statements: []Statement{&BreakStatement{}}},
	}
	require.Equal(t,
		"For(Assignment(Identifier(i), Integer(0)); "+
			"LessOperation(Identifier(i), Integer(5)); "+
			"Assignment(Identifier(i), PlusOperation(Identifier(i), Integer(1)))) "+
			"Then [BreakStatement]",
		forStmt.String())
}

func TestFunctionStrings(t *testing.T) {
	def := &FunctionDefinition{
		Name:       ident("inc"),
		Parameters: []*IdentExpr{ident("n")},
		Body: &Block{Statements: []Statement{
			&ReturnStatement{Value: binary(lexer.TOKEN_PLUS, ident("n"), integer(1))},
		}},
	}
	require.Equal(t,
		"FunctionDefinition(Identifier(inc), [Identifier(n)], "+
			"[ReturnStatement(PlusOperation(Identifier(n), Integer(1)))])",
		def.String())

	call := &FunctionCall{Function: ident("inc"), Arguments: []Expression{integer(3)}}
	require.Equal(t, "FunctionCall(Identifier(inc), [Integer(3)])", call.String())
}

func TestIndexString(t *testing.T) {
	index := &IndexExpr{Left: ident("a"), Index: integer(0)}
	require.Equal(t, "IndexOperation(Identifier(a), Integer(0))", index.String())
}

func TestProgramStringJoinsWithNewlines(t *testing.T) {
	program := &Program{Statements: []Statement{
		&Assignment{Identifier: ident("x"), Value: integer(1)},
		&Assignment{Identifier: ident("y"), Value: integer(2)},
	}}
	require.Equal(t,
		"Assignment(Identifier(x), Integer(1))\nAssignment(Identifier(y), Integer(2))",
		program.String())
}

func TestPrettyTree(t *testing.T) {
	program := &Program{Statements: []Statement{
		&Assignment{
			Identifier: ident("x"),
			Value:      binary(lexer.TOKEN_PLUS, integer(1), integer(2)),
		},
	}}

	want := strings.Join([]string{
		"Program",
		"└── Assignment",
		"    ├── Identifier(x)",
		"    └── PlusOperation",
		"        ├── Integer(1)",
		"        └── Integer(2)",
	}, "\n")

	if diff := cmp.Diff(want, program.Pretty()); diff != "" {
		t.Errorf("pretty tree mismatch (-want +got):\n%s", diff)
	}
}

func TestPrettyTreeMultipleStatements(t *testing.T) {
	program := &Program{Statements: []Statement{
		&Assignment{Identifier: ident("x"), Value: integer(1)},
		&ReturnStatement{Value: ident("x")},
	}}

	want := strings.Join([]string{
		"Program",
		"├── Assignment",
		"    ├── Identifier(x)",
		"    └── Integer(1)",
		"└── ReturnStatement",
		"    └── Identifier(x)",
	}, "\n")

	if diff := cmp.Diff(want, program.Pretty()); diff != "" {
		t.Errorf("pretty tree mismatch (-want +got):\n%s", diff)
	}
}
