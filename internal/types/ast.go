package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/culebra-lang/culebra/pkg/lexer"
)

// Node represents any node in the AST.
// All AST nodes must implement this interface.
type Node interface {
	// String returns the canonical single-line rendering of the node
	String() string

	// Token returns the token that introduced the node, for error positioning
	Token() lexer.Token
}

// Statement is an AST node that can appear in a statement position.
type Statement interface {
	Node
	stmtNode()
}

// Expression is an AST node that produces a value. Every expression is
// also a valid statement: a bare expression line evaluates for effect.
type Expression interface {
	Statement
	exprNode()
}

// baseNode carries the introducing token shared by all node types.
type baseNode struct {
	Tok lexer.Token
}

func (n baseNode) Token() lexer.Token { return n.Tok }

// ============================================================================
// Literal Expressions
// ============================================================================

// IntegerExpr represents an integer literal.
type IntegerExpr struct {
	baseNode
	Value int64
}

func (e *IntegerExpr) String() string { return fmt.Sprintf("Integer(%d)", e.Value) }
func (e *IntegerExpr) exprNode()      {}
func (e *IntegerExpr) stmtNode()      {}

// FloatExpr represents a floating-point literal.
type FloatExpr struct {
	baseNode
	Value float64
}

func (e *FloatExpr) String() string { return fmt.Sprintf("Float(%s)", formatFloat(e.Value)) }
func (e *FloatExpr) exprNode()      {}
func (e *FloatExpr) stmtNode()      {}

// formatFloat renders a float with an explicit fractional part, so that
// Float(1.0) never prints as Float(1).
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}

// StringExpr represents a string literal. The value holds decoded content
// without quotes.
type StringExpr struct {
	baseNode
	Value string
}

func (e *StringExpr) String() string { return fmt.Sprintf("String(%s)", e.Value) }
func (e *StringExpr) exprNode()      {}
func (e *StringExpr) stmtNode()      {}

// BoolExpr represents a boolean literal (true/false).
type BoolExpr struct {
	baseNode
	Value bool
}

func (e *BoolExpr) String() string {
	if e.Value {
		return "Bool(True)"
	}

	return "Bool(False)"
}
func (e *BoolExpr) exprNode() {}
func (e *BoolExpr) stmtNode() {}

// IdentExpr represents an identifier (variable reference).
type IdentExpr struct {
	baseNode
	Name string
}

func (e *IdentExpr) String() string { return fmt.Sprintf("Identifier(%s)", e.Name) }
func (e *IdentExpr) exprNode()      {}
func (e *IdentExpr) stmtNode()      {}

// ArrayExpr represents an array literal [e1, e2, ..., en].
type ArrayExpr struct {
	baseNode
	Elements []Expression
}

func (e *ArrayExpr) String() string {
	return fmt.Sprintf("Array([%s])", joinExpressions(e.Elements))
}
func (e *ArrayExpr) exprNode() {}
func (e *ArrayExpr) stmtNode() {}

// ============================================================================
// Operators
// ============================================================================

// binaryNames maps operator token types to printed node names.
var binaryNames = map[lexer.TokenType]string{
	lexer.TOKEN_PLUS:       "PlusOperation",
	lexer.TOKEN_MINUS:      "MinusOperation",
	lexer.TOKEN_MUL:        "MultiplicationOperation",
	lexer.TOKEN_DIV:        "DivisionOperation",
	lexer.TOKEN_AND:        "AndOperation",
	lexer.TOKEN_OR:         "OrOperation",
	lexer.TOKEN_LESS:       "LessOperation",
	lexer.TOKEN_LESS_EQ:    "LessOrEqualOperation",
	lexer.TOKEN_GREATER:    "GreaterOperation",
	lexer.TOKEN_GREATER_EQ: "GreaterOrEqualOperation",
	lexer.TOKEN_EQUAL:      "EqualOperation",
	lexer.TOKEN_NOT_EQUAL:  "NotEqualOperation",
}

// BinaryExpr represents a binary operation. The operator is the node's
// own token; there is no separate operator field.
type BinaryExpr struct {
	baseNode
	Left  Expression
	Right Expression
}

// Operator returns the token type of the operator.
func (e *BinaryExpr) Operator() lexer.TokenType { return e.Tok.Type }

func (e *BinaryExpr) String() string {
	name, ok := binaryNames[e.Tok.Type]
	if !ok {
		name = "BinaryOperation"
	}

	return fmt.Sprintf("%s(%s, %s)", name, e.Left, e.Right)
}
func (e *BinaryExpr) exprNode() {}
func (e *BinaryExpr) stmtNode() {}

// unaryNames maps prefix operator token types to printed node names.
var unaryNames = map[lexer.TokenType]string{
	lexer.TOKEN_MINUS: "NegativeOperation",
	lexer.TOKEN_NOT:   "NotOperation",
}

// UnaryExpr represents a prefix operation. As with BinaryExpr, the
// operator is the node's token.
type UnaryExpr struct {
	baseNode
	Value Expression
}

// Operator returns the token type of the operator.
func (e *UnaryExpr) Operator() lexer.TokenType { return e.Tok.Type }

func (e *UnaryExpr) String() string {
	name, ok := unaryNames[e.Tok.Type]
	if !ok {
		name = "UnaryOperation"
	}

	return fmt.Sprintf("%s(%s)", name, e.Value)
}
func (e *UnaryExpr) exprNode() {}
func (e *UnaryExpr) stmtNode() {}

// IndexExpr represents a subscript access left[index]. Chained subscripts
// associate left to right: a[0][1] is (a[0])[1].
type IndexExpr struct {
	baseNode
	Left  Expression
	Index Expression
}

func (e *IndexExpr) String() string {
	return fmt.Sprintf("IndexOperation(%s, %s)", e.Left, e.Index)
}
func (e *IndexExpr) exprNode() {}
func (e *IndexExpr) stmtNode() {}

// ============================================================================
// Functions and Calls
// ============================================================================

// FunctionDefinition represents "def name(params): block".
type FunctionDefinition struct {
	baseNode
	Name       *IdentExpr
	Parameters []*IdentExpr
	Body       *Block
}

func (s *FunctionDefinition) String() string {
	params := make([]string, len(s.Parameters))
	for i, p := range s.Parameters {
		params[i] = p.String()
	}

	return fmt.Sprintf("FunctionDefinition(%s, [%s], [%s])",
		s.Name, strings.Join(params, ", "), joinStatements(s.Body.Statements))
}
func (s *FunctionDefinition) stmtNode() {}

// FunctionCall represents "name(args)". Callees are resolved by name at
// evaluation time, which is what lets function values flow through
// parameters and be invoked by the receiver.
type FunctionCall struct {
	baseNode
	Function  *IdentExpr
	Arguments []Expression
}

func (e *FunctionCall) String() string {
	return fmt.Sprintf("FunctionCall(%s, [%s])", e.Function, joinExpressions(e.Arguments))
}
func (e *FunctionCall) exprNode() {}
func (e *FunctionCall) stmtNode() {}

// ReturnStatement represents "return expression".
type ReturnStatement struct {
	baseNode
	Value Expression
}

func (s *ReturnStatement) String() string { return fmt.Sprintf("ReturnStatement(%s)", s.Value) }
func (s *ReturnStatement) stmtNode()      {}

// ============================================================================
// Statements and Control Flow
// ============================================================================

// Assignment represents "identifier = expression". The node's token is
// the "=" itself.
type Assignment struct {
	baseNode
	Identifier *IdentExpr
	Value      Expression
}

func (s *Assignment) String() string {
	return fmt.Sprintf("Assignment(%s, %s)", s.Identifier, s.Value)
}
func (s *Assignment) stmtNode() {}

// Conditional represents an if statement. The else branch, when present,
// is itself a Conditional: elif chains nest through Otherwise, and a
// terminal else becomes a Conditional whose condition is constant true.
type Conditional struct {
	baseNode
	Condition Expression
	Body      *Block
	Otherwise *Conditional
}

func (s *Conditional) String() string {
	out := fmt.Sprintf("Conditional(%s) Then [%s]", s.Condition, joinStatements(s.Body.Statements))
	if s.Otherwise != nil {
		out += fmt.Sprintf(" Else [%s]", s.Otherwise)
	}

	return out
}
func (s *Conditional) stmtNode() {}

// While represents "while condition: block".
type While struct {
	baseNode
	Condition Expression
	Body      *Block
}

func (s *While) String() string {
	return fmt.Sprintf("While(%s) Then [%s]", s.Condition, joinStatements(s.Body.Statements))
}
func (s *While) stmtNode() {}

// For represents "for pre; condition; post: block". Pre runs once before
// the loop; post runs after each iteration of the body.
type For struct {
	baseNode
	Pre       Statement
	Condition Expression
	Post      Statement
	Body      *Block
}

func (s *For) String() string {
	return fmt.Sprintf("For(%s; %s; %s) Then [%s]",
		s.Pre, s.Condition, s.Post, joinStatements(s.Body.Statements))
}
func (s *For) stmtNode() {}

// BreakStatement represents "break" inside a loop body.
type BreakStatement struct {
	baseNode
}

func (s *BreakStatement) String() string { return "BreakStatement" }
func (s *BreakStatement) stmtNode()      {}

// ContinueStatement represents "continue" inside a loop body.
type ContinueStatement struct {
	baseNode
}

func (s *ContinueStatement) String() string { return "ContinueStatement" }
func (s *ContinueStatement) stmtNode()      {}

// Block is an indentation-delimited statement sequence.
type Block struct {
	baseNode
	Statements []Statement
}

func (b *Block) String() string { return joinStatements(b.Statements) }
func (b *Block) stmtNode()      {}

// Program is the root node produced by the parser.
type Program struct {
	Statements []Statement
}

// Token returns the token of the first statement, or the zero token for
// an empty program.
func (p *Program) Token() lexer.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].Token()
	}

	return lexer.Token{}
}

func (p *Program) String() string {
	lines := make([]string, len(p.Statements))
	for i, stmt := range p.Statements {
		lines[i] = stmt.String()
	}

	return strings.Join(lines, "\n")
}

func joinStatements(stmts []Statement) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}

	return strings.Join(parts, ", ")
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}

	return strings.Join(parts, ", ")
}
