package parser

import (
	"strconv"

	"github.com/culebra-lang/culebra/internal/types"
	"github.com/culebra-lang/culebra/pkg/lexer"
)

// Expression parsing is a ladder of precedence tiers, lowest binding
// first. Each tier parses its operand from the tier above and folds a
// left-associative chain of its own operators:
//
//	expression -> logical
//	logical    -> comparison (("and"|"or") comparison)*
//	comparison -> arithmetic (("<"|"<="|"=="|"!="|">"|">=") arithmetic)*
//	arithmetic -> term (("+"|"-") term)*
//	term       -> unary (("*"|"/") unary)*
//	unary      -> ("-"|"not")* elemental
//	elemental  -> literal | identifier | call | group | array, with
//	              trailing "[ expression ]" subscripts

func (p *Parser) parseExpression() types.Expression {
	return p.parseLogical()
}

// binaryChain folds a left-associative run of the given operators, using
// next to parse each operand.
func (p *Parser) binaryChain(next func() types.Expression, operators ...lexer.TokenType) types.Expression {
	expr := next()
	if expr == nil {
		return nil
	}

	for p.curIsOneOf(operators) {
		tok := p.cur()
		p.advance()

		right := next()
		if right == nil {
			return nil
		}

		chained := &types.BinaryExpr{Left: expr, Right: right}
		chained.Tok = tok
		expr = chained
	}

	return expr
}

func (p *Parser) curIsOneOf(tokenTypes []lexer.TokenType) bool {
	for _, t := range tokenTypes {
		if p.curIs(t) {
			return true
		}
	}

	return false
}

func (p *Parser) parseLogical() types.Expression {
	return p.binaryChain(p.parseComparison, lexer.TOKEN_AND, lexer.TOKEN_OR)
}

func (p *Parser) parseComparison() types.Expression {
	return p.binaryChain(p.parseArithmetic,
		lexer.TOKEN_LESS, lexer.TOKEN_LESS_EQ, lexer.TOKEN_EQUAL,
		lexer.TOKEN_NOT_EQUAL, lexer.TOKEN_GREATER, lexer.TOKEN_GREATER_EQ)
}

func (p *Parser) parseArithmetic() types.Expression {
	return p.binaryChain(p.parseTerm, lexer.TOKEN_PLUS, lexer.TOKEN_MINUS)
}

func (p *Parser) parseTerm() types.Expression {
	return p.binaryChain(p.parseUnary, lexer.TOKEN_MUL, lexer.TOKEN_DIV)
}

// parseUnary parses stacked prefix operators. The prefixes apply
// right-to-left over a single elemental expression, so "- - x" is
// -(-x) and "-2 + -2" is a sum of two negations.
func (p *Parser) parseUnary() types.Expression {
	var prefixes []lexer.Token
	for p.curIs(lexer.TOKEN_MINUS) || p.curIs(lexer.TOKEN_NOT) {
		prefixes = append(prefixes, p.cur())
		p.advance()
	}

	expr := p.parseElemental()
	if expr == nil {
		return nil
	}

	for i := len(prefixes) - 1; i >= 0; i-- {
		wrapped := &types.UnaryExpr{Value: expr}
		wrapped.Tok = prefixes[i]
		expr = wrapped
	}

	return expr
}

// parseElemental parses the atoms of the expression grammar, then any
// trailing subscripts. Subscripts chain left-associatively: a[0][1]
// subscripts the result of a[0].
func (p *Parser) parseElemental() types.Expression {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for p.curIs(lexer.TOKEN_LBRACKET) {
		tok := p.cur()
		p.advance()

		index := p.parseExpression()
		if index == nil {
			return nil
		}

		if !p.expectOneOf(lexer.TOKEN_RBRACKET) {
			return nil
		}
		p.advance()

		indexed := &types.IndexExpr{Left: expr, Index: index}
		indexed.Tok = tok
		expr = indexed
	}

	return expr
}

func (p *Parser) parsePrimary() types.Expression {
	switch {
	case p.curIs(lexer.TOKEN_LPAREN):
		return p.parseGroup()
	case p.curIs(lexer.TOKEN_IDENT) && p.peek().Type == lexer.TOKEN_LPAREN:
		return p.parseFunctionCall()
	case p.curIs(lexer.TOKEN_IDENT):
		ident := &types.IdentExpr{Name: p.cur().Literal}
		ident.Tok = p.cur()
		p.advance()

		return ident
	case p.curIs(lexer.TOKEN_NUMBER):
		return p.parseInteger()
	case p.curIs(lexer.TOKEN_FLOAT):
		return p.parseFloat()
	case p.curIs(lexer.TOKEN_STRING):
		str := &types.StringExpr{Value: p.cur().Literal}
		str.Tok = p.cur()
		p.advance()

		return str
	case p.curIs(lexer.TOKEN_BOOLEAN):
		boolean := &types.BoolExpr{Value: p.cur().Literal == "true"}
		boolean.Tok = p.cur()
		p.advance()

		return boolean
	case p.curIs(lexer.TOKEN_LBRACKET):
		return p.parseArray()
	}

	p.recordExpectation([]lexer.TokenType{
		lexer.TOKEN_IDENT, lexer.TOKEN_NUMBER, lexer.TOKEN_STRING,
		lexer.TOKEN_BOOLEAN, lexer.TOKEN_FLOAT,
	})

	return nil
}

func (p *Parser) parseInteger() types.Expression {
	val, err := strconv.ParseInt(p.cur().Literal, 10, 64)
	if err != nil {
		p.recordErrorf("could not parse %q as integer in position %d",
			p.cur().Literal, p.cur().Pos)

		return nil
	}

	integer := &types.IntegerExpr{Value: val}
	integer.Tok = p.cur()
	p.advance()

	return integer
}

func (p *Parser) parseFloat() types.Expression {
	val, err := strconv.ParseFloat(p.cur().Literal, 64)
	if err != nil {
		p.recordErrorf("could not parse %q as float in position %d",
			p.cur().Literal, p.cur().Pos)

		return nil
	}

	float := &types.FloatExpr{Value: val}
	float.Tok = p.cur()
	p.advance()

	return float
}

// parseGroup parses a parenthesized expression.
func (p *Parser) parseGroup() types.Expression {
	p.advance() // skip '('

	expr := p.parseExpression()
	if expr == nil {
		return nil
	}

	if !p.expectOneOf(lexer.TOKEN_RPAREN) {
		return nil
	}
	p.advance()

	return expr
}

// parseFunctionCall parses "identifier(arguments)". The callee is kept
// by name; resolution happens at evaluation time.
func (p *Parser) parseFunctionCall() types.Expression {
	tok := p.cur()
	identifier := &types.IdentExpr{Name: tok.Literal}
	identifier.Tok = tok
	p.advance()
	p.advance() // the '(' verified by the caller's lookahead

	var arguments []types.Expression
	for p.hasToken() && !p.curIs(lexer.TOKEN_RPAREN) {
		expr := p.parseExpression()
		if expr == nil {
			return nil
		}
		arguments = append(arguments, expr)

		if p.curIs(lexer.TOKEN_COMMA) {
			p.advance()

			continue
		}

		if !p.expectOneOf(lexer.TOKEN_COMMA, lexer.TOKEN_RPAREN) {
			return nil
		}
	}
	p.advance() // skip ')'

	call := &types.FunctionCall{Function: identifier, Arguments: arguments}
	call.Tok = tok

	return call
}

// parseArray parses an array literal "[e1, e2, ...]".
func (p *Parser) parseArray() types.Expression {
	tok := p.cur()
	p.advance() // skip '['

	var elements []types.Expression
	for p.hasToken() && !p.curIs(lexer.TOKEN_RBRACKET) {
		expr := p.parseExpression()
		if expr == nil {
			return nil
		}
		elements = append(elements, expr)

		if p.curIs(lexer.TOKEN_COMMA) {
			p.advance()

			continue
		}

		if !p.expectOneOf(lexer.TOKEN_COMMA, lexer.TOKEN_RBRACKET) {
			return nil
		}
	}
	p.advance() // skip ']'

	array := &types.ArrayExpr{Elements: elements}
	array.Tok = tok

	return array
}
