package parser

import (
	"github.com/culebra-lang/culebra/internal/types"
	"github.com/culebra-lang/culebra/pkg/lexer"
)

// parseIf parses an if statement with its elif/else chain. The chain is
// normalized at parse time: each elif becomes the Otherwise conditional
// of its predecessor, and a terminal else becomes a conditional whose
// condition is a constant true.
func (p *Parser) parseIf() types.Statement {
	tok := p.cur()
	p.advance() // skip 'if'

	condition := p.parseExpression()
	if condition == nil {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}
	p.ignoreNewlines()

	conditional := &types.Conditional{Condition: condition, Body: body}
	conditional.Tok = tok

	if p.curIs(lexer.TOKEN_ELSE) || p.curIs(lexer.TOKEN_ELIF) {
		conditional.Otherwise = p.parseOtherwise()
		if conditional.Otherwise == nil {
			return nil
		}
	}

	return conditional
}

// parseOtherwise parses one elif or else clause and, recursively, the
// rest of the chain.
func (p *Parser) parseOtherwise() *types.Conditional {
	tok := p.cur()
	p.advance() // skip 'elif' / 'else'

	var condition types.Expression
	if tok.Type == lexer.TOKEN_ELSE {
		trueExpr := &types.BoolExpr{Value: true}
		trueExpr.Tok = tok
		condition = trueExpr
	} else {
		condition = p.parseExpression()
		if condition == nil {
			return nil
		}
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}
	p.ignoreNewlines()

	conditional := &types.Conditional{Condition: condition, Body: body}
	conditional.Tok = tok

	if tok.Type == lexer.TOKEN_ELIF && (p.curIs(lexer.TOKEN_ELSE) || p.curIs(lexer.TOKEN_ELIF)) {
		conditional.Otherwise = p.parseOtherwise()
		if conditional.Otherwise == nil {
			return nil
		}
	}

	return conditional
}

// parseWhile parses "while condition: block".
func (p *Parser) parseWhile() types.Statement {
	tok := p.cur()
	p.advance() // skip 'while'

	condition := p.parseExpression()
	if condition == nil {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	while := &types.While{Condition: condition, Body: body}
	while.Tok = tok

	return while
}

// parseFor parses "for pre; condition; post: block". Pre and post are
// full statements, conventionally assignments.
func (p *Parser) parseFor() types.Statement {
	tok := p.cur()
	p.advance() // skip 'for'

	pre := p.parseStatement()
	if pre == nil {
		return nil
	}

	if !p.expectOneOf(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	p.advance()

	condition := p.parseExpression()
	if condition == nil {
		return nil
	}

	if !p.expectOneOf(lexer.TOKEN_SEMICOLON) {
		return nil
	}
	p.advance()

	post := p.parseStatement()
	if post == nil {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	forStmt := &types.For{Pre: pre, Condition: condition, Post: post, Body: body}
	forStmt.Tok = tok

	return forStmt
}

// parseFunctionDefinition parses "def name(params): block".
func (p *Parser) parseFunctionDefinition() types.Statement {
	tok := p.cur()
	p.advance() // skip 'def'

	name := p.parseIdentifier()
	if name == nil {
		return nil
	}

	parameters := p.parseParameterList()
	if parameters == nil {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	def := &types.FunctionDefinition{Name: name, Parameters: *parameters, Body: body}
	def.Tok = tok

	return def
}

// parseIdentifier parses a single identifier token into an IdentExpr.
func (p *Parser) parseIdentifier() *types.IdentExpr {
	if !p.expectOneOf(lexer.TOKEN_IDENT) {
		return nil
	}

	identifier := &types.IdentExpr{Name: p.cur().Literal}
	identifier.Tok = p.cur()
	p.advance()

	return identifier
}

// parseParameterList parses the parenthesized parameter names of a
// function definition. Returns a pointer so an empty list and a parse
// failure stay distinguishable.
func (p *Parser) parseParameterList() *[]*types.IdentExpr {
	if !p.expectOneOf(lexer.TOKEN_LPAREN) {
		return nil
	}
	p.advance()

	parameters := []*types.IdentExpr{}
	for p.hasToken() && !p.curIs(lexer.TOKEN_RPAREN) {
		param := p.parseIdentifier()
		if param == nil {
			return nil
		}
		parameters = append(parameters, param)

		if p.curIs(lexer.TOKEN_COMMA) {
			p.advance()

			continue
		}

		if !p.expectOneOf(lexer.TOKEN_COMMA, lexer.TOKEN_RPAREN) {
			return nil
		}
	}
	p.advance() // skip ')'

	return &parameters
}

// parseReturn parses "return expression".
func (p *Parser) parseReturn() types.Statement {
	tok := p.cur()
	p.advance() // skip 'return'

	value := p.parseExpression()
	if value == nil {
		return nil
	}

	ret := &types.ReturnStatement{Value: value}
	ret.Tok = tok

	return ret
}

// parseBreak parses a bare "break".
func (p *Parser) parseBreak() types.Statement {
	breakStmt := &types.BreakStatement{}
	breakStmt.Tok = p.cur()
	p.advance()

	return breakStmt
}

// parseContinue parses a bare "continue".
func (p *Parser) parseContinue() types.Statement {
	continueStmt := &types.ContinueStatement{}
	continueStmt.Tok = p.cur()
	p.advance()

	return continueStmt
}

// parseBlock parses a colon-introduced, indentation-delimited block:
// ":" NEWLINE INDENT statements DEDENT. Blank lines inside the block are
// skipped; the block ends at the matching DEDENT.
func (p *Parser) parseBlock() *types.Block {
	if !p.expectOneOf(lexer.TOKEN_COLON) {
		return nil
	}
	tok := p.cur()
	p.advance()

	if !p.expectOneOf(lexer.TOKEN_NEWLINE) {
		return nil
	}
	p.advance()
	p.ignoreNewlines()

	if !p.expectOneOf(lexer.TOKEN_INDENT) {
		return nil
	}
	p.advance()

	var statements []types.Statement
	p.ignoreNewlines()
	for p.hasToken() && !p.curIs(lexer.TOKEN_DEDENT) && !p.curIs(lexer.TOKEN_EOF) {
		statement := p.parseStatement()
		if statement == nil {
			p.advance()
		} else {
			statements = append(statements, statement)
		}
		p.ignoreNewlines()
	}
	p.advance() // skip DEDENT

	block := &types.Block{Statements: statements}
	block.Tok = tok

	return block
}
