package parser

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/token"
)

// parseIfExpression handles `if cond { then } [elif cond { .. }]*
// [else { .. }]`. An `elif` desugars into a single nested IfExpression
// wrapped in a one-statement Else block, per spec.md §4.2.
func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curTok}
	p.advance() // consume 'if'
	expr.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	expr.Then = p.parseBlockStatement()

	if p.peekIs(token.ELIF) {
		p.advance() // consume '}', curTok now 'elif'
		nested := p.parseIfExpression()
		ifNested, ok := nested.(*ast.IfExpression)
		if !ok {
			return expr
		}
		expr.Else = &ast.BlockStatement{
			Token:      ifNested.Token,
			Statements: []ast.Statement{&ast.ExpressionStatement{Token: ifNested.Token, Expr: ifNested}},
		}
		return expr
	}

	if p.peekIs(token.ELSE) {
		p.advance() // consume '}', curTok now 'else'
		if !p.expectPeek(token.LBRACE) {
			return expr
		}
		expr.Else = p.parseBlockStatement()
	}
	return expr
}

func (p *Parser) parseWhileExpression() ast.Expression {
	expr := &ast.WhileExpression{Token: p.curTok}
	p.advance() // consume 'while'
	expr.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	expr.Body = p.parseBlockStatement()
	return expr
}

func (p *Parser) parseForExpression() ast.Expression {
	expr := &ast.ForExpression{Token: p.curTok}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	expr.Var = p.curTok.Literal
	if !p.expectPeek(token.IN) {
		return nil
	}
	p.advance()
	expr.Collection = p.parseExpression(LOWEST)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	expr.Body = p.parseBlockStatement()
	return expr
}
