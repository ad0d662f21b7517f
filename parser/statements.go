package parser

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/token"
)

// parseStatement dispatches on the current token to one of the
// statement-level productions, falling back to an expression statement
// for everything else (assignment, declaration, bare calls, if/while/for
// used as expressions, etc).
func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Kind {
	case token.RETURN:
		return p.parseReturnStatement()
	case token.NEXT:
		stmt := &ast.NextStatement{Token: p.curTok}
		return stmt
	case token.BREAK:
		stmt := &ast.BreakStatement{Token: p.curTok}
		return stmt
	case token.DEF:
		return p.parseFunctionDefinition()
	case token.CLASS:
		return p.parseClassStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curTok}
	if p.peekIs(token.SEMI) || p.peekIs(token.RBRACE) || p.peekIs(token.EOF) {
		return stmt
	}
	p.advance()
	stmt.Value = p.parseExpression(LOWEST)
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curTok}
	stmt.Expr = p.parseExpression(LOWEST)
	if p.peekIs(token.SEMI) {
		p.advance()
	}
	return stmt
}

// parseBlockStatement parses `{ stmt* }`, assuming curTok is the
// opening `{`. It leaves curTok on the closing `}`.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curTok}
	p.advance() // consume '{'
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if p.curIs(token.SEMI) {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}
	if !p.curIs(token.RBRACE) {
		p.addError("expected } to close block", p.curTok.Start, p.curTok.End)
	}
	return block
}
