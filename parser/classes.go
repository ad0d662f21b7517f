package parser

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/token"
)

// parseClassStatement handles `class Name [extends Parent] { members }`.
// A member is either a `def` method or the single `init` constructor;
// get_methods resolution (own methods, then the parent chain) happens in
// the evaluator, not here.
func (p *Parser) parseClassStatement() ast.Statement {
	tok := p.curTok
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt := &ast.ClassStatement{Token: tok, Name: p.curTok.Literal}

	if p.peekIs(token.EXTENDS) {
		p.advance() // consume name, curTok now 'extends'
		p.advance() // consume 'extends'
		stmt.Parent = p.parseExpression(LOWEST)
	}

	if !p.expectPeek(token.LBRACE) {
		return stmt
	}
	p.advance() // consume '{'

	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if p.curIs(token.SEMI) {
			p.advance()
			continue
		}
		member := p.parseClassMember()
		if member != nil {
			stmt.Methods = append(stmt.Methods, member)
		}
		p.advance()
	}
	if !p.curIs(token.RBRACE) {
		p.addError("expected } to close class body", p.curTok.Start, p.curTok.End)
	}
	return stmt
}

func (p *Parser) parseClassMember() ast.Statement {
	switch p.curTok.Kind {
	case token.DEF:
		return p.parseFunctionDefinition()
	case token.INIT:
		return p.parseInitDefinition()
	default:
		p.addError("expected def or init in class body", p.curTok.Start, p.curTok.End)
		return nil
	}
}
