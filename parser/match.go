package parser

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/token"
)

// parseMatchExpression handles `match scrutinee { arms }`. Each arm is a
// comma-separated predicate list followed by `=> result`; an arm with no
// predicates (a bare `=> result`) is the default and should come last.
func (p *Parser) parseMatchExpression() ast.Expression {
	tok := p.curTok
	p.advance() // consume 'match'
	scrutinee := p.parseExpression(LOWEST)
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.advance() // consume '{'

	var arms []ast.MatchArm
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if p.curIs(token.SEMI) {
			p.advance()
			continue
		}
		arms = append(arms, p.parseMatchArm())
		p.advance()
	}
	if !p.curIs(token.RBRACE) {
		p.addError("expected } to close match", p.curTok.Start, p.curTok.End)
		return nil
	}
	return &ast.MatchExpression{Token: tok, Scrutinee: scrutinee, Arms: arms}
}

// parseMatchArm parses one `preds => result` arm, leaving curTok on the
// last token of the result expression. A bare `=> result` with no
// predicates is the default arm. Shared by match and try/catch, which
// scrutinizes a caught error's tag instead of an arbitrary subject.
func (p *Parser) parseMatchArm() ast.MatchArm {
	if p.curIs(token.FATARROW) {
		p.advance() // move onto the result expression
		return ast.MatchArm{Result: p.parseExpression(LOWEST)}
	}

	preds := []ast.Expression{p.parseExpression(LOWEST)}
	for p.peekIs(token.COMMA) {
		p.advance() // consume ','
		p.advance()
		preds = append(preds, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(token.FATARROW) {
		return ast.MatchArm{Predicates: preds}
	}
	p.advance() // move onto the result expression
	return ast.MatchArm{Predicates: preds, Result: p.parseExpression(LOWEST)}
}

// parseTryExpression handles `try { body } catch $err { arms }`.
func (p *Parser) parseTryExpression() ast.Expression {
	tok := p.curTok
	p.advance() // consume 'try'
	if !p.curIs(token.LBRACE) {
		p.addError("expected { after try", p.curTok.Start, p.curTok.End)
		return nil
	}
	expr := &ast.TryExpression{Token: tok, Body: p.parseBlockStatement()}

	if !p.expectPeek(token.CATCH) {
		return expr
	}
	if !p.expectPeek(token.PARAM) {
		return expr
	}
	expr.ErrBinding = p.curTok.Literal
	if !p.expectPeek(token.LBRACE) {
		return expr
	}
	p.advance() // consume '{'

	var arms []ast.MatchArm
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if p.curIs(token.SEMI) {
			p.advance()
			continue
		}
		arms = append(arms, p.parseMatchArm())
		p.advance()
	}
	if !p.curIs(token.RBRACE) {
		p.addError("expected } to close catch", p.curTok.Start, p.curTok.End)
		return expr
	}
	expr.CatchArms = arms
	return expr
}
