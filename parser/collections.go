package parser

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/token"
)

// parseGroupedOrTuple handles `(expr)` (a parenthesized grouping, which
// needs no AST node of its own since parseExpression already applied
// the right precedence) and `(e1, e2, ...)` (a TupleLiteral). A trailing
// comma before the closing paren is accepted, per original_source's
// parser.
func (p *Parser) parseGroupedOrTuple() ast.Expression {
	tok := p.curTok
	p.advance() // consume '('

	if p.curIs(token.RPAREN) {
		return &ast.TupleLiteral{Token: tok}
	}

	first := p.parseExpression(LOWEST)
	if p.peekIs(token.RPAREN) {
		p.advance()
		return first
	}

	elems := []ast.Expression{first}
	for p.peekIs(token.COMMA) {
		p.advance() // consume ','
		if p.peekIs(token.RPAREN) {
			break // trailing comma
		}
		p.advance()
		elems = append(elems, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return &ast.TupleLiteral{Token: tok, Elements: elems}
}

// parseArrayOrMapLiteral handles `[e1, e2, ...]`, `[k: v, ...]`, and the
// empty map `[:]`.
func (p *Parser) parseArrayOrMapLiteral() ast.Expression {
	tok := p.curTok

	if p.peekIs(token.COLON) {
		p.advance() // consume '['
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		return &ast.MapLiteral{Token: tok}
	}

	p.advance() // consume '['
	if p.curIs(token.RBRACKET) {
		return &ast.ArrayLiteral{Token: tok}
	}

	first := p.parseExpression(LOWEST)
	if p.peekIs(token.COLON) {
		return p.parseMapLiteralFrom(tok, first)
	}

	elems := []ast.Expression{first}
	for p.peekIs(token.COMMA) {
		p.advance() // consume ','
		if p.peekIs(token.RBRACKET) {
			break
		}
		p.advance()
		elems = append(elems, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.ArrayLiteral{Token: tok, Elements: elems}
}

func (p *Parser) parseMapLiteralFrom(tok token.Token, firstKey ast.Expression) ast.Expression {
	p.advance() // consume ':'
	p.advance()
	firstVal := p.parseExpression(LOWEST)
	pairs := []ast.MapPair{{Key: firstKey, Value: firstVal}}

	for p.peekIs(token.COMMA) {
		p.advance() // consume ','
		if p.peekIs(token.RBRACKET) {
			break
		}
		p.advance()
		key := p.parseExpression(LOWEST)
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.advance()
		val := p.parseExpression(LOWEST)
		pairs = append(pairs, ast.MapPair{Key: key, Value: val})
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.MapLiteral{Token: tok, Pairs: pairs}
}

// parseBlockLiteral handles `{ $p1 $p2 -> stmt* }`, a reified lambda
// body with no captured environment (see ast.BlockLiteral).
func (p *Parser) parseBlockLiteral() ast.Expression {
	tok := p.curTok
	p.advance() // consume '{'

	var params []string
	for p.curIs(token.PARAM) {
		params = append(params, p.curTok.Literal)
		p.advance()
	}
	if !p.curIs(token.ARROW) {
		p.addError("expected -> after block parameters", p.curTok.Start, p.curTok.End)
		return nil
	}
	p.advance() // consume '->'

	body := &ast.BlockStatement{Token: tok}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if p.curIs(token.SEMI) {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			body.Statements = append(body.Statements, stmt)
		}
		p.advance()
	}
	if !p.curIs(token.RBRACE) {
		p.addError("expected } to close block literal", p.curTok.Start, p.curTok.End)
		return nil
	}
	return &ast.BlockLiteral{Token: tok, Params: params, Body: body}
}
