package parser

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/token"
)

// parseCallPattern parses the shape of a call site: a `\` already
// consumed up to curTok, followed by a run of bare keyword identifiers
// and `(expr)` argument holes. Shared by parseFunctionCall (prefix
// position) and parseDotOrMethodCall's method-call branch, both of which
// enter with curTok on the `\`.
func (p *Parser) parseCallPattern() []ast.CallPatternItem {
	var items []ast.CallPatternItem
	for p.peekIs(token.IDENT) || p.peekIs(token.LPAREN) {
		p.advance()
		if p.curIs(token.IDENT) {
			items = append(items, ast.CallPatternItem{Kind: ast.PatternKeyword, Keyword: p.curTok.Literal})
			continue
		}
		p.advance() // consume '('
		expr := p.parseExpression(LOWEST)
		if !p.expectPeek(token.RPAREN) {
			return items
		}
		items = append(items, ast.CallPatternItem{Kind: ast.PatternHole, Argument: expr})
	}
	return items
}

// parseFunctionCall is the prefix handler registered for `\`.
func (p *Parser) parseFunctionCall() ast.Expression {
	tok := p.curTok
	pattern := p.parseCallPattern()
	if len(pattern) == 0 {
		p.addError("empty call pattern", tok.Start, tok.End)
	}
	return &ast.FunctionCall{Token: tok, Pattern: pattern}
}

// parseDefPattern parses a function/init definition's signature: a run
// of bare keyword identifiers and `$param` holes, entering with curTok on
// the `def`/`init` keyword.
func (p *Parser) parseDefPattern() []ast.DefPatternItem {
	var items []ast.DefPatternItem
	for p.peekIs(token.IDENT) || p.peekIs(token.PARAM) {
		p.advance()
		if p.curIs(token.PARAM) {
			items = append(items, ast.DefPatternItem{Kind: ast.PatternParam, Text: p.curTok.Literal})
			continue
		}
		items = append(items, ast.DefPatternItem{Kind: ast.PatternKeyword, Text: p.curTok.Literal})
	}
	return items
}

// parseFunctionDefinition handles `def keyword $p keyword $q { body }`.
func (p *Parser) parseFunctionDefinition() ast.Statement {
	tok := p.curTok
	pattern := p.parseDefPattern()
	if len(pattern) == 0 {
		p.addError("function definition needs at least one keyword or parameter", p.curTok.Start, p.curTok.End)
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	return &ast.FunctionDefinition{Token: tok, Pattern: pattern, Body: body}
}

// parseInitDefinition handles `init keyword $p ... { body }`, the
// constructor variant parsed inside a class body.
func (p *Parser) parseInitDefinition() ast.Statement {
	tok := p.curTok
	pattern := p.parseDefPattern()
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlockStatement()
	return &ast.InitDefinition{Token: tok, Pattern: pattern, Body: body}
}
