package parser

import (
	"strconv"

	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/token"
)

// registerGrammar wires every token kind to its prefix and/or infix
// parse function — the teacher's UnaryFuncs/BinaryFuncs registration
// pattern, generalized to Pluto's grammar.
func (p *Parser) registerGrammar() {
	p.prefixFns[token.IDENT] = p.parseIdentifier
	p.prefixFns[token.SELF] = p.parseIdentifier
	p.prefixFns[token.NUMBER] = p.parseNumberLiteral
	p.prefixFns[token.STRING] = p.parseStringLiteral
	p.prefixFns[token.CHAR] = p.parseCharLiteral
	p.prefixFns[token.TRUE] = p.parseBooleanLiteral
	p.prefixFns[token.FALSE] = p.parseBooleanLiteral
	p.prefixFns[token.NULL] = p.parseNullLiteral
	p.prefixFns[token.MINUS] = p.parsePrefixExpression
	p.prefixFns[token.PLUS] = p.parsePrefixExpression
	p.prefixFns[token.BANG] = p.parsePrefixExpression
	p.prefixFns[token.LPAREN] = p.parseGroupedOrTuple
	p.prefixFns[token.LBRACKET] = p.parseArrayOrMapLiteral
	p.prefixFns[token.LBRACE] = p.parseBlockLiteral
	p.prefixFns[token.BACKSLASH] = p.parseFunctionCall
	p.prefixFns[token.IF] = p.parseIfExpression
	p.prefixFns[token.WHILE] = p.parseWhileExpression
	p.prefixFns[token.FOR] = p.parseForExpression
	p.prefixFns[token.MATCH] = p.parseMatchExpression
	p.prefixFns[token.TRY] = p.parseTryExpression

	for _, k := range []token.Kind{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.DSLASH, token.PERCENT, token.DSTAR,
		token.EQ, token.NEQ, token.LT, token.GT, token.LE, token.GE, token.AND, token.OR,
		token.BITAND, token.BITOR, token.QUESTION,
	} {
		p.infixFns[k] = p.parseInfixExpression
	}
	p.infixFns[token.ASSIGN] = p.parseAssignExpression
	p.infixFns[token.DECLARE] = p.parseDeclareExpression
	p.infixFns[token.DOT] = p.parseDotOrMethodCall
}

// parseExpression is the Pratt loop: parse a prefix expression, then
// repeatedly fold in infix operators whose precedence exceeds prec.
func (p *Parser) parseExpression(prec int) ast.Expression {
	prefix, ok := p.prefixFns[p.curTok.Kind]
	if !ok {
		p.addError("unexpected token "+string(p.curTok.Kind)+" in expression position", p.curTok.Start, p.curTok.End)
		return nil
	}
	left := prefix()

	for !p.peekIs(token.SEMI) && prec < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekTok.Kind]
		if !ok {
			return left
		}
		p.advance()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curTok, Name: p.curTok.Literal}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	val, err := strconv.ParseFloat(p.curTok.Literal, 64)
	if err != nil {
		p.addError("invalid number literal "+p.curTok.Literal, p.curTok.Start, p.curTok.End)
		return nil
	}
	return &ast.NumberLiteral{Token: p.curTok, Value: val}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curTok, Value: p.curTok.Literal}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	r := []rune(p.curTok.Literal)
	var v rune
	if len(r) > 0 {
		v = r[0]
	}
	return &ast.CharLiteral{Token: p.curTok, Value: v}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curTok, Value: p.curTok.Kind == token.TRUE}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.curTok}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curTok, Operator: prefixOperatorText(p.curTok)}
	p.advance()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

// prefixOperatorText normalizes the `not` keyword alias to `!` so the
// evaluator only ever sees one spelling of logical negation.
func prefixOperatorText(t token.Token) string {
	if t.Kind == token.BANG {
		return "!"
	}
	return t.Literal
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{Token: p.curTok, Left: left, Operator: string(p.curTok.Kind)}
	prec := p.curPrecedence()
	p.advance()
	expr.Right = p.parseExpression(prec)
	return expr
}

func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	expr := &ast.AssignExpression{Token: p.curTok, Target: left}
	p.advance()
	expr.Value = p.parseExpression(ASSIGN - 1)
	return expr
}

func (p *Parser) parseDeclareExpression(left ast.Expression) ast.Expression {
	expr := &ast.DeclareExpression{Token: p.curTok, Target: left}
	p.advance()
	expr.Value = p.parseExpression(ASSIGN - 1)
	return expr
}

// parseDotOrMethodCall handles `.` — either plain field access
// (`left.name`) or, when the field position is itself a call-pattern
// (`left.\keyword (expr) ...`), a MethodCall.
func (p *Parser) parseDotOrMethodCall(left ast.Expression) ast.Expression {
	dotTok := p.curTok
	if p.peekIs(token.BACKSLASH) {
		p.advance() // consume '.', curTok is now '\'
		pattern := p.parseCallPattern()
		return &ast.MethodCall{Token: dotTok, Instance: left, Pattern: pattern}
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.DotExpression{Token: dotTok, Left: left, Name: p.curTok.Literal}
}
