/*
File    : pluto/parser/precedence.go

Operator precedence table — grounded on the teacher's
parser_precedence.go shape (a named constant ladder plus a
token-to-precedence lookup function) but reordered to Pluto's ladder:
ASSIGN < COALESCE < OR < AND < BIT_OR < BIT_AND < EQUALS < LESSGREATER <
SUM < PRODUCT < PREFIX < DOT.
*/
package parser

import "github.com/plutolang/pluto/token"

const (
	LOWEST int = iota
	ASSIGN
	COALESCE
	LOGIC_OR
	LOGIC_AND
	BIT_OR
	BIT_AND
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	DOT
)

var precedences = map[token.Kind]int{
	token.ASSIGN:   ASSIGN,
	token.DECLARE:  ASSIGN,
	token.QUESTION: COALESCE,
	token.OR:       LOGIC_OR,
	token.AND:      LOGIC_AND,
	token.BITOR:    BIT_OR,
	token.BITAND:   BIT_AND,
	token.EQ:       EQUALS,
	token.NEQ:      EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LE:       LESSGREATER,
	token.GE:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.DSLASH:   PRODUCT,
	token.PERCENT:  PRODUCT,
	token.DSTAR:    PRODUCT,
	token.DOT:      DOT,
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curTok.Kind]; ok {
		return prec
	}
	return LOWEST
}
