/*
File    : pluto/parser/parser.go

Package parser implements a Pratt (top-down operator precedence) parser
for Pluto, converting a lexer.Lexer's token stream into an ast.Program.
The prefix/infix dispatch tables are grounded on the teacher's
UnaryFuncs/BinaryFuncs token-keyed maps in parser/parser.go, generalized
from go-mix's C-like grammar to Pluto's precedence ladder and its
call-pattern/class/match/try productions. Unlike the teacher, the parser
never folds constants or tracks a parallel variable environment during
parsing — spec.md's parser is a pure syntax-to-tree pass.
*/
package parser

import (
	"fmt"

	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/lexer"
	"github.com/plutolang/pluto/token"
)

// ParseError is a structured parser diagnostic: a message and the
// source span it applies to, per spec.md §7's error-handling design.
type ParseError struct {
	Message string
	Start   token.Position
	End     token.Position
}

func (pe ParseError) String() string {
	return fmt.Sprintf("[%s] to [%s] -- %s", pe.Start, pe.End, pe.Message)
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds the token lookahead, error list, and precedence-climbing
// dispatch tables.
type Parser struct {
	lex *lexer.Lexer

	curTok  token.Token
	peekTok token.Token

	errors []ParseError

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

// New creates a Parser over src and primes the two-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.prefixFns = make(map[token.Kind]prefixParseFn)
	p.infixFns = make(map[token.Kind]infixParseFn)
	p.registerGrammar()
	p.advance()
	p.advance()
	return p
}

// Errors returns every structured diagnostic accumulated while parsing.
// The parser never stops at the first error — it continues on a
// best-effort basis so a single Parse() call can report many mistakes.
func (p *Parser) Errors() []ParseError { return p.errors }

func (p *Parser) addError(msg string, start, end token.Position) {
	p.errors = append(p.errors, ParseError{Message: msg, Start: start, End: end})
}

func (p *Parser) advance() {
	p.curTok = p.peekTok
	p.peekTok = p.lex.NextToken()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.curTok.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peekTok.Kind == k }

// expectPeek advances past peekTok if it matches k, else records an
// error and leaves the parser positioned at the offending token.
func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekIs(k) {
		p.advance()
		return true
	}
	p.addError(fmt.Sprintf("expected %s, got %s", k, p.peekTok.Kind), p.peekTok.Start, p.peekTok.End)
	return false
}

// Parse parses the full token stream into a Program. Every parseStatement
// call leaves curTok on the last token it consumed; the loop then always
// advances once more, exactly like the teacher's statement loop, so a
// bare `;` separator (or its absence at a `}`/EOF boundary) is handled
// uniformly rather than through ad hoc lookahead.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{}
	for !p.curIs(token.EOF) {
		if p.curIs(token.SEMI) {
			p.advance()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}
	return program
}
