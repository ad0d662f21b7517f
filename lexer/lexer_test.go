package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plutolang/pluto/token"
)

type tokenCase struct {
	input string
	kinds []token.Kind
	lits  []string
}

func collect(src string) ([]token.Kind, []string) {
	l := New(src)
	var kinds []token.Kind
	var lits []string
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		kinds = append(kinds, tok.Kind)
		lits = append(lits, tok.Literal)
	}
	return kinds, lits
}

func TestNextToken_Operators(t *testing.T) {
	tests := []tokenCase{
		{
			input: `+ - * / // % ** = := == != < > <= >= && || & | ! ? -> =>`,
			kinds: []token.Kind{
				token.PLUS, token.MINUS, token.STAR, token.SLASH, token.DSLASH, token.PERCENT, token.DSTAR,
				token.ASSIGN, token.DECLARE, token.EQ, token.NEQ, token.LT, token.GT, token.LE, token.GE,
				token.AND, token.OR, token.BITAND, token.BITOR, token.BANG, token.QUESTION, token.ARROW, token.FATARROW,
			},
		},
		{
			input: `( ) { } [ ] , ; : . \`,
			kinds: []token.Kind{
				token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.LBRACKET, token.RBRACKET,
				token.COMMA, token.SEMI, token.COLON, token.DOT, token.BACKSLASH,
			},
		},
	}
	for _, tt := range tests {
		kinds, _ := collect(tt.input)
		assert.Equal(t, tt.kinds, kinds)
	}
}

func TestNextToken_KeywordsAndIdentifiers(t *testing.T) {
	kinds, lits := collect(`def return if elif else while for in next break class extends init self match try catch not yes no foo_bar`)
	assert.Equal(t, []token.Kind{
		token.DEF, token.RETURN, token.IF, token.ELIF, token.ELSE, token.WHILE, token.FOR, token.IN,
		token.NEXT, token.BREAK, token.CLASS, token.EXTENDS, token.INIT, token.SELF, token.MATCH,
		token.TRY, token.CATCH, token.BANG, token.TRUE, token.FALSE, token.IDENT,
	}, kinds)
	assert.Equal(t, "foo_bar", lits[len(lits)-1])
}

func TestNextToken_NumbersAndParams(t *testing.T) {
	kinds, lits := collect(`42 3.14 $value $other_1`)
	assert.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.PARAM, token.PARAM}, kinds)
	assert.Equal(t, []string{"42", "3.14", "value", "other_1"}, lits)
}

func TestNextToken_Strings(t *testing.T) {
	kinds, lits := collect(`"hello\nworld" ` + "`raw\\nstring`" + ` 'a' '\n'`)
	assert.Equal(t, []token.Kind{token.STRING, token.STRING, token.CHAR, token.CHAR}, kinds)
	assert.Equal(t, "hello\nworld", lits[0])
	assert.Equal(t, `raw\nstring`, lits[1])
	assert.Equal(t, "a", lits[2])
	assert.Equal(t, "\n", lits[3])
}

func TestNextToken_TabEscapeIsRealTab(t *testing.T) {
	_, lits := collect(`"a\tb"`)
	assert.Equal(t, "a\tb", lits[0])
}

func TestNextToken_CommentsAreSkipped(t *testing.T) {
	kinds, lits := collect("1 # a trailing comment\n+ 2")
	assert.Equal(t, []token.Kind{token.NUMBER, token.PLUS, token.NUMBER}, kinds)
	assert.Equal(t, []string{"1", "+", "2"}, lits)
}

func TestNextToken_IllegalUnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.NextToken()
	assert.Equal(t, token.ILLEGAL, tok.Kind)
}

func TestNextToken_EOFRepeats(t *testing.T) {
	l := New(``)
	first := l.NextToken()
	second := l.NextToken()
	assert.Equal(t, token.EOF, first.Kind)
	assert.Equal(t, token.EOF, second.Kind)
}
