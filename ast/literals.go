/*
File    : pluto/ast/literals.go

Literal expression nodes: numbers, strings, chars, booleans, null, and
the three collection literal shapes (array, map, tuple).
*/
package ast

import "github.com/plutolang/pluto/token"

// NumberLiteral is a float64-valued numeric literal (Pluto has a single
// numeric type, unlike languages that split int/float at the lexer).
type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }

// StringLiteral is a double-quoted (escaped) or backtick (raw) string.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }

// CharLiteral is a single-quoted character.
type CharLiteral struct {
	Token token.Token
	Value rune
}

func (c *CharLiteral) expressionNode()      {}
func (c *CharLiteral) TokenLiteral() string { return c.Token.Literal }

// BooleanLiteral is `true`/`yes` or `false`/`no`.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }

// NullLiteral is the `null` literal.
type NullLiteral struct {
	Token token.Token
}

func (n *NullLiteral) expressionNode()      {}
func (n *NullLiteral) TokenLiteral() string { return n.Token.Literal }

// ArrayLiteral is `[a, b, c]`.
type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (a *ArrayLiteral) expressionNode()      {}
func (a *ArrayLiteral) TokenLiteral() string { return a.Token.Literal }

// MapPair is one `key: value` entry inside a MapLiteral.
type MapPair struct {
	Key   Expression
	Value Expression
}

// MapLiteral is `[k: v, k2: v2]`, or `[:]` for the empty map.
type MapLiteral struct {
	Token token.Token
	Pairs []MapPair
}

func (m *MapLiteral) expressionNode()      {}
func (m *MapLiteral) TokenLiteral() string { return m.Token.Literal }

// TupleLiteral is `(a, b, c)`.
type TupleLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (t *TupleLiteral) expressionNode()      {}
func (t *TupleLiteral) TokenLiteral() string { return t.Token.Literal }

// Identifier is a bare name reference.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
