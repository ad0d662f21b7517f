/*
File    : pluto/ast/expressions.go

Operator and control-flow expression nodes: prefix/infix operators, dot
access, assignment/declaration, if, while, for, and block literals.
*/
package ast

import "github.com/plutolang/pluto/token"

// PrefixExpression is a unary `-x`, `+x`, or `!x`.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (p *PrefixExpression) expressionNode()      {}
func (p *PrefixExpression) TokenLiteral() string { return p.Token.Literal }

// InfixExpression is a binary `left OP right`.
type InfixExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (i *InfixExpression) expressionNode()      {}
func (i *InfixExpression) TokenLiteral() string { return i.Token.Literal }

// DotExpression is `left.identifier` — field access. A `.` followed by a
// call-pattern parses as a MethodCall instead.
type DotExpression struct {
	Token token.Token
	Left  Expression
	Name  string
}

func (d *DotExpression) expressionNode()      {}
func (d *DotExpression) TokenLiteral() string { return d.Token.Literal }

// AssignExpression is `target = value`. target is either an Identifier
// or a DotExpression (field write).
type AssignExpression struct {
	Token  token.Token
	Target Expression
	Value  Expression
}

func (a *AssignExpression) expressionNode()      {}
func (a *AssignExpression) TokenLiteral() string { return a.Token.Literal }

// DeclareExpression is `target := value`, always creating the binding in
// the current scope.
type DeclareExpression struct {
	Token  token.Token
	Target Expression
	Value  Expression
}

func (d *DeclareExpression) expressionNode()      {}
func (d *DeclareExpression) TokenLiteral() string { return d.Token.Literal }

// IfExpression is `if cond { then } [else { else }]`. `elif` desugars
// into a single-statement else block containing a nested IfExpression.
type IfExpression struct {
	Token     token.Token
	Condition Expression
	Then      *BlockStatement
	Else      *BlockStatement // nil if there is no else/elif
}

func (i *IfExpression) expressionNode()      {}
func (i *IfExpression) TokenLiteral() string { return i.Token.Literal }

// WhileExpression is `while cond { body }`.
type WhileExpression struct {
	Token     token.Token
	Condition Expression
	Body      *BlockStatement
}

func (w *WhileExpression) expressionNode()      {}
func (w *WhileExpression) TokenLiteral() string { return w.Token.Literal }

// ForExpression is `for var in collection { body }`.
type ForExpression struct {
	Token      token.Token
	Var        string
	Collection Expression
	Body       *BlockStatement
}

func (f *ForExpression) expressionNode()      {}
func (f *ForExpression) TokenLiteral() string { return f.Token.Literal }

// BlockLiteral is a reified, re-runnable lambda body: `{ params... -> body }`.
// It carries no captured environment — see spec.md §3 — blocks are run in
// whatever scope the invoking builtin supplies.
type BlockLiteral struct {
	Token  token.Token
	Params []string
	Body   *BlockStatement
}

func (b *BlockLiteral) expressionNode()      {}
func (b *BlockLiteral) TokenLiteral() string { return b.Token.Literal }
