/*
File    : pluto/ast/classes.go

Class declarations. A class body is a sequence of FunctionDefinition
methods plus at most one InitDefinition; InitDefinition has its own node
because its pattern is kept on the class as the constructor pattern and
matched against bare call-patterns at evaluation time, distinct from an
ordinary named method.
*/
package ast

import "github.com/plutolang/pluto/token"

// InitDefinition is the `init keyword $p ... { body }` constructor method.
type InitDefinition struct {
	Token   token.Token // the `init` keyword
	Pattern []DefPatternItem
	Body    *BlockStatement
}

func (i *InitDefinition) statementNode()       {}
func (i *InitDefinition) TokenLiteral() string { return i.Token.Literal }

// ClassStatement is `class Name [extends Parent] { methods }`.
// Methods holds *FunctionDefinition and *InitDefinition statements in
// declaration order; get_methods resolution (own methods, first match
// wins, falling back to the parent chain) happens in the evaluator.
type ClassStatement struct {
	Token   token.Token
	Name    string
	Parent  Expression // nil if there is no `extends` clause
	Methods []Statement
}

func (c *ClassStatement) statementNode()       {}
func (c *ClassStatement) TokenLiteral() string { return c.Token.Literal }
