/*
File    : pluto/ast/match.go

Match and try/catch. Both are arm-based: an ordered list of (predicate
expressions, result expression) pairs tested top to bottom, with an arm
whose Predicates is empty acting as the default/else arm. try/catch
reuses the same arm shape, scrutinizing the caught error's tag string
instead of an arbitrary match subject.
*/
package ast

import "github.com/plutolang/pluto/token"

// MatchArm is one `exprs => result;` or default `=> result;` clause. An
// arm with no Predicates is the default arm and must be last.
type MatchArm struct {
	Predicates []Expression
	Result     Expression
}

// MatchExpression is `match scrutinee { arms... }`.
type MatchExpression struct {
	Token     token.Token
	Scrutinee Expression
	Arms      []MatchArm
}

func (m *MatchExpression) expressionNode()      {}
func (m *MatchExpression) TokenLiteral() string { return m.Token.Literal }

// TryExpression is `try { body } catch $err { arms... }`. ErrBinding
// names the variable the caught Error instance is bound to inside every
// catch arm's body; CatchArms are matched against the error's tag field.
type TryExpression struct {
	Token      token.Token
	Body       *BlockStatement
	ErrBinding string
	CatchArms  []MatchArm
}

func (t *TryExpression) expressionNode()      {}
func (t *TryExpression) TokenLiteral() string { return t.Token.Literal }
