/*
File    : pluto/ast/calls.go

The nodes that make Pluto's calling convention distinctive: a call site's
"shape" is a sequence of keyword identifiers and parenthesized argument
holes, and a function definition's shape is the same sequence with typed
$param holes instead of argument holes. Method calls are the same
call-pattern shape applied through a DotExpression.
*/
package ast

import "github.com/plutolang/pluto/token"

// PatternItemKind distinguishes the two kinds of item that can appear in
// a call pattern or a function-definition pattern.
type PatternItemKind int

const (
	// PatternKeyword is a literal identifier that must match verbatim
	// between a call site and a registered signature.
	PatternKeyword PatternItemKind = iota
	// PatternHole is a call-site argument expression, matched positionally
	// against a PatternParam in a signature.
	PatternHole
	// PatternParam is a `$name` formal parameter in a function/method
	// definition, matched positionally against a PatternHole at the call
	// site.
	PatternParam
)

// CallPatternItem is one element of a call site's pattern: either a bare
// keyword identifier or a parenthesized argument expression.
type CallPatternItem struct {
	Kind     PatternItemKind // PatternKeyword or PatternHole
	Keyword  string          // set when Kind == PatternKeyword
	Argument Expression      // set when Kind == PatternHole
}

// FunctionCall is `\keyword (expr) keyword (expr) ...` — spec.md's
// signature-call production. The call's "shape" (for pattern resolution)
// is the sequence of Kind values in Pattern.
type FunctionCall struct {
	Token   token.Token // the leading `\`
	Pattern []CallPatternItem
}

func (f *FunctionCall) expressionNode()      {}
func (f *FunctionCall) TokenLiteral() string { return f.Token.Literal }

// DefPatternItem is one element of a function-definition pattern: either
// a literal keyword or a `$name` formal parameter.
type DefPatternItem struct {
	Kind  PatternItemKind // PatternKeyword or PatternParam
	Text  string          // keyword text, or parameter name
}

// FunctionDefinition is `def keyword $p keyword $q { body }`.
type FunctionDefinition struct {
	Token   token.Token // the `def` keyword
	Pattern []DefPatternItem
	Body    *BlockStatement
}

func (f *FunctionDefinition) statementNode()      {}
func (f *FunctionDefinition) TokenLiteral() string { return f.Token.Literal }

// MethodCall is `instance.\keyword (expr) ...` — the call-pattern applied
// through an instance. Parsed as the `.` operator whose right side is a
// `\`-led call-pattern rather than a bare identifier.
type MethodCall struct {
	Token    token.Token
	Instance Expression
	Pattern  []CallPatternItem
}

func (m *MethodCall) expressionNode()      {}
func (m *MethodCall) TokenLiteral() string { return m.Token.Literal }
