/*
File    : pluto/eval/eval.go

Package eval walks the ast.Node tree produced by the parser and
produces object.Value results. Evaluator's shape — a parser reference for
diagnostics, a root scope, a writer/reader pair, and a class table (the
builtin registry lives in package builtin) — is grounded on the teacher's eval.Evaluator, adapted
from name-keyed function/builtin dispatch to Pluto's pattern-unification
dispatch, and from a single global Types map to a Classes table entered
through ClassStatement.
*/
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
	"github.com/plutolang/pluto/parser"
)

// maxCallDepth bounds recursive pattern-function calls so a runaway
// recursive script fails with a catchable Error instead of a Go stack
// overflow crash.
const maxCallDepth = 1 << 14

// Evaluator walks an ast.Node tree in the context of a live environment.
type Evaluator struct {
	Par     *parser.Parser
	Root    *environment.Environment
	Classes map[string]*object.Class
	Writer  io.Writer
	Reader  *bufio.Reader

	depth int
}

// New creates an Evaluator with a fresh root environment, stdout/stdin
// wired as the default I/O streams, and the Error class pre-registered.
func New() *Evaluator {
	root := environment.New()
	ev := &Evaluator{
		Root:    root,
		Classes: map[string]*object.Class{object.ErrorClassName: object.ErrorClass},
		Writer:  os.Stdout,
		Reader:  bufio.NewReader(os.Stdin),
	}
	root.Declare(object.ErrorClassName, object.ErrorClass)
	return ev
}

// SetParser attaches the parser used to produce the tree being
// evaluated, so position-aware diagnostics can be built from it.
func (e *Evaluator) SetParser(p *parser.Parser) { e.Par = p }

// SetWriter redirects builtin output.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetReader redirects builtin input.
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// Stdout implements builtin.Runtime.
func (e *Evaluator) Stdout() io.Writer { return e.Writer }

// Stdin implements builtin.Runtime.
func (e *Evaluator) Stdin() *bufio.Reader { return e.Reader }

// Run evaluates a full program against the evaluator's root environment.
func (e *Evaluator) Run(program *ast.Program) object.Value {
	return e.EvalProgram(program, e.Root)
}

// Eval is the single type-switch dispatcher every node kind passes
// through. It intentionally stays flat (no Visitor interface, no
// per-type Eval method) — see package ast's doc comment for why.
func (e *Evaluator) Eval(node ast.Node, env *environment.Environment) object.Value {
	switch n := node.(type) {

	case *ast.Program:
		return e.EvalProgram(n, env)
	case *ast.ExpressionStatement:
		return e.Eval(n.Expr, env)
	case *ast.BlockStatement:
		return e.evalBlock(n, env)
	case *ast.ReturnStatement:
		return e.evalReturn(n, env)
	case *ast.NextStatement:
		return &object.Next{}
	case *ast.BreakStatement:
		return &object.Break{}

	case *ast.NumberLiteral:
		return &object.Number{Value: n.Value}
	case *ast.StringLiteral:
		return &object.String{Value: n.Value}
	case *ast.CharLiteral:
		return &object.Char{Value: n.Value}
	case *ast.BooleanLiteral:
		return &object.Boolean{Value: n.Value}
	case *ast.NullLiteral:
		return &object.Null{}
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n, env)
	case *ast.TupleLiteral:
		return e.evalTupleLiteral(n, env)
	case *ast.MapLiteral:
		return e.evalMapLiteral(n, env)
	case *ast.BlockLiteral:
		return &object.Block{Params: n.Params, Body: n.Body}

	case *ast.Identifier:
		return e.evalIdentifier(n, env)
	case *ast.PrefixExpression:
		return e.evalPrefix(n, env)
	case *ast.InfixExpression:
		return e.evalInfix(n, env)
	case *ast.DotExpression:
		return e.evalDot(n, env)
	case *ast.AssignExpression:
		return e.evalAssign(n, env)
	case *ast.DeclareExpression:
		return e.evalDeclare(n, env)

	case *ast.IfExpression:
		return e.evalIf(n, env)
	case *ast.WhileExpression:
		return e.evalWhile(n, env)
	case *ast.ForExpression:
		return e.evalFor(n, env)

	case *ast.FunctionDefinition:
		return e.evalFunctionDefinition(n, env)
	case *ast.FunctionCall:
		return e.evalFunctionCall(n, env)
	case *ast.MethodCall:
		return e.evalMethodCall(n, env)
	case *ast.ClassStatement:
		return e.evalClassStatement(n, env)

	case *ast.MatchExpression:
		return e.evalMatch(n, env)
	case *ast.TryExpression:
		return e.evalTry(n, env)

	default:
		return object.NewError("InternalError", "eval: unhandled node type")
	}
}

// EvalProgram evaluates every top-level statement in order, unwrapping a
// top-level ReturnValue (a bare `return` at module scope just yields its
// value) and short-circuiting on the first Error or propagated signal;
// a top-level Next or Break ends the program with Null.
func (e *Evaluator) EvalProgram(program *ast.Program, env *environment.Environment) object.Value {
	var result object.Value = &object.Null{}
	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)
		switch r := result.(type) {
		case *object.ReturnValue:
			return r.Value
		case *object.Next, *object.Break:
			return &object.Null{}
		case *object.Instance:
			if object.IsError(r) {
				return r
			}
		}
	}
	return result
}

// evalBlock evaluates a block's statements in env, propagating the first
// ReturnValue/Next/Break/Error signal unevaluated instead of continuing.
func (e *Evaluator) evalBlock(block *ast.BlockStatement, env *environment.Environment) object.Value {
	var result object.Value = &object.Null{}
	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)
		if result != nil {
			if object.IsSignal(result) || object.IsError(result) {
				return result
			}
		}
	}
	return result
}

func (e *Evaluator) evalReturn(n *ast.ReturnStatement, env *environment.Environment) object.Value {
	if n.Value == nil {
		return &object.ReturnValue{Value: &object.Null{}}
	}
	val := e.Eval(n.Value, env)
	if object.IsError(val) {
		return val
	}
	return &object.ReturnValue{Value: val}
}

func (e *Evaluator) newError(format string, args ...interface{}) *object.Instance {
	return object.NewError("EvalError", fmt.Sprintf(format, args...))
}
