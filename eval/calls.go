/*
File    : pluto/eval/calls.go

Function/method/call-pattern evaluation. Every call site (bare function
call, operator overload, method call) reduces its arguments to a
[]environment.CallItem "shape" and runs it through the shared
pattern-unification routine. A bare function call is tried against the
scope chain's registered pattern-functions, then every class's init
pattern, then the global builtin registry; method calls and operator
overloads are tried against the receiving instance's class methods.
*/
package eval

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/builtin"
	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

func (e *Evaluator) evalFunctionDefinition(n *ast.FunctionDefinition, env *environment.Environment) object.Value {
	fn := &object.Function{Pattern: n.Pattern, Body: n.Body, Env: env}
	env.RegisterPattern(n.Pattern, fn)
	return fn
}

// buildCallShape evaluates a call-pattern's argument holes in order and
// returns the resulting []environment.CallItem, or an Error if any
// argument expression evaluates to one.
func (e *Evaluator) buildCallShape(pattern []ast.CallPatternItem, env *environment.Environment) ([]environment.CallItem, object.Value) {
	shape := make([]environment.CallItem, len(pattern))
	for i, item := range pattern {
		if item.Kind == ast.PatternKeyword {
			shape[i] = environment.CallItem{IsKeyword: true, Keyword: item.Keyword}
			continue
		}
		val := e.Eval(item.Argument, env)
		if object.IsError(val) {
			return nil, val
		}
		shape[i] = environment.CallItem{Value: val}
	}
	return shape, nil
}

func (e *Evaluator) evalFunctionCall(n *ast.FunctionCall, env *environment.Environment) object.Value {
	shape, errVal := e.buildCallShape(n.Pattern, env)
	if errVal != nil {
		return errVal
	}

	if fn, bindings, ok := env.ResolvePattern(shape); ok {
		return e.invokeFunction(fn, bindings, nil)
	}

	if class, bindings, ok := e.resolveConstructor(shape); ok {
		return e.construct(class, bindings)
	}

	if b, args, ok := builtin.Resolve(shape); ok {
		return b.Fn(e, args, env)
	}

	return e.newError("no function matches this call pattern")
}

func (e *Evaluator) evalMethodCall(n *ast.MethodCall, env *environment.Environment) object.Value {
	instVal := e.Eval(n.Instance, env)
	if object.IsError(instVal) {
		return instVal
	}
	inst, ok := instVal.(*object.Instance)
	if !ok {
		return e.newError("method call target must be an instance, got %s", instVal.Type())
	}

	shape, errVal := e.buildCallShape(n.Pattern, env)
	if errVal != nil {
		return errVal
	}

	for _, m := range inst.Class.GetMethods() {
		if bindings, ok := environment.Unify(m.Pattern, shape); ok {
			return e.invokeFunction(m, bindings, inst)
		}
	}
	return e.newError("%s has no method matching this call pattern", inst.Class.Name)
}

// invokeFunction runs fn's body in a fresh scope enclosing fn's defining
// environment, with bindings installed and (for methods) `self` bound to
// the receiving instance. It enforces maxCallDepth and unwraps a trailing
// ReturnValue into its plain payload.
func (e *Evaluator) invokeFunction(fn *object.Function, bindings map[string]object.Value, self *object.Instance) object.Value {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxCallDepth {
		return object.NewError("RecursionError", "maximum call depth exceeded")
	}

	callEnv := environment.Enclose(fn.Env.(*environment.Environment))
	for name, val := range bindings {
		callEnv.Declare(name, val)
	}
	if self != nil {
		callEnv.Declare("self", self)
	}

	result := e.evalBlock(fn.Body, callEnv)
	if ret, ok := result.(*object.ReturnValue); ok {
		return ret.Value
	}
	return result
}

// CallBlock implements builtin.Runtime: it runs a Block value against
// positional args in a fresh scope enclosing env, the environment active
// at the call site that invoked the builtin running this block — a
// block carries no captured lexical environment of its own (see
// object.Block's doc comment), so it sees whatever scope its caller was
// standing in, the way a reified lambda body would.
func (e *Evaluator) CallBlock(block *object.Block, args []object.Value, env *environment.Environment) object.Value {
	callEnv := environment.Enclose(env)
	for i, param := range block.Params {
		if i < len(args) {
			callEnv.Declare(param, args[i])
		}
	}
	result := e.evalBlock(block.Body, callEnv)
	if ret, ok := result.(*object.ReturnValue); ok {
		return ret.Value
	}
	return result
}
