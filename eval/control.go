package eval

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

func (e *Evaluator) evalIf(n *ast.IfExpression, env *environment.Environment) object.Value {
	cond := e.Eval(n.Condition, env)
	if object.IsError(cond) {
		return cond
	}
	if truthy(cond) {
		return e.evalBlock(n.Then, environment.Enclose(env))
	}
	if n.Else != nil {
		return e.evalBlock(n.Else, environment.Enclose(env))
	}
	return &object.Null{}
}

func (e *Evaluator) evalWhile(n *ast.WhileExpression, env *environment.Environment) object.Value {
	var result object.Value = &object.Null{}
	for {
		cond := e.Eval(n.Condition, env)
		if object.IsError(cond) {
			return cond
		}
		if !truthy(cond) {
			break
		}
		result = e.evalBlock(n.Body, environment.Enclose(env))
		if object.IsError(result) || isReturn(result) {
			return result
		}
		if _, ok := result.(*object.Break); ok {
			return &object.Null{}
		}
		if _, ok := result.(*object.Next); ok {
			continue
		}
	}
	return result
}

func (e *Evaluator) evalFor(n *ast.ForExpression, env *environment.Environment) object.Value {
	coll := e.Eval(n.Collection, env)
	if object.IsError(coll) {
		return coll
	}
	c, ok := coll.(object.Collection)
	if !ok {
		return e.newError("for ... in expects a collection, got %s", coll.Type())
	}
	var result object.Value = &object.Null{}
	for _, item := range c.Elements() {
		loopEnv := environment.Enclose(env)
		loopEnv.Declare(n.Var, item)
		result = e.evalBlock(n.Body, loopEnv)
		if object.IsError(result) || isReturn(result) {
			return result
		}
		if _, ok := result.(*object.Break); ok {
			return &object.Null{}
		}
	}
	return result
}

func isReturn(v object.Value) bool {
	_, ok := v.(*object.ReturnValue)
	return ok
}
