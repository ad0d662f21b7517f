package eval

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

func (e *Evaluator) evalIdentifier(n *ast.Identifier, env *environment.Environment) object.Value {
	if v, ok := env.Get(n.Name); ok {
		return v
	}
	if class, ok := e.Classes[n.Name]; ok {
		return class
	}
	return e.newError("undefined name: %s", n.Name)
}

func (e *Evaluator) evalDot(n *ast.DotExpression, env *environment.Environment) object.Value {
	left := e.Eval(n.Left, env)
	if object.IsError(left) {
		return left
	}
	return e.fieldGet(left, n.Name)
}

func (e *Evaluator) fieldGet(left object.Value, name string) object.Value {
	switch val := left.(type) {
	case *object.Instance:
		if field, ok := val.Fields[name]; ok {
			return field
		}
		return e.newError("instance of %s has no field %s", val.Class.Name, name)
	case *object.Class:
		return e.newError("class %s has no field %s", val.Name, name)
	default:
		return e.newError("%s has no field %s", left.Type(), name)
	}
}

func (e *Evaluator) evalDeclare(n *ast.DeclareExpression, env *environment.Environment) object.Value {
	val := e.Eval(n.Value, env)
	if object.IsError(val) {
		return val
	}
	ident, ok := n.Target.(*ast.Identifier)
	if !ok {
		return e.newError("declare target must be an identifier")
	}
	env.Declare(ident.Name, val)
	return val
}

func (e *Evaluator) evalAssign(n *ast.AssignExpression, env *environment.Environment) object.Value {
	val := e.Eval(n.Value, env)
	if object.IsError(val) {
		return val
	}
	switch target := n.Target.(type) {
	case *ast.Identifier:
		env.Assign(target.Name, val)
		return val
	case *ast.DotExpression:
		left := e.Eval(target.Left, env)
		if object.IsError(left) {
			return left
		}
		inst, ok := left.(*object.Instance)
		if !ok {
			return e.newError("cannot assign field %s on %s", target.Name, left.Type())
		}
		inst.Fields[target.Name] = val
		return val
	default:
		return e.newError("invalid assignment target")
	}
}
