package eval

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

func (e *Evaluator) evalExprList(exprs []ast.Expression, env *environment.Environment) ([]object.Value, object.Value) {
	values := make([]object.Value, 0, len(exprs))
	for _, expr := range exprs {
		v := e.Eval(expr, env)
		if object.IsError(v) {
			return nil, v
		}
		values = append(values, v)
	}
	return values, nil
}

func (e *Evaluator) evalArrayLiteral(n *ast.ArrayLiteral, env *environment.Environment) object.Value {
	elems, errVal := e.evalExprList(n.Elements, env)
	if errVal != nil {
		return errVal
	}
	return &object.Array{Elems: elems}
}

func (e *Evaluator) evalTupleLiteral(n *ast.TupleLiteral, env *environment.Environment) object.Value {
	elems, errVal := e.evalExprList(n.Elements, env)
	if errVal != nil {
		return errVal
	}
	return &object.Tuple{Elems: elems}
}

func (e *Evaluator) evalMapLiteral(n *ast.MapLiteral, env *environment.Environment) object.Value {
	m := object.NewMap()
	for _, pair := range n.Pairs {
		key := e.Eval(pair.Key, env)
		if object.IsError(key) {
			return key
		}
		val := e.Eval(pair.Value, env)
		if object.IsError(val) {
			return val
		}
		m.Set(key, val)
	}
	return m
}
