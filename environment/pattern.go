package environment

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/object"
)

// CallItem is a call site's pattern shape reduced to what unification
// needs: either a literal keyword or an already-evaluated argument
// value. The evaluator builds a []CallItem from an ast.FunctionCall or
// ast.MethodCall's Pattern by evaluating every PatternHole and copying
// every PatternKeyword's text across unchanged.
type CallItem struct {
	IsKeyword bool
	Keyword   string      // set when IsKeyword
	Value     object.Value // set when !IsKeyword
}

// Unify tests whether def's shape matches call's shape one item at a
// time: a PatternKeyword item must match a keyword call item on exact
// text, and a PatternParam item must match a value call item, binding
// the parameter name to that value. Lengths must match exactly. On
// success it returns the parameter bindings to install in the function's
// call-time scope.
func Unify(def []ast.DefPatternItem, call []CallItem) (map[string]object.Value, bool) {
	if len(def) != len(call) {
		return nil, false
	}
	bindings := make(map[string]object.Value)
	for i, d := range def {
		c := call[i]
		switch d.Kind {
		case ast.PatternKeyword:
			if !c.IsKeyword || c.Keyword != d.Text {
				return nil, false
			}
		case ast.PatternParam:
			if c.IsKeyword {
				return nil, false
			}
			bindings[d.Text] = c.Value
		default:
			return nil, false
		}
	}
	return bindings, true
}
