/*
File    : pluto/eval/operators.go

Prefix and infix operators. Numbers/Booleans/Strings get their native
semantics inline; anything else is dispatched through the same pattern-
unification routine as ordinary calls, against a reserved `__op` method
name registered on the value's class — this is how Pluto gives scripts
operator overloading without a separate overload table.
*/
package eval

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

var overloadMethod = map[string]string{
	"+": "__plus", "-": "__minus", "*": "__times", "/": "__divide",
	"//": "__f_div", "%": "__mod", "**": "__exp",
	"==": "__eq", "!=": "__neq", "<": "__lt", ">": "__gt", "<=": "__le", ">=": "__ge",
	"&&": "__and", "||": "__or", "&": "__b_and", "|": "__b_or",
}

func (e *Evaluator) evalPrefix(n *ast.PrefixExpression, env *environment.Environment) object.Value {
	right := e.Eval(n.Right, env)
	if object.IsError(right) {
		return right
	}
	switch n.Operator {
	case "-":
		num, ok := right.(*object.Number)
		if !ok {
			return e.newError("unary - expects a number, got %s", right.Type())
		}
		return &object.Number{Value: -num.Value}
	case "+":
		num, ok := right.(*object.Number)
		if !ok {
			return e.newError("unary + expects a number, got %s", right.Type())
		}
		return &object.Number{Value: num.Value}
	case "!":
		return &object.Boolean{Value: !truthy(right)}
	default:
		return e.newError("unknown prefix operator %s", n.Operator)
	}
}

// evalInfix dispatches `left op right`. `?` always short-circuits on a
// non-Null left operand. `&&`/`||` short-circuit only
// when the left operand is a plain scalar — Instances route those
// operators through overload dispatch and Collections through
// intersect/union, both of which need the right operand evaluated and
// type-inspected rather than reduced to a truthiness check up front.
func (e *Evaluator) evalInfix(n *ast.InfixExpression, env *environment.Environment) object.Value {
	left := e.Eval(n.Left, env)
	if object.IsError(left) {
		return left
	}

	if n.Operator == "?" {
		if _, isNull := left.(*object.Null); !isNull {
			return left
		}
		return e.Eval(n.Right, env)
	}

	if (n.Operator == "&&" || n.Operator == "||") && !hasOwnLogicalSemantics(left) {
		if n.Operator == "&&" && !truthy(left) {
			return &object.Boolean{Value: false}
		}
		if n.Operator == "||" && truthy(left) {
			return &object.Boolean{Value: true}
		}
		right := e.Eval(n.Right, env)
		if object.IsError(right) {
			return right
		}
		return &object.Boolean{Value: truthy(right)}
	}

	right := e.Eval(n.Right, env)
	if object.IsError(right) {
		return right
	}

	if result, ok := evalTypedInfix(n.Operator, left, right, e); ok {
		return result
	}

	if n.Operator == "==" || n.Operator == "!=" {
		eq := structuralEqualValues(left, right)
		if n.Operator == "!=" {
			eq = !eq
		}
		return &object.Boolean{Value: eq}
	}

	if inst, ok := left.(*object.Instance); ok {
		if method, ok2 := overloadMethod[n.Operator]; ok2 {
			return e.invokeOverload(inst, method, right)
		}
	}

	return e.newError("unsupported operator %s between %s and %s", n.Operator, left.Type(), right.Type())
}

// hasOwnLogicalSemantics reports whether v's `&&`/`||` meaning is
// something other than plain boolean short-circuiting: Instances
// overload them, Collections intersect/union over them.
func hasOwnLogicalSemantics(v object.Value) bool {
	switch v.(type) {
	case *object.Instance, object.Collection:
		return true
	default:
		return false
	}
}

// evalTypedInfix tries every type-pair-specific rule in turn, returning
// (result, true) on the first that claims the operator.
func evalTypedInfix(op string, left, right object.Value, e *Evaluator) (object.Value, bool) {
	switch l := left.(type) {
	case *object.Number:
		if r, ok := right.(*object.Number); ok {
			return evalNumberInfix(op, l, r, e), true
		}
	case *object.String:
		switch r := right.(type) {
		case *object.String:
			return evalStringInfix(op, l, r, e), true
		case *object.Char:
			return evalStringCharInfix(op, l, r)
		case *object.Number:
			return evalCollectionNumberInfix(op, l, r)
		}
	case *object.Char:
		switch r := right.(type) {
		case *object.Char:
			return evalCharCharInfix(op, l, r)
		case *object.String:
			return evalCharStringInfix(op, l, r)
		case *object.Number:
			return evalCharNumberInfix(op, l, r)
		}
	case object.Collection:
		switch r := right.(type) {
		case object.Collection:
			return evalCollectionInfix(op, l, r)
		case *object.Number:
			return evalCollectionNumberInfix(op, l, r)
		}
	}
	return nil, false
}

func evalNumberInfix(op string, l, r *object.Number, e *Evaluator) object.Value {
	switch op {
	case "+":
		return &object.Number{Value: l.Value + r.Value}
	case "-":
		return &object.Number{Value: l.Value - r.Value}
	case "*":
		return &object.Number{Value: l.Value * r.Value}
	case "/":
		if r.Value == 0 {
			return object.NewError("MathError", "division by zero")
		}
		return &object.Number{Value: l.Value / r.Value}
	case "//":
		if r.Value == 0 {
			return object.NewError("MathError", "division by zero")
		}
		return &object.Number{Value: floorDiv(l.Value, r.Value)}
	case "%":
		if r.Value == 0 {
			return object.NewError("MathError", "division by zero")
		}
		return &object.Number{Value: modFloat(l.Value, r.Value)}
	case "**":
		return &object.Number{Value: powFloat(l.Value, r.Value)}
	case "&":
		return &object.Number{Value: float64(int64(l.Value) & int64(r.Value))}
	case "|":
		return &object.Number{Value: float64(int64(l.Value) | int64(r.Value))}
	case "<":
		return &object.Boolean{Value: l.Value < r.Value}
	case ">":
		return &object.Boolean{Value: l.Value > r.Value}
	case "<=":
		return &object.Boolean{Value: l.Value <= r.Value}
	case ">=":
		return &object.Boolean{Value: l.Value >= r.Value}
	case "==":
		return &object.Boolean{Value: l.Value == r.Value}
	case "!=":
		return &object.Boolean{Value: l.Value != r.Value}
	default:
		return e.newError("unsupported operator %s between numbers", op)
	}
}

func evalStringInfix(op string, l, r *object.String, e *Evaluator) object.Value {
	switch op {
	case "+":
		return &object.String{Value: l.Value + r.Value}
	case "==":
		return &object.Boolean{Value: l.Value == r.Value}
	case "!=":
		return &object.Boolean{Value: l.Value != r.Value}
	case "<":
		return &object.Boolean{Value: l.Value < r.Value}
	case ">":
		return &object.Boolean{Value: l.Value > r.Value}
	case "<=":
		return &object.Boolean{Value: l.Value <= r.Value}
	case ">=":
		return &object.Boolean{Value: l.Value >= r.Value}
	default:
		return e.newError("unsupported operator %s between strings", op)
	}
}

// evalCharCharInfix covers Char⊗Char: `+` concatenates into a two-rune
// String, `-` removes all occurrences of the right char from the left.
func evalCharCharInfix(op string, l, r *object.Char) (object.Value, bool) {
	switch op {
	case "+":
		return &object.String{Value: string(l.Value) + string(r.Value)}, true
	case "-":
		return &object.String{Value: strings.ReplaceAll(string(l.Value), string(r.Value), "")}, true
	case "==":
		return &object.Boolean{Value: l.Value == r.Value}, true
	case "!=":
		return &object.Boolean{Value: l.Value != r.Value}, true
	}
	return nil, false
}

// evalCharStringInfix covers Char⊗String: only `+` (concatenate) is
// defined — "remove all occurrences of the right char" needs a Char on
// the right, not a String.
func evalCharStringInfix(op string, l *object.Char, r *object.String) (object.Value, bool) {
	if op == "+" {
		return &object.String{Value: string(l.Value) + r.Value}, true
	}
	return nil, false
}

// evalStringCharInfix covers String⊗Char: `+` concatenates, `-` removes
// all occurrences of the right char from the left string.
func evalStringCharInfix(op string, l *object.String, r *object.Char) (object.Value, bool) {
	switch op {
	case "+":
		return &object.String{Value: l.Value + string(r.Value)}, true
	case "-":
		return &object.String{Value: strings.ReplaceAll(l.Value, string(r.Value), "")}, true
	}
	return nil, false
}

// evalCharNumberInfix covers Char × Number: floor(n) repetitions of the
// char as a String.
func evalCharNumberInfix(op string, l *object.Char, r *object.Number) (object.Value, bool) {
	if op != "*" {
		return nil, false
	}
	return &object.String{Value: strings.Repeat(string(l.Value), repeatCount(r))}, true
}

// evalCollectionInfix covers Collection ⊗ Collection: order-preserving
// first-occurrence set algebra. The result is rebuilt as the left
// operand's concrete kind.
func evalCollectionInfix(op string, l, r object.Collection) (object.Value, bool) {
	switch op {
	case "+":
		return object.SameKind(l, append(append([]object.Value{}, l.Elements()...), r.Elements()...)), true
	case "-":
		rElems := r.Elements()
		kept := lo.Filter(dedupValues(l.Elements()), func(item object.Value, _ int) bool {
			return !containsValue(rElems, item)
		})
		return object.SameKind(l, kept), true
	case "&&":
		rElems := r.Elements()
		kept := lo.Filter(dedupValues(l.Elements()), func(item object.Value, _ int) bool {
			return containsValue(rElems, item)
		})
		return object.SameKind(l, kept), true
	case "||":
		merged := append(append([]object.Value{}, l.Elements()...), r.Elements()...)
		return object.SameKind(l, dedupValues(merged)), true
	case "==":
		return &object.Boolean{Value: structuralEqualValues(l, r)}, true
	case "!=":
		return &object.Boolean{Value: !structuralEqualValues(l, r)}, true
	}
	return nil, false
}

// evalCollectionNumberInfix covers Collection × Number: floor(n)
// concatenated copies of the left collection, same kind as the left.
func evalCollectionNumberInfix(op string, l object.Collection, r *object.Number) (object.Value, bool) {
	if op != "*" {
		return nil, false
	}
	elems := l.Elements()
	count := repeatCount(r)
	out := make([]object.Value, 0, len(elems)*count)
	for i := 0; i < count; i++ {
		out = append(out, elems...)
	}
	return object.SameKind(l, out), true
}

func repeatCount(n *object.Number) int {
	count := int(math.Floor(n.Value))
	if count < 0 {
		return 0
	}
	return count
}

func containsValue(elems []object.Value, v object.Value) bool {
	return lo.ContainsBy(elems, func(item object.Value) bool {
		return structuralEqualValues(item, v)
	})
}

func dedupValues(elems []object.Value) []object.Value {
	return lo.UniqBy(elems, object.HashKey)
}

func (e *Evaluator) invokeOverload(inst *object.Instance, methodName string, arg object.Value) object.Value {
	shape := []environment.CallItem{
		{IsKeyword: true, Keyword: methodName},
		{IsKeyword: false, Value: arg},
	}
	for _, m := range inst.Class.GetMethods() {
		if bindings, ok := environment.Unify(m.Pattern, shape); ok {
			return e.invokeFunction(m, bindings, inst)
		}
	}
	return e.newError("%s has no operator method %s", inst.Class.Name, methodName)
}

func structuralEqualValues(a, b object.Value) bool {
	if ea, ok := a.(object.Equaler); ok {
		return ea.Equal(b)
	}
	return a == b
}

func truthy(v object.Value) bool {
	switch val := v.(type) {
	case *object.Boolean:
		return val.Value
	case *object.Null:
		return false
	default:
		return true
	}
}

func floorDiv(a, b float64) float64 {
	return math.Floor(a / b)
}

func modFloat(a, b float64) float64 {
	return math.Mod(a, b)
}

func powFloat(base, exp float64) float64 {
	return math.Pow(base, exp)
}
