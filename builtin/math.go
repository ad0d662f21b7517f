/*
File    : pluto/builtin/math.go

Arithmetic builtins beyond the `+ - * /` operators — grounded on the
teacher's std/math.go naming (round, square root, power) but expressed
as call-patterns.
*/
package builtin

import (
	"math"

	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

func init() {
	Register("round", []SigItem{Kw("round"), Hl("n")}, roundFn)
	Register("square_root_of", []SigItem{Kw("square"), Kw("root"), Kw("of"), Hl("n")}, sqrtFn)
	Register("cube_root_of", []SigItem{Kw("cube"), Kw("root"), Kw("of"), Hl("n")}, cbrtFn)
	Register("absolute_value_of", []SigItem{Kw("absolute"), Kw("value"), Kw("of"), Hl("n")}, absFn)
	Register("power_of_raised_to", []SigItem{Kw("power"), Kw("of"), Hl("base"), Kw("raised"), Kw("to"), Hl("exp")}, powFn)
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		Register("ordinal_root_"+suffix,
			[]SigItem{Hl("root"), Kw(suffix), Kw("root"), Kw("of"), Hl("n")}, ordinalRootFn)
	}
}

func numArg(v object.Value) (float64, bool) {
	n, ok := v.(*object.Number)
	if !ok {
		return 0, false
	}
	return n.Value, true
}

func roundFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	n, ok := numArg(args[0])
	if !ok {
		return object.NewError("TypeError", "round expects a number")
	}
	return &object.Number{Value: math.Round(n)}
}

func sqrtFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	n, ok := numArg(args[0])
	if !ok {
		return object.NewError("TypeError", "square root of expects a number")
	}
	if n < 0 {
		return object.NewError("MathError", "square root of a negative number")
	}
	return &object.Number{Value: math.Sqrt(n)}
}

func cbrtFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	n, ok := numArg(args[0])
	if !ok {
		return object.NewError("TypeError", "cube root of expects a number")
	}
	return &object.Number{Value: math.Cbrt(n)}
}

func absFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	n, ok := numArg(args[0])
	if !ok {
		return object.NewError("TypeError", "absolute value of expects a number")
	}
	return &object.Number{Value: math.Abs(n)}
}

func powFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	base, ok1 := numArg(args[0])
	exp, ok2 := numArg(args[1])
	if !ok1 || !ok2 {
		return object.NewError("TypeError", "power of ... raised to ... expects numbers")
	}
	return &object.Number{Value: math.Pow(base, exp)}
}

// ordinalRootFn backs every `$root st/nd/rd/th root of $num` pattern:
// the nth root of num, same idiom as square/cube root above but with
// the root itself taken from the call rather than fixed at 2 or 3.
func ordinalRootFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	root, ok1 := numArg(args[0])
	n, ok2 := numArg(args[1])
	if !ok1 || !ok2 {
		return object.NewError("TypeError", "... root of ... expects numbers")
	}
	if root == 0 {
		return object.NewError("MathError", "0th root is undefined")
	}
	if n < 0 && math.Mod(root, 2) == 0 {
		return object.NewError("MathError", "even root of a negative number")
	}
	return &object.Number{Value: math.Pow(n, 1.0/root)}
}
