/*
File    : pluto/builtin/io.go

Print/input/format builtins — the ambient I/O surface every script
needs, grounded on the teacher's std/io.go and std/format.go but
re-expressed as pattern signatures instead of name-keyed calls.
*/
package builtin

import (
	"fmt"
	"strings"

	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

func init() {
	Register("print", []SigItem{Kw("print"), Hl("value")}, printFn)
	Register("print_without_newline", []SigItem{Kw("print"), Hl("value"), Kw("without"), Kw("newline")}, printWithoutNewlineFn)
	Register("input", []SigItem{Kw("input")}, inputFn)
	Register("input_prompt", []SigItem{Kw("input"), Hl("prompt")}, inputPromptFn)
	Register("format", []SigItem{Kw("format"), Hl("template"), Kw("with"), Hl("values")}, formatFn)
	Register("printf", []SigItem{Kw("printf"), Hl("template"), Kw("with"), Hl("values")}, printfFn)
}

func printFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	fmt.Fprintln(rt.Stdout(), displayString(args[0]))
	return &object.Null{}
}

// printWithoutNewlineFn is `print $obj without newline`: the same
// display rendering as `print`, but no trailing newline.
func printWithoutNewlineFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	fmt.Fprint(rt.Stdout(), displayString(args[0]))
	return &object.Null{}
}

func inputFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	line, err := rt.Stdin().ReadString('\n')
	if err != nil && line == "" {
		return &object.String{Value: ""}
	}
	return &object.String{Value: strings.TrimRight(line, "\r\n")}
}

func inputPromptFn(rt Runtime, args []object.Value, env *environment.Environment) object.Value {
	fmt.Fprint(rt.Stdout(), displayString(args[0]))
	return inputFn(rt, nil, env)
}

// formatFn implements `format "..." with (values)`, a printf-style
// template where `{}` placeholders are filled positionally from an
// Array/Tuple of values.
func formatFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	tmpl, ok := args[0].(*object.String)
	if !ok {
		return object.NewError("TypeError", "format expects a string template")
	}
	coll, ok := args[1].(object.Collection)
	if !ok {
		return object.NewError("TypeError", "format expects a collection of values")
	}
	return &object.String{Value: fillTemplate(tmpl.Value, coll.Elements())}
}

// printfFn is `printf "..." with (values)`: format then print, the way
// `print` is `format`'s print-variant — `{}` placeholders, not the
// original's `%`-style directives.
func printfFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	tmpl, ok := args[0].(*object.String)
	if !ok {
		return object.NewError("TypeError", "printf expects a string template")
	}
	coll, ok := args[1].(object.Collection)
	if !ok {
		return object.NewError("TypeError", "printf expects a collection of values")
	}
	fmt.Fprintln(rt.Stdout(), fillTemplate(tmpl.Value, coll.Elements()))
	return &object.Null{}
}

func fillTemplate(s string, values []object.Value) string {
	var sb strings.Builder
	vi := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '{' && i+1 < len(s) && s[i+1] == '}' {
			if vi < len(values) {
				sb.WriteString(displayString(values[vi]))
				vi++
			}
			i++
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// displayString renders v the way `print` does: unquoted strings/chars,
// Inspect for everything else.
func displayString(v object.Value) string {
	switch val := v.(type) {
	case *object.String:
		return val.Value
	case *object.Char:
		return string(val.Value)
	default:
		return v.Inspect()
	}
}
