/*
File    : pluto/builtin/sets.go

Set-algebra builtins over Arrays, implemented with samber/lo: union via
UniqBy over each value's HashKey, intersection via Filter/ContainsBy, so
structural equality rather than Go's == governs membership.
*/
package builtin

import (
	"github.com/samber/lo"

	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

func init() {
	Register("union_of", []SigItem{Kw("union"), Kw("of"), Hl("a"), Kw("and"), Hl("b")}, unionFn)
	Register("intersection_of", []SigItem{Kw("intersection"), Kw("of"), Hl("a"), Kw("and"), Hl("b")}, intersectionFn)
	Register("difference_of", []SigItem{Kw("difference"), Kw("of"), Hl("a"), Kw("and"), Hl("b")}, differenceFn)
}

func contains(elems []object.Value, v object.Value) bool {
	return lo.ContainsBy(elems, func(item object.Value) bool {
		return valuesEqual(item, v)
	})
}

func valuesEqual(a, b object.Value) bool {
	if ea, ok := a.(object.Equaler); ok {
		return ea.Equal(b)
	}
	return a == b
}

func dedup(elems []object.Value) []object.Value {
	return lo.UniqBy(elems, object.HashKey)
}

func unionFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	a, ok1 := elementsOf(args[0])
	b, ok2 := elementsOf(args[1])
	if !ok1 || !ok2 {
		return object.NewError("TypeError", "union of expects two collections")
	}
	return &object.Array{Elems: dedup(append(append([]object.Value{}, a...), b...))}
}

func intersectionFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	a, ok1 := elementsOf(args[0])
	b, ok2 := elementsOf(args[1])
	if !ok1 || !ok2 {
		return object.NewError("TypeError", "intersection of expects two collections")
	}
	kept := lo.Filter(dedup(a), func(item object.Value, _ int) bool {
		return contains(b, item)
	})
	return &object.Array{Elems: kept}
}

func differenceFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	a, ok1 := elementsOf(args[0])
	b, ok2 := elementsOf(args[1])
	if !ok1 || !ok2 {
		return object.NewError("TypeError", "difference of expects two collections")
	}
	kept := lo.Filter(dedup(a), func(item object.Value, _ int) bool {
		return !contains(b, item)
	})
	return &object.Array{Elems: kept}
}
