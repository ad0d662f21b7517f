/*
File    : pluto/builtin/collections.go

Collection builtins — map/filter/fold over Blocks, and array/map
indexing and introspection. map/filter/fold and the set-algebra helpers
in sets.go are implemented with samber/lo rather than hand-rolled loops,
the way Tangerg-lynx's pkg layer leans on lo for the same shapes.
*/
package builtin

import (
	"github.com/samber/lo"

	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

func init() {
	Register("map_over", []SigItem{Kw("map"), Hl("block"), Kw("over"), Hl("array")}, mapOverFn)
	Register("filter", []SigItem{Kw("filter"), Hl("array"), Kw("by"), Hl("block")}, filterFn)
	Register("left_fold", []SigItem{Kw("left"), Kw("fold"), Hl("array"), Kw("with"), Hl("block")}, leftFoldFn)
	Register("left_fold_from", []SigItem{Kw("left"), Kw("fold"), Hl("array"), Kw("with"), Hl("block"), Kw("from"), Hl("init")}, leftFoldFromFn)
	Register("right_fold", []SigItem{Kw("right"), Kw("fold"), Hl("array"), Kw("with"), Hl("block")}, rightFoldFn)
	Register("right_fold_from", []SigItem{Kw("right"), Kw("fold"), Hl("array"), Kw("with"), Hl("block"), Kw("from"), Hl("init")}, rightFoldFromFn)
	Register("index_of", []SigItem{Kw("index"), Hl("i"), Kw("of"), Hl("array")}, indexOfFn)
	Register("key_of", []SigItem{Kw("key"), Hl("key"), Kw("of"), Hl("obj")}, keyOfFn)
	Register("keys_of", []SigItem{Kw("keys"), Kw("of"), Hl("obj")}, keysOfFn)
	Register("values_of", []SigItem{Kw("values"), Kw("of"), Hl("obj")}, valuesOfFn)
	Register("pairs_of", []SigItem{Kw("pairs"), Kw("of"), Hl("obj")}, pairsOfFn)
	Register("size_of", []SigItem{Kw("size"), Kw("of"), Hl("obj")}, sizeOfFn)
	Register("range_to", []SigItem{Hl("start"), Kw("to"), Hl("end")}, rangeToFn)
}

func elementsOf(v object.Value) ([]object.Value, bool) {
	coll, ok := v.(object.Collection)
	if !ok {
		return nil, false
	}
	return coll.Elements(), true
}

func mapOverFn(rt Runtime, args []object.Value, env *environment.Environment) object.Value {
	block, ok := args[0].(*object.Block)
	if !ok {
		return object.NewError("TypeError", "map expects a block")
	}
	elems, ok := elementsOf(args[1])
	if !ok {
		return object.NewError("TypeError", "map expects a collection")
	}
	mapped := lo.Map(elems, func(item object.Value, _ int) object.Value {
		return rt.CallBlock(block, []object.Value{item}, env)
	})
	return object.SameKind(args[1], mapped)
}

func filterFn(rt Runtime, args []object.Value, env *environment.Environment) object.Value {
	elems, ok := elementsOf(args[0])
	if !ok {
		return object.NewError("TypeError", "filter expects a collection")
	}
	block, ok := args[1].(*object.Block)
	if !ok {
		return object.NewError("TypeError", "filter expects a block")
	}
	kept := lo.Filter(elems, func(item object.Value, _ int) bool {
		result := rt.CallBlock(block, []object.Value{item}, env)
		b, ok := result.(*object.Boolean)
		return ok && b.Value
	})
	return object.SameKind(args[0], kept)
}

// leftFoldFn is `left fold $array with $block`: the array's first
// element seeds the accumulator, folding left across the rest.
func leftFoldFn(rt Runtime, args []object.Value, env *environment.Environment) object.Value {
	elems, ok := elementsOf(args[0])
	if !ok {
		return object.NewError("TypeError", "fold expects a collection")
	}
	block, ok := args[1].(*object.Block)
	if !ok {
		return object.NewError("TypeError", "fold expects a block")
	}
	if len(elems) == 0 {
		return object.NewError("TypeError", "left fold of an empty collection needs a from $start seed")
	}
	return lo.Reduce(elems[1:], func(acc object.Value, item object.Value, _ int) object.Value {
		return rt.CallBlock(block, []object.Value{acc, item}, env)
	}, elems[0])
}

// leftFoldFromFn is `left fold $array with $block from $init`: init
// seeds the accumulator explicitly, folding left across every element.
func leftFoldFromFn(rt Runtime, args []object.Value, env *environment.Environment) object.Value {
	elems, ok := elementsOf(args[0])
	if !ok {
		return object.NewError("TypeError", "fold expects a collection")
	}
	block, ok := args[1].(*object.Block)
	if !ok {
		return object.NewError("TypeError", "fold expects a block")
	}
	return lo.Reduce(elems, func(acc object.Value, item object.Value, _ int) object.Value {
		return rt.CallBlock(block, []object.Value{acc, item}, env)
	}, args[2])
}

// rightFoldFn is `right fold $array with $block`: the array's last
// element seeds the accumulator, folding right across the rest.
func rightFoldFn(rt Runtime, args []object.Value, env *environment.Environment) object.Value {
	elems, ok := elementsOf(args[0])
	if !ok {
		return object.NewError("TypeError", "fold expects a collection")
	}
	block, ok := args[1].(*object.Block)
	if !ok {
		return object.NewError("TypeError", "fold expects a block")
	}
	if len(elems) == 0 {
		return object.NewError("TypeError", "right fold of an empty collection needs a from $start seed")
	}
	last := len(elems) - 1
	return lo.ReduceRight(elems[:last], func(acc object.Value, item object.Value, _ int) object.Value {
		return rt.CallBlock(block, []object.Value{acc, item}, env)
	}, elems[last])
}

// rightFoldFromFn is `right fold $array with $block from $init`: init
// seeds the accumulator explicitly, folding right across every element.
func rightFoldFromFn(rt Runtime, args []object.Value, env *environment.Environment) object.Value {
	elems, ok := elementsOf(args[0])
	if !ok {
		return object.NewError("TypeError", "fold expects a collection")
	}
	block, ok := args[1].(*object.Block)
	if !ok {
		return object.NewError("TypeError", "fold expects a block")
	}
	return lo.ReduceRight(elems, func(acc object.Value, item object.Value, _ int) object.Value {
		return rt.CallBlock(block, []object.Value{acc, item}, env)
	}, args[2])
}

func indexOfFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	idx, ok := args[0].(*object.Number)
	if !ok {
		return object.NewError("TypeError", "index expects a number")
	}
	elems, ok := elementsOf(args[1])
	if !ok {
		return object.NewError("TypeError", "index of expects a collection")
	}
	i := int(idx.Value)
	if i < 0 || i >= len(elems) {
		return object.NewError("IndexError", "index out of range")
	}
	return elems[i]
}

func keyOfFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	m, ok := args[1].(*object.Map)
	if !ok {
		return object.NewError("TypeError", "key of expects a map")
	}
	v, ok := m.Get(args[0])
	if !ok {
		return object.NewError("KeyError", "key not found")
	}
	return v
}

func keysOfFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	m, ok := args[0].(*object.Map)
	if !ok {
		return object.NewError("TypeError", "keys of expects a map")
	}
	return &object.Array{Elems: m.Keys()}
}

func valuesOfFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	m, ok := args[0].(*object.Map)
	if !ok {
		return object.NewError("TypeError", "values of expects a map")
	}
	return &object.Array{Elems: m.Values()}
}

func pairsOfFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	m, ok := args[0].(*object.Map)
	if !ok {
		return object.NewError("TypeError", "pairs of expects a map")
	}
	return &object.Array{Elems: m.Elements()}
}

func sizeOfFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	coll, ok := args[0].(object.Collection)
	if !ok {
		return object.NewError("TypeError", "size of expects a collection")
	}
	return &object.Number{Value: float64(coll.Len())}
}

// rangeToFn is `$start to $end`: ascending when start < end (start
// inclusive, end exclusive), descending when start > end (start
// inclusive, end exclusive, counting down), empty when they're equal.
func rangeToFn(rt Runtime, args []object.Value, _ *environment.Environment) object.Value {
	start, ok1 := args[0].(*object.Number)
	end, ok2 := args[1].(*object.Number)
	if !ok1 || !ok2 {
		return object.NewError("TypeError", "range expects numbers")
	}
	from, to := int(start.Value), int(end.Value)

	var elems []object.Value
	switch {
	case from < to:
		elems = make([]object.Value, 0, to-from)
		for i := from; i < to; i++ {
			elems = append(elems, &object.Number{Value: float64(i)})
		}
	case from > to:
		elems = make([]object.Value, 0, from-to)
		for i := from; i > to; i-- {
			elems = append(elems, &object.Number{Value: float64(i)})
		}
	}
	return &object.Array{Elems: elems}
}
