/*
File    : pluto/builtin/blocks.go

`do` runs a reified Block value directly, without going through
map/filter/fold — grounded on the teacher's std function-as-value
invocation idiom and on _run_block in the original implementation,
which always encloses the caller's own environment rather than a
global one.
*/
package builtin

import (
	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

func init() {
	Register("do_block", []SigItem{Kw("do"), Hl("block")}, doBlockFn)
	Register("do_block_with_args", []SigItem{Kw("do"), Hl("block"), Kw("with"), Hl("args")}, doBlockWithArgsFn)
	Register("do_block_on_arg", []SigItem{Kw("do"), Hl("block"), Kw("on"), Hl("arg")}, doBlockOnArgFn)
}

func doBlockFn(rt Runtime, args []object.Value, env *environment.Environment) object.Value {
	block, ok := args[0].(*object.Block)
	if !ok {
		return object.NewError("TypeError", "do expects a block")
	}
	return rt.CallBlock(block, nil, env)
}

func doBlockWithArgsFn(rt Runtime, args []object.Value, env *environment.Environment) object.Value {
	block, ok := args[0].(*object.Block)
	if !ok {
		return object.NewError("TypeError", "do expects a block")
	}
	coll, ok := args[1].(object.Collection)
	if !ok {
		return object.NewError("TypeError", "do ... with ... expects a collection of args")
	}
	return rt.CallBlock(block, coll.Elements(), env)
}

func doBlockOnArgFn(rt Runtime, args []object.Value, env *environment.Environment) object.Value {
	block, ok := args[0].(*object.Block)
	if !ok {
		return object.NewError("TypeError", "do expects a block")
	}
	return rt.CallBlock(block, []object.Value{args[1]}, env)
}
