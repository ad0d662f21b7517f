/*
File    : pluto/builtin/runtimeio/runtimeio.go

Package runtimeio registers the ambient, OS-facing builtins (file
access) that a scripting language needs even though spec.md's
own grammar never mentions files — grounded on the teacher's
std/file_io.go, generalized from name-keyed calls to call-patterns.
This is kept as a separate package (rather than folded into builtin)
because it is the one concern with a real side-effect surface; importing
it is what opts a host binary into filesystem access, mirroring the
teacher's per-concern std/*.go split.
*/
package runtimeio

import (
	"os"

	"github.com/plutolang/pluto/builtin"
	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

func init() {
	builtin.Register("read_file", []builtin.SigItem{builtin.Kw("read"), builtin.Kw("file"), builtin.Hl("path")}, readFileFn)
	builtin.Register("write_file", []builtin.SigItem{builtin.Kw("write"), builtin.Hl("contents"), builtin.Kw("to"), builtin.Kw("file"), builtin.Hl("path")}, writeFileFn)
	builtin.Register("file_exists", []builtin.SigItem{builtin.Kw("file"), builtin.Hl("path"), builtin.Kw("exists")}, fileExistsFn)
}

func readFileFn(rt builtin.Runtime, args []object.Value, _ *environment.Environment) object.Value {
	path, ok := args[0].(*object.String)
	if !ok {
		return object.NewError("TypeError", "read file expects a string path")
	}
	content, err := os.ReadFile(path.Value)
	if err != nil {
		return object.NewError("IOError", err.Error())
	}
	return &object.String{Value: string(content)}
}

func writeFileFn(rt builtin.Runtime, args []object.Value, _ *environment.Environment) object.Value {
	contents, ok := args[0].(*object.String)
	if !ok {
		return object.NewError("TypeError", "write ... to file expects a string")
	}
	path, ok := args[1].(*object.String)
	if !ok {
		return object.NewError("TypeError", "write ... to file expects a string path")
	}
	if err := os.WriteFile(path.Value, []byte(contents.Value), 0o644); err != nil {
		return object.NewError("IOError", err.Error())
	}
	return &object.Null{}
}

func fileExistsFn(rt builtin.Runtime, args []object.Value, _ *environment.Environment) object.Value {
	path, ok := args[0].(*object.String)
	if !ok {
		return object.NewError("TypeError", "file ... exists expects a string path")
	}
	_, err := os.Stat(path.Value)
	return &object.Boolean{Value: err == nil}
}
