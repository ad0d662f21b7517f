package runtimeio_test

import (
	"bufio"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plutolang/pluto/builtin"
	_ "github.com/plutolang/pluto/builtin/runtimeio"
	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

type noopRuntime struct{ in *bufio.Reader }

func (noopRuntime) CallBlock(*object.Block, []object.Value, *environment.Environment) object.Value {
	return &object.Null{}
}
func (noopRuntime) Stdout() io.Writer                                    { return io.Discard }
func (r noopRuntime) Stdin() *bufio.Reader                               { return r.in }

func kw(s string) environment.CallItem          { return environment.CallItem{IsKeyword: true, Keyword: s} }
func hole(v object.Value) environment.CallItem { return environment.CallItem{Value: v} }

func TestWriteReadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	rt := noopRuntime{}

	b, args, ok := builtin.Resolve([]environment.CallItem{
		kw("write"), hole(&object.String{Value: "hello"}), kw("to"), kw("file"), hole(&object.String{Value: path}),
	})
	require.True(t, ok)
	result := b.Fn(rt, args, environment.New())
	assert.Equal(t, &object.Null{}, result)

	b, args, ok = builtin.Resolve([]environment.CallItem{kw("read"), kw("file"), hole(&object.String{Value: path})})
	require.True(t, ok)
	result = b.Fn(rt, args, environment.New())
	assert.Equal(t, "hello", result.(*object.String).Value)
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	rt := noopRuntime{}

	b, args, ok := builtin.Resolve([]environment.CallItem{kw("file"), hole(&object.String{Value: path}), kw("exists")})
	require.True(t, ok)
	result := b.Fn(rt, args, environment.New())
	assert.Equal(t, false, result.(*object.Boolean).Value)
}

func TestReadFileMissingIsIOError(t *testing.T) {
	rt := noopRuntime{}
	b, args, ok := builtin.Resolve([]environment.CallItem{kw("read"), kw("file"), hole(&object.String{Value: "/no/such/path"})})
	require.True(t, ok)
	result := b.Fn(rt, args, environment.New())
	assert.True(t, object.IsError(result))
	assert.Equal(t, "IOError", object.ErrorTag(result))
}
