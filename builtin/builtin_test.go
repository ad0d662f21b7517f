package builtin

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

// fakeRuntime is a minimal Runtime for exercising builtins without an
// evaluator: CallBlock just applies a Go func over the block's would-be
// args, since no test here calls an actual Block body.
type fakeRuntime struct {
	out     bytes.Buffer
	in      *bufio.Reader
	blockFn func([]object.Value) object.Value
}

func newFakeRuntime(stdin string) *fakeRuntime {
	return &fakeRuntime{in: bufio.NewReader(strings.NewReader(stdin))}
}

func (r *fakeRuntime) CallBlock(block *object.Block, args []object.Value, _ *environment.Environment) object.Value {
	if r.blockFn != nil {
		return r.blockFn(args)
	}
	return &object.Null{}
}
func (r *fakeRuntime) Stdout() io.Writer     { return &r.out }
func (r *fakeRuntime) Stdin() *bufio.Reader  { return r.in }

func kw(s string) environment.CallItem      { return environment.CallItem{IsKeyword: true, Keyword: s} }
func hole(v object.Value) environment.CallItem { return environment.CallItem{Value: v} }

func num(n float64) *object.Number { return &object.Number{Value: n} }

func resolveAndCall(t *testing.T, rt Runtime, shape []environment.CallItem) object.Value {
	t.Helper()
	b, args, ok := Resolve(shape)
	require.True(t, ok, "no builtin matched shape")
	return b.Fn(rt, args, environment.New())
}

func TestResolve_PrintWritesDisplayStringToStdout(t *testing.T) {
	rt := newFakeRuntime("")
	result := resolveAndCall(t, rt, []environment.CallItem{kw("print"), hole(&object.String{Value: "hi"})})
	assert.Equal(t, &object.Null{}, result)
	assert.Equal(t, "hi\n", rt.out.String())
}

func TestResolve_InputReadsFromStdin(t *testing.T) {
	rt := newFakeRuntime("hello\n")
	result := resolveAndCall(t, rt, []environment.CallItem{kw("input")})
	assert.Equal(t, "hello", result.(*object.String).Value)
}

func TestResolve_FormatFillsPlaceholdersPositionally(t *testing.T) {
	rt := newFakeRuntime("")
	values := &object.Array{Elems: []object.Value{&object.String{Value: "TypeError"}, &object.String{Value: "bad"}}}
	result := resolveAndCall(t, rt, []environment.CallItem{
		kw("format"), hole(&object.String{Value: "{}: {}"}), kw("with"), hole(values),
	})
	assert.Equal(t, "TypeError: bad", result.(*object.String).Value)
}

func TestResolve_PrintWithoutNewlineOmitsTrailingNewline(t *testing.T) {
	rt := newFakeRuntime("")
	result := resolveAndCall(t, rt, []environment.CallItem{
		kw("print"), hole(&object.String{Value: "hi"}), kw("without"), kw("newline"),
	})
	assert.Equal(t, &object.Null{}, result)
	assert.Equal(t, "hi", rt.out.String())
}

func TestResolve_PrintfFillsPlaceholdersAndPrints(t *testing.T) {
	rt := newFakeRuntime("")
	values := &object.Array{Elems: []object.Value{num(2)}}
	result := resolveAndCall(t, rt, []environment.CallItem{
		kw("printf"), hole(&object.String{Value: "count: {}"}), kw("with"), hole(values),
	})
	assert.Equal(t, &object.Null{}, result)
	assert.Equal(t, "count: 2\n", rt.out.String())
}

func TestResolve_DoBlockRunsWithNoArgs(t *testing.T) {
	rt := newFakeRuntime("")
	rt.blockFn = func(args []object.Value) object.Value {
		assert.Empty(t, args)
		return num(42)
	}
	result := resolveAndCall(t, rt, []environment.CallItem{kw("do"), hole(&object.Block{})})
	assert.Equal(t, 42.0, result.(*object.Number).Value)
}

func TestResolve_DoBlockWithArgsSpreadsCollection(t *testing.T) {
	rt := newFakeRuntime("")
	rt.blockFn = func(args []object.Value) object.Value {
		return num(args[0].(*object.Number).Value + args[1].(*object.Number).Value)
	}
	result := resolveAndCall(t, rt, []environment.CallItem{
		kw("do"), hole(&object.Block{}), kw("with"), hole(&object.Array{Elems: []object.Value{num(2), num(3)}}),
	})
	assert.Equal(t, 5.0, result.(*object.Number).Value)
}

func TestResolve_DoBlockOnArgPassesSingleValue(t *testing.T) {
	rt := newFakeRuntime("")
	rt.blockFn = func(args []object.Value) object.Value {
		require.Len(t, args, 1)
		return num(args[0].(*object.Number).Value * 10)
	}
	result := resolveAndCall(t, rt, []environment.CallItem{kw("do"), hole(&object.Block{}), kw("on"), hole(num(4))})
	assert.Equal(t, 40.0, result.(*object.Number).Value)
}

func TestResolve_OrdinalRootOfNumber(t *testing.T) {
	rt := newFakeRuntime("")
	r := resolveAndCall(t, rt, []environment.CallItem{
		hole(num(3)), kw("rd"), kw("root"), kw("of"), hole(num(8)),
	})
	assert.InDelta(t, 2.0, r.(*object.Number).Value, 1e-9)
}

func TestResolve_RoundSqrtCbrtAbsPow(t *testing.T) {
	rt := newFakeRuntime("")

	r := resolveAndCall(t, rt, []environment.CallItem{kw("round"), hole(num(2.6))})
	assert.Equal(t, 3.0, r.(*object.Number).Value)

	r = resolveAndCall(t, rt, []environment.CallItem{kw("square"), kw("root"), kw("of"), hole(num(9))})
	assert.Equal(t, 3.0, r.(*object.Number).Value)

	r = resolveAndCall(t, rt, []environment.CallItem{kw("cube"), kw("root"), kw("of"), hole(num(27))})
	assert.Equal(t, 3.0, r.(*object.Number).Value)

	r = resolveAndCall(t, rt, []environment.CallItem{kw("absolute"), kw("value"), kw("of"), hole(num(-5))})
	assert.Equal(t, 5.0, r.(*object.Number).Value)

	r = resolveAndCall(t, rt, []environment.CallItem{
		kw("power"), kw("of"), hole(num(2)), kw("raised"), kw("to"), hole(num(10)),
	})
	assert.Equal(t, 1024.0, r.(*object.Number).Value)
}

func TestResolve_SquareRootOfNegativeIsMathError(t *testing.T) {
	rt := newFakeRuntime("")
	r := resolveAndCall(t, rt, []environment.CallItem{kw("square"), kw("root"), kw("of"), hole(num(-1))})
	assert.True(t, object.IsError(r))
	assert.Equal(t, "MathError", object.ErrorTag(r))
}

func TestResolve_MapOverCallsBlockForEachElement(t *testing.T) {
	rt := newFakeRuntime("")
	rt.blockFn = func(args []object.Value) object.Value {
		return num(args[0].(*object.Number).Value * 2)
	}
	arr := &object.Array{Elems: []object.Value{num(1), num(2), num(3)}}
	result := resolveAndCall(t, rt, []environment.CallItem{
		kw("map"), hole(&object.Block{}), kw("over"), hole(arr),
	})
	mapped := result.(*object.Array)
	require.Len(t, mapped.Elems, 3)
	assert.Equal(t, 6.0, mapped.Elems[2].(*object.Number).Value)
}

func TestResolve_MapOverTuplePreservesTupleKind(t *testing.T) {
	rt := newFakeRuntime("")
	rt.blockFn = func(args []object.Value) object.Value {
		return num(args[0].(*object.Number).Value * 2)
	}
	tup := &object.Tuple{Elems: []object.Value{num(1), num(2)}}
	result := resolveAndCall(t, rt, []environment.CallItem{
		kw("map"), hole(&object.Block{}), kw("over"), hole(tup),
	})
	mapped, ok := result.(*object.Tuple)
	require.True(t, ok, "map over a tuple should return a tuple")
	assert.Equal(t, 4.0, mapped.Elems[1].(*object.Number).Value)
}

func TestResolve_FilterKeepsOnlyTruthyBlockResults(t *testing.T) {
	rt := newFakeRuntime("")
	rt.blockFn = func(args []object.Value) object.Value {
		n := args[0].(*object.Number).Value
		return &object.Boolean{Value: n > 1}
	}
	arr := &object.Array{Elems: []object.Value{num(1), num(2), num(3)}}
	result := resolveAndCall(t, rt, []environment.CallItem{
		kw("filter"), hole(arr), kw("by"), hole(&object.Block{}),
	})
	assert.Len(t, result.(*object.Array).Elems, 2)
}

func TestResolve_LeftFoldAccumulatesInOrder(t *testing.T) {
	rt := newFakeRuntime("")
	rt.blockFn = func(args []object.Value) object.Value {
		acc := args[0].(*object.Number).Value
		item := args[1].(*object.Number).Value
		return num(acc - item)
	}
	arr := &object.Array{Elems: []object.Value{num(1), num(2), num(3)}}
	result := resolveAndCall(t, rt, []environment.CallItem{
		kw("left"), kw("fold"), hole(arr), kw("with"), hole(&object.Block{}),
	})
	assert.Equal(t, -4.0, result.(*object.Number).Value) // (1-2)-3, seeded from arr[0]
}

func TestResolve_LeftFoldFromSeedsExplicitly(t *testing.T) {
	rt := newFakeRuntime("")
	rt.blockFn = func(args []object.Value) object.Value {
		acc := args[0].(*object.Number).Value
		item := args[1].(*object.Number).Value
		return num(acc - item)
	}
	arr := &object.Array{Elems: []object.Value{num(1), num(2), num(3)}}
	result := resolveAndCall(t, rt, []environment.CallItem{
		kw("left"), kw("fold"), hole(arr), kw("with"), hole(&object.Block{}), kw("from"), hole(num(10)),
	})
	assert.Equal(t, 4.0, result.(*object.Number).Value) // ((10-1)-2)-3
}

func TestResolve_RightFoldFromFoldsBackward(t *testing.T) {
	rt := newFakeRuntime("")
	rt.blockFn = func(args []object.Value) object.Value {
		acc := args[0].(*object.Number).Value
		item := args[1].(*object.Number).Value
		return num(acc - item)
	}
	arr := &object.Array{Elems: []object.Value{num(1), num(2), num(3)}}
	result := resolveAndCall(t, rt, []environment.CallItem{
		kw("right"), kw("fold"), hole(arr), kw("with"), hole(&object.Block{}), kw("from"), hole(num(10)),
	})
	assert.Equal(t, 4.0, result.(*object.Number).Value) // ((10-3)-2)-1
}

func TestResolve_IndexOfOutOfRangeIsIndexError(t *testing.T) {
	rt := newFakeRuntime("")
	arr := &object.Array{Elems: []object.Value{num(1)}}
	result := resolveAndCall(t, rt, []environment.CallItem{
		kw("index"), hole(num(5)), kw("of"), hole(arr),
	})
	assert.True(t, object.IsError(result))
	assert.Equal(t, "IndexError", object.ErrorTag(result))
}

func TestResolve_KeysValuesPairsOfMap(t *testing.T) {
	rt := newFakeRuntime("")
	m := object.NewMap()
	m.Set(&object.String{Value: "a"}, num(1))

	keys := resolveAndCall(t, rt, []environment.CallItem{kw("keys"), kw("of"), hole(m)})
	assert.Len(t, keys.(*object.Array).Elems, 1)

	values := resolveAndCall(t, rt, []environment.CallItem{kw("values"), kw("of"), hole(m)})
	assert.Equal(t, 1.0, values.(*object.Array).Elems[0].(*object.Number).Value)

	pairs := resolveAndCall(t, rt, []environment.CallItem{kw("pairs"), kw("of"), hole(m)})
	assert.Len(t, pairs.(*object.Array).Elems, 1)
}

func TestResolve_SizeOfAndRangeTo(t *testing.T) {
	rt := newFakeRuntime("")
	arr := &object.Array{Elems: []object.Value{num(1), num(2)}}
	size := resolveAndCall(t, rt, []environment.CallItem{kw("size"), kw("of"), hole(arr)})
	assert.Equal(t, 2.0, size.(*object.Number).Value)

	r := resolveAndCall(t, rt, []environment.CallItem{hole(num(1)), kw("to"), hole(num(3))})
	require.Len(t, r.(*object.Array).Elems, 2)
	assert.Equal(t, 1.0, r.(*object.Array).Elems[0].(*object.Number).Value)
	assert.Equal(t, 2.0, r.(*object.Array).Elems[1].(*object.Number).Value)
}

func TestResolve_RangeToDescendingIsExclusiveOfEnd(t *testing.T) {
	rt := newFakeRuntime("")
	r := resolveAndCall(t, rt, []environment.CallItem{hole(num(3)), kw("to"), hole(num(1))})
	require.Len(t, r.(*object.Array).Elems, 2)
	assert.Equal(t, 3.0, r.(*object.Array).Elems[0].(*object.Number).Value)
	assert.Equal(t, 2.0, r.(*object.Array).Elems[1].(*object.Number).Value)
}

func TestResolve_RangeToEqualIsEmpty(t *testing.T) {
	rt := newFakeRuntime("")
	r := resolveAndCall(t, rt, []environment.CallItem{hole(num(2)), kw("to"), hole(num(2))})
	assert.Empty(t, r.(*object.Array).Elems)
}

func TestResolve_UnionIntersectionDifferenceDedupAndCompareStructurally(t *testing.T) {
	rt := newFakeRuntime("")
	a := &object.Array{Elems: []object.Value{num(1), num(2), num(2)}}
	b := &object.Array{Elems: []object.Value{num(2), num(3)}}

	union := resolveAndCall(t, rt, []environment.CallItem{kw("union"), kw("of"), hole(a), kw("and"), hole(b)})
	assert.Len(t, union.(*object.Array).Elems, 3)

	inter := resolveAndCall(t, rt, []environment.CallItem{kw("intersection"), kw("of"), hole(a), kw("and"), hole(b)})
	assert.Len(t, inter.(*object.Array).Elems, 1)

	diff := resolveAndCall(t, rt, []environment.CallItem{kw("difference"), kw("of"), hole(a), kw("and"), hole(b)})
	assert.Len(t, diff.(*object.Array).Elems, 1)
	assert.Equal(t, 1.0, diff.(*object.Array).Elems[0].(*object.Number).Value)
}

func TestResolve_NoMatchingSignatureFails(t *testing.T) {
	_, _, ok := Resolve([]environment.CallItem{kw("nonexistent")})
	assert.False(t, ok)
}
