/*
File    : pluto/builtin/builtin.go

Package builtin holds the process-wide registry of pattern-dispatched
host functions. Each concern (I/O and formatting, blocks, collections,
math, sets; files from package runtimeio) registers its own patterns
from its own init(), appended to the
shared Builtins slice — grounded on the teacher's std package, which
registers a []*Builtin per file via init() into a shared Builtins slice,
generalized here from name-keyed dispatch to pattern-unification
dispatch.
*/
package builtin

import (
	"bufio"
	"io"

	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

// ItemKind mirrors ast.PatternItemKind for the subset a builtin
// signature needs: a literal keyword, or a named hole the evaluator
// fills with an already-evaluated argument.
type ItemKind int

const (
	Keyword ItemKind = iota
	Hole
)

// SigItem is one element of a builtin's call-pattern signature.
type SigItem struct {
	Kind ItemKind
	Text string // keyword text, or the hole's binding name
}

// Runtime is the slice of evaluator capability a host function needs:
// running a Block value against argument values in a given scope, and
// the process's I/O streams. Kept as an interface (rather than
// importing eval directly) to avoid an import cycle between builtin and
// eval.
type Runtime interface {
	CallBlock(block *object.Block, args []object.Value, env *environment.Environment) object.Value
	Stdout() io.Writer
	Stdin() *bufio.Reader
}

// Fn is a registered host function's implementation. args is positional,
// one entry per Hole in the signature, in signature order. env is the
// caller's environment, threaded through so a builtin that runs a Block
// (map/filter/fold/do) can enclose the call site rather than the
// process-wide root scope.
type Fn func(rt Runtime, args []object.Value, env *environment.Environment) object.Value

// Builtin is one registered pattern and its implementation.
type Builtin struct {
	Signature []SigItem
	Name      string // human-readable, for Inspect/errors only
	Fn        Fn
}

// Builtins is the global, insertion-ordered registry every concern file
// appends to from its own init().
var Builtins []*Builtin

// Register appends a builtin to the global registry.
func Register(name string, sig []SigItem, fn Fn) {
	Builtins = append(Builtins, &Builtin{Name: name, Signature: sig, Fn: fn})
}

// Kw builds a Keyword SigItem.
func Kw(text string) SigItem { return SigItem{Kind: Keyword, Text: text} }

// Hl builds a Hole SigItem.
func Hl(name string) SigItem { return SigItem{Kind: Hole, Text: name} }

// Resolve searches Builtins for a signature that unifies with shape,
// returning the matched builtin and the evaluated arguments pulled out
// in signature order.
func Resolve(shape []environment.CallItem) (*Builtin, []object.Value, bool) {
	for _, b := range Builtins {
		if args, ok := unify(b.Signature, shape); ok {
			return b, args, true
		}
	}
	return nil, nil, false
}

func unify(sig []SigItem, shape []environment.CallItem) ([]object.Value, bool) {
	if len(sig) != len(shape) {
		return nil, false
	}
	args := make([]object.Value, 0, len(sig))
	for i, s := range sig {
		c := shape[i]
		switch s.Kind {
		case Keyword:
			if !c.IsKeyword || c.Keyword != s.Text {
				return nil, false
			}
		case Hole:
			if c.IsKeyword {
				return nil, false
			}
			args = append(args, c.Value)
		}
	}
	return args, true
}
