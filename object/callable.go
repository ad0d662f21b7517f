package object

import (
	"strings"

	"github.com/plutolang/pluto/ast"
)

// Block is a reified lambda body — `{ params... -> body }`. It
// deliberately carries no captured environment (unlike Function): a
// Block is run by whatever builtin invokes it (`do $block`, `map
// $block over $array`, ...), in a fresh scope enclosing the *caller's*
// environment at the point of invocation, not its point of definition.
type Block struct {
	Params []string
	Body   *ast.BlockStatement
}

func (b *Block) Type() Type { return BLOCK_VALUE }
func (b *Block) Inspect() string {
	return "{" + strings.Join(b.Params, ", ") + " -> ...}"
}

// Function is a user-defined, pattern-dispatched function. Pattern
// preserves the def's keyword/parameter shape so the evaluator's
// unification routine can test it against a call site; Env is the
// environment the function closed over at definition time.
type Function struct {
	Pattern []ast.DefPatternItem
	Body    *ast.BlockStatement
	Env     Environment
}

func (f *Function) Type() Type { return FUNCTION_VALUE }
func (f *Function) Inspect() string {
	parts := make([]string, len(f.Pattern))
	for i, item := range f.Pattern {
		if item.Kind == ast.PatternParam {
			parts[i] = "$" + item.Text
		} else {
			parts[i] = item.Text
		}
	}
	return "<function " + strings.Join(parts, " ") + ">"
}

// Environment is the subset of environment.Environment the object
// package needs to reference without importing it back (environment
// imports object for Value, so object cannot import environment).
type Environment interface {
	Get(name string) (Value, bool)
	Declare(name string, value Value)
	Assign(name string, value Value)
}
