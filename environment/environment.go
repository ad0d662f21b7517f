/*
File    : pluto/environment/environment.go

Package environment implements Pluto's lexical scope chain. Its shape —
a Variables map plus a Parent pointer, with a Copy() operation —
is grounded on the teacher's scope.Scope; the Assign semantics are not:
spec.md requires assign to write into the nearest enclosing scope that
already holds the name *and* always additionally write into the current
scope, which the teacher's Scope.Assign does not do.
*/
package environment

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/object"
)

// patternFunc pairs a def-pattern with the Function value it produced,
// so ResolvePattern can unify a call site's shape against every
// pattern-function visible from this scope outward.
type patternFunc struct {
	pattern []ast.DefPatternItem
	fn      *object.Function
}

// Environment is one link in the lexical scope chain.
type Environment struct {
	vars     map[string]object.Value
	parent   *Environment
	patterns []patternFunc
}

// New creates a root environment with no parent.
func New() *Environment {
	return &Environment{vars: make(map[string]object.Value)}
}

// Enclose creates a child scope nested inside parent.
func Enclose(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]object.Value), parent: parent}
}

// Get looks up name in this scope and, failing that, every enclosing
// scope outward to the root.
func (e *Environment) Get(name string) (object.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Declare binds name to value in the current scope only, shadowing any
// outer binding of the same name. This backs Pluto's `:=` operator.
func (e *Environment) Declare(name string, value object.Value) {
	e.vars[name] = value
}

// Assign implements spec.md's deliberately non-standard write rule:
// if name is already bound in an enclosing scope, that binding is
// updated in place — but the current scope's own binding is *also*
// always written, creating one if absent. This dual write means a
// variable reassigned inside a nested block remains visible by the same
// name in that block after the outer scope's copy changes too; it is
// unusual compared to ordinary lexical assignment and is intentional,
// not a bug — see SPEC_FULL.md/DESIGN.md for the rationale.
func (e *Environment) Assign(name string, value object.Value) {
	if outer := e.findOwner(name); outer != nil && outer != e {
		outer.vars[name] = value
	}
	e.vars[name] = value
}

// findOwner returns the nearest scope (starting at e) whose own vars
// map already holds name, or nil if no scope in the chain does.
func (e *Environment) findOwner(name string) *Environment {
	if _, ok := e.vars[name]; ok {
		return e
	}
	if e.parent != nil {
		return e.parent.findOwner(name)
	}
	return nil
}

// Copy produces an independent scope with the same parent and a shallow
// copy of this scope's bindings and registered pattern-functions. The
// evaluator does not use it: a Function value holds its defining
// environment by reference.
func (e *Environment) Copy() *Environment {
	cp := &Environment{vars: make(map[string]object.Value, len(e.vars)), parent: e.parent}
	for k, v := range e.vars {
		cp.vars[k] = v
	}
	cp.patterns = append(cp.patterns, e.patterns...)
	return cp
}

// RegisterPattern makes fn resolvable by pattern unification from this
// scope and every scope nested inside it.
func (e *Environment) RegisterPattern(pattern []ast.DefPatternItem, fn *object.Function) {
	e.patterns = append(e.patterns, patternFunc{pattern: pattern, fn: fn})
}

// ResolvePattern searches this scope, then outward, for a registered
// pattern-function whose shape unifies with shape (see Unify). Scopes
// nearer the call site shadow outer ones, and within one scope later
// registrations shadow earlier ones with the same shape.
func (e *Environment) ResolvePattern(shape []CallItem) (*object.Function, map[string]object.Value, bool) {
	for i := len(e.patterns) - 1; i >= 0; i-- {
		if bindings, ok := Unify(e.patterns[i].pattern, shape); ok {
			return e.patterns[i].fn, bindings, true
		}
	}
	if e.parent != nil {
		return e.parent.ResolvePattern(shape)
	}
	return nil, nil, false
}
