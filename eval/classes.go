package eval

import (
	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/environment"
	"github.com/plutolang/pluto/object"
)

// evalClassStatement builds a Class value from its AST, resolves its
// optional parent, and splits out the init method from the ordinary
// method list. Construction calls are matched against class.Init.Pattern
// directly in evalFunctionCall rather than through the ordinary
// pattern-function registry, since a constructor call must allocate and
// return a fresh Instance instead of whatever its body last evaluates
// to.
func (e *Evaluator) evalClassStatement(n *ast.ClassStatement, env *environment.Environment) object.Value {
	class := &object.Class{Name: n.Name}

	if n.Parent != nil {
		parentVal := e.Eval(n.Parent, env)
		if object.IsError(parentVal) {
			return parentVal
		}
		parentClass, ok := parentVal.(*object.Class)
		if !ok {
			return e.newError("class %s extends a non-class value", n.Name)
		}
		class.Parent = parentClass
	}

	for _, stmt := range n.Methods {
		switch m := stmt.(type) {
		case *ast.FunctionDefinition:
			class.Methods = append(class.Methods, &object.Function{Pattern: m.Pattern, Body: m.Body, Env: env})
		case *ast.InitDefinition:
			class.Init = &object.Function{Pattern: m.Pattern, Body: m.Body, Env: env}
		}
	}

	e.Classes[n.Name] = class
	env.Declare(n.Name, class)
	return class
}

// resolveConstructor searches every known class's init pattern for one
// unifying with shape, returning the class and its field bindings.
func (e *Evaluator) resolveConstructor(shape []environment.CallItem) (*object.Class, map[string]object.Value, bool) {
	for _, class := range e.Classes {
		if class.Init == nil {
			continue
		}
		if bindings, ok := environment.Unify(class.Init.Pattern, shape); ok {
			return class, bindings, true
		}
	}
	return nil, nil, false
}

// construct allocates a new Instance of class, binds the init's
// parameters and `self` in a scope enclosing the class's defining
// environment, runs the init body for its field-assignment side
// effects, and returns the instance.
func (e *Evaluator) construct(class *object.Class, bindings map[string]object.Value) object.Value {
	inst := object.NewInstance(class)

	callEnv := environment.Enclose(class.Init.Env.(*environment.Environment))
	for name, val := range bindings {
		callEnv.Declare(name, val)
	}
	callEnv.Declare("self", inst)

	result := e.evalBlock(class.Init.Body, callEnv)
	if object.IsError(result) {
		return result
	}
	return inst
}
