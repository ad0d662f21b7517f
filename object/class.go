package object

import "fmt"

// Class is a user-defined class. Methods are stored as an ordered list
// of pattern-functions (not a name-keyed map) because method dispatch
// uses the same structural pattern-unification as ordinary function
// calls, not name lookup. Init is the constructor pattern-function, kept
// separate because instantiation runs it explicitly rather than through
// get_methods resolution.
type Class struct {
	Name    string
	Parent  *Class // nil if there is no `extends` clause
	Methods []*Function
	Init    *Function // nil if the class declares no init
}

func (c *Class) Type() Type      { return CLASS_VALUE }
func (c *Class) Inspect() string { return fmt.Sprintf("<class %s>", c.Name) }

// GetMethods returns this class's own methods followed by the parent
// chain's, in that order, so that resolution by first-match-wins always
// prefers the most-derived definition.
func (c *Class) GetMethods() []*Function {
	methods := make([]*Function, 0, len(c.Methods))
	methods = append(methods, c.Methods...)
	if c.Parent != nil {
		methods = append(methods, c.Parent.GetMethods()...)
	}
	return methods
}

// Instance is a live object of a Class, holding its own field map.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (i *Instance) Type() Type      { return INSTANCE_VALUE }
func (i *Instance) Inspect() string { return fmt.Sprintf("<instance %s>", i.Class.Name) }
