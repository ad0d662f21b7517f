package object

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Array is a mutable, order-preserving, heterogeneous sequence.
type Array struct {
	Elems []Value
}

func (a *Array) Type() Type { return ARRAY_VALUE }
func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elems))
	for i, e := range a.Elems {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (a *Array) Len() int            { return len(a.Elems) }
func (a *Array) Elements() []Value   { return a.Elems }
func (a *Array) Equal(other Value) bool {
	o, ok := other.(*Array)
	if !ok || len(o.Elems) != len(a.Elems) {
		return false
	}
	for i := range a.Elems {
		if !structuralEqual(a.Elems[i], o.Elems[i]) {
			return false
		}
	}
	return true
}

// Tuple is an immutable, order-preserving, heterogeneous sequence. It is
// a distinct Go type from Array so that pattern-dispatch and equality
// never conflate `(1, 2)` with `[1, 2]`.
type Tuple struct {
	Elems []Value
}

func (t *Tuple) Type() Type { return TUPLE_VALUE }
func (t *Tuple) Inspect() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.Inspect()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (t *Tuple) Len() int          { return len(t.Elems) }
func (t *Tuple) Elements() []Value { return t.Elems }
func (t *Tuple) Equal(other Value) bool {
	o, ok := other.(*Tuple)
	if !ok || len(o.Elems) != len(t.Elems) {
		return false
	}
	for i := range t.Elems {
		if !structuralEqual(t.Elems[i], o.Elems[i]) {
			return false
		}
	}
	return true
}

// mapEntry bundles the real key Value alongside its payload so that Map
// can recover the original key (not just its hash string) for iteration
// builtins like `keys of`/`pairs of`.
type mapEntry struct {
	Key   Value
	Value Value
}

// Map is Pluto's key-value collection, backed by an insertion-ordered
// map so that iteration order is deterministic and matches declaration
// order — go-ordered-map gives us that without hand-rolling a parallel
// keys slice.
type Map struct {
	entries *orderedmap.OrderedMap[string, mapEntry]
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{entries: orderedmap.New[string, mapEntry]()}
}

func (m *Map) Type() Type { return MAP_VALUE }
func (m *Map) Inspect() string {
	if m.entries.Len() == 0 {
		return "[:]"
	}
	parts := make([]string, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		parts = append(parts, pair.Value.Key.Inspect()+": "+pair.Value.Value.Inspect())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (m *Map) Len() int { return m.entries.Len() }
func (m *Map) Elements() []Value {
	out := make([]Value, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, &Tuple{Elems: []Value{pair.Value.Key, pair.Value.Value}})
	}
	return out
}

// Set stores value under key, preserving key's first-insertion position.
func (m *Map) Set(key, value Value) {
	m.entries.Set(HashKey(key), mapEntry{Key: key, Value: value})
}

// Get looks up key, returning (value, true) if present.
func (m *Map) Get(key Value) (Value, bool) {
	entry, ok := m.entries.Get(HashKey(key))
	if !ok {
		return nil, false
	}
	return entry.Value, true
}

// Delete removes key, reporting whether it was present.
func (m *Map) Delete(key Value) bool {
	return m.entries.Delete(HashKey(key))
}

// Keys returns the map's keys in insertion order.
func (m *Map) Keys() []Value {
	out := make([]Value, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.Key)
	}
	return out
}

// Values returns the map's values in insertion order.
func (m *Map) Values() []Value {
	out := make([]Value, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.Value)
	}
	return out
}

func (m *Map) Equal(other Value) bool {
	o, ok := other.(*Map)
	if !ok || o.entries.Len() != m.entries.Len() {
		return false
	}
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		ov, ok := o.entries.Get(pair.Key)
		if !ok || !structuralEqual(pair.Value.Value, ov.Value) {
			return false
		}
	}
	return true
}

func structuralEqual(a, b Value) bool {
	if ea, ok := a.(Equaler); ok {
		return ea.Equal(b)
	}
	return a == b
}

// SameKind rebuilds a collection of model's concrete kind from elems,
// the way the set-algebra and collection-operator infix rules hand back
// a result of the same shape they were given. Tuple rebuilds exactly;
// String rebuilds only if every element is still a Char; Map rebuilds
// from (key, value) Tuple elements, last write wins on a repeated key.
// Anything else — Array itself, or a shape elems no longer fits —
// becomes an Array.
func SameKind(model Value, elems []Value) Value {
	switch model.(type) {
	case *Tuple:
		return &Tuple{Elems: elems}
	case *String:
		var b strings.Builder
		for _, el := range elems {
			c, ok := el.(*Char)
			if !ok {
				return &Array{Elems: elems}
			}
			b.WriteRune(c.Value)
		}
		return &String{Value: b.String()}
	case *Map:
		m := NewMap()
		for _, el := range elems {
			pair, ok := el.(*Tuple)
			if !ok || len(pair.Elems) != 2 {
				return &Array{Elems: elems}
			}
			m.Set(pair.Elems[0], pair.Elems[1])
		}
		return m
	default:
		return &Array{Elems: elems}
	}
}
