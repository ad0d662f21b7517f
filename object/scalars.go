package object

import (
	"fmt"
	"strconv"
)

// Number is Pluto's single numeric type; there is no separate int/float
// split at the value level (spec.md's data model keeps the lexer's
// NUMBER token and the runtime Number both float64-backed).
type Number struct {
	Value float64
}

func (n *Number) Type() Type      { return NUMBER_VALUE }
func (n *Number) Inspect() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *Number) Equal(other Value) bool {
	o, ok := other.(*Number)
	return ok && o.Value == n.Value
}

// Boolean is `true`/`yes` or `false`/`no`.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() Type      { return BOOLEAN_VALUE }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }
func (b *Boolean) Equal(other Value) bool {
	o, ok := other.(*Boolean)
	return ok && o.Value == b.Value
}

// Char is a single Unicode code point.
type Char struct {
	Value rune
}

func (c *Char) Type() Type      { return CHAR_VALUE }
func (c *Char) Inspect() string { return string(c.Value) }
func (c *Char) Equal(other Value) bool {
	o, ok := other.(*Char)
	return ok && o.Value == c.Value
}

// Null is the sole value of NullLiteral.
type Null struct{}

func (n *Null) Type() Type      { return NULL_VALUE }
func (n *Null) Inspect() string { return "null" }
func (n *Null) Equal(other Value) bool {
	_, ok := other.(*Null)
	return ok
}

// String is a Pluto string, itself an ordered Collection of Chars (see
// spec.md's Collection capability note).
type String struct {
	Value string
}

func (s *String) Type() Type      { return STRING_VALUE }
func (s *String) Inspect() string { return fmt.Sprintf("%q", s.Value) }
func (s *String) Equal(other Value) bool {
	o, ok := other.(*String)
	return ok && o.Value == s.Value
}
func (s *String) Len() int { return len([]rune(s.Value)) }
func (s *String) Elements() []Value {
	runes := []rune(s.Value)
	elems := make([]Value, len(runes))
	for i, r := range runes {
		elems[i] = &Char{Value: r}
	}
	return elems
}
