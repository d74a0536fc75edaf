/*
File   : nano/value/value.go
Package: value

Package value implements NANO's runtime value model (§3, §4.D): a small
tagged sum of None, Bool, Number, String, Entity, and Callable, all
satisfying the Value interface. Entity and Callable are reference-shared;
every other kind is copied by value, mirroring the teacher's
objects.GoMixObject split between value types (Integer, Boolean, String)
and reference types (Array, Map via their internal slices/maps).
*/
package value

import "fmt"

// Kind identifies which member of the Value sum type a Value holds.
type Kind string

const (
	KindNone     Kind = "None"
	KindBool     Kind = "Bool"
	KindNumber   Kind = "Number"
	KindString   Kind = "String"
	KindEntity   Kind = "Entity"
	KindCallable Kind = "Callable"
)

// Value is satisfied by every NANO runtime value. String returns the
// plain stringification used by `print` (§4.D); Inspect returns the
// richer form `inspect` builds on.
type Value interface {
	Kind() Kind
	String() string
	Truthy() bool
}

// None is the absence value; Equal(None{}, x) is true only when x is None.
type None struct{}

func (None) Kind() Kind       { return KindNone }
func (None) String() string  { return "None" }
func (None) Truthy() bool    { return false }

// Bool is NANO's two-valued boolean.
type Bool struct{ Value bool }

func (b Bool) Kind() Kind      { return KindBool }
func (b Bool) Truthy() bool    { return b.Value }
func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// String is UTF-8 text.
type String struct{ Value string }

func (s String) Kind() Kind      { return KindString }
func (s String) Truthy() bool    { return true } // every value but None/false is truthy, even ""
func (s String) String() string { return s.Value }

// Equal implements §4.D / §8 value equality:
//   - None equals only None
//   - Bool, String, Number compare by value
//   - Entity and Callable compare by reference identity
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case None:
		return true
	case Bool:
		return av.Value == b.(Bool).Value
	case String:
		return av.Value == b.(String).Value
	case *Number:
		return av.Equal(b.(*Number))
	case *Entity:
		return av == b.(*Entity)
	default:
		// Callables (Function, Builtin) compare by reference identity.
		if ac, ok := a.(Callable); ok {
			if bc, ok := b.(Callable); ok {
				return sameCallable(ac, bc)
			}
		}
		return false
	}
}

func sameCallable(a, b Callable) bool {
	type identer interface{ identity() any }
	ai, aok := a.(identer)
	bi, bok := b.(identer)
	if aok && bok {
		return ai.identity() == bi.identity()
	}
	return fmt.Sprintf("%p", a) == fmt.Sprintf("%p", b)
}
