/*
File   : nano/value/entity.go
Package: value

Entity is the unified prototype-chained container from §3/§4.D/§9 that
backs arrays, dictionaries, classes, instances, and (via embedding)
functions. It plays the role the teacher splits across objects.Array,
objects.Map, and objects.Set — here a single keyed map with an optional
parent link serves all of them.
*/
package value

import (
	"fmt"
	"math/big"
	"strings"
)

// entryKey is the Go-comparable representation of a Value used as an
// Entity map key. Numbers key by their canonical rational string so that
// numerically equal keys (e.g. "2" and "2.0") collide, matching §3's
// "numeric keys compared by numerical value".
type entryKey struct {
	kind Kind
	text string
	ptr  any
}

func keyOf(v Value) entryKey {
	switch vv := v.(type) {
	case None:
		return entryKey{kind: KindNone}
	case Bool:
		return entryKey{kind: KindBool, text: vv.String()}
	case String:
		return entryKey{kind: KindString, text: vv.Value}
	case *Number:
		return entryKey{kind: KindNumber, text: vv.Value.RatString()}
	case *Entity:
		return entryKey{kind: KindEntity, ptr: vv}
	default:
		return entryKey{kind: KindCallable, ptr: fmt.Sprintf("%p", v)}
	}
}

// Entity owns a local entry map plus an optional metaentity (prototype)
// consulted when a key is missing locally (§3).
type Entity struct {
	entries    map[entryKey]Value
	keyValues  map[entryKey]Value // original key Value, for iteration/inspection
	order      []entryKey         // insertion order, for stable String/OrderedKeys output
	Metaentity *Entity
}

func NewEntity() *Entity {
	return &Entity{
		entries:   make(map[entryKey]Value),
		keyValues: make(map[entryKey]Value),
	}
}

func (e *Entity) Kind() Kind     { return KindEntity }
func (e *Entity) Truthy() bool   { return true } // even an empty entity is truthy

// Get implements §3's entity lookup: local entry, else delegate to the
// metaentity chain, else None.
func (e *Entity) Get(key Value) Value {
	k := keyOf(key)
	if v, ok := e.entries[k]; ok {
		return v
	}
	if e.Metaentity != nil {
		return e.Metaentity.Get(key)
	}
	return None{}
}

// GetLocal looks up key only in this entity's own entries, never the
// prototype chain. Used where only an entity's own entries matter, such
// as the array-convention length and the `inspect` entry dump.
func (e *Entity) GetLocal(key Value) (Value, bool) {
	v, ok := e.entries[keyOf(key)]
	return v, ok
}

// GetChain looks up key in this entity's own entries, then recurses into
// the metaentity chain (§3's entity lookup), reporting whether the key
// was found anywhere along the chain. Unlike Get, which returns None{}
// both for "found and bound to None" and "not found anywhere", GetChain
// lets a caller (e.g. a class-body environment falling back to its outer
// lexical scope) tell the two apart.
func (e *Entity) GetChain(key Value) (Value, bool) {
	if v, ok := e.GetLocal(key); ok {
		return v, true
	}
	if e.Metaentity != nil {
		return e.Metaentity.GetChain(key)
	}
	return nil, false
}

// Set always writes to the local entries (§3: "prototype is never
// mutated by writes through a child").
func (e *Entity) Set(key, val Value) {
	k := keyOf(key)
	if _, exists := e.entries[k]; !exists {
		e.order = append(e.order, k)
	}
	e.entries[k] = val
	e.keyValues[k] = key
}

// LocalSize returns the number of local entries (§3: `size` does not
// traverse the prototype chain).
func (e *Entity) LocalSize() int {
	return len(e.entries)
}

// IndexedLen returns the array-convention length: the count of
// consecutive integer keys starting at 0 (§3's array convention).
func (e *Entity) IndexedLen() int {
	n := 0
	for {
		if _, ok := e.GetLocal(&Number{Value: new(big.Rat).SetInt64(int64(n))}); ok {
			n++
			continue
		}
		break
	}
	return n
}

// NewArray builds an indexed entity from elements, keys 0..n-1, in
// left-to-right order (§4.F Array expression semantics).
func NewArray(elements ...Value) *Entity {
	a := NewEntity()
	for i, el := range elements {
		a.Set(&Number{Value: new(big.Rat).SetInt64(int64(i))}, el)
	}
	return a
}

// Elements returns the array-convention contents of e, index 0..size-1.
func (e *Entity) Elements() []Value {
	n := e.IndexedLen()
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		out[i] = e.Get(&Number{Value: new(big.Rat).SetInt64(int64(i))})
	}
	return out
}

// Concat implements §4.F's `+` over entities: a new entity copying e's
// indexed entries [0,size) followed by other's indexed entries (or the
// single value itself if other is not an entity). a+b never mutates a or
// b (§8 array concatenation purity).
func (e *Entity) Concat(other Value) *Entity {
	result := NewArray(e.Elements()...)
	n := result.IndexedLen()
	if oe, ok := other.(*Entity); ok {
		for _, el := range oe.Elements() {
			result.Set(&Number{Value: new(big.Rat).SetInt64(int64(n))}, el)
			n++
		}
	} else {
		result.Set(&Number{Value: new(big.Rat).SetInt64(int64(n))}, other)
	}
	return result
}

// String renders an implementation-defined representation exposing the
// entries (§4.D), used by `print`.
func (e *Entity) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range e.order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.keyValues[k].String())
		b.WriteString(": ")
		b.WriteString(e.entries[k].String())
	}
	b.WriteString("}")
	return b.String()
}

// OrderedKeys returns the entity's local keys in insertion order. Entity
// entries are not required to preserve order semantically (§3), but a
// stable iteration order keeps `inspect` output reproducible (§9).
func (e *Entity) OrderedKeys() []Value {
	out := make([]Value, len(e.order))
	for i, k := range e.order {
		out[i] = e.keyValues[k]
	}
	return out
}
