/*
File   : nano/environment/environment.go
Package: environment

Environment implements NANO's dual-mode variable binding (§4.E), adapted
from the teacher's scope.Scope (an enclosing-pointer chain over a
map[string]objects.Object). Two differences from the teacher drive the
"dual-mode" name:

  - Ambient assignment: `assign` on a name not found anywhere in the
    enclosing chain creates a new LOCAL binding in the innermost
    environment, rather than erroring (§4.E) — the teacher's scope
    requires `let`-style declaration first.
  - Class-body mode: while evaluating a class body (§4.F Class
    statement), declarations are written into the class's backing
    Entity instead of a map, so methods and fields land in the same
    place a.Get("method") would find them. NewClassEnvironment wraps an
    *value.Entity for this purpose.
*/
package environment

import "github.com/nano-lang/nano/value"

// Environment is a lexical scope frame with an optional enclosing
// parent, or a class-body frame backed by a value.Entity.
type Environment struct {
	vars     map[string]value.Value
	enclosing *Environment
	classBody *value.Entity // non-nil in class-body mode
}

// New creates a top-level (global) environment.
func New() *Environment {
	return &Environment{vars: make(map[string]value.Value)}
}

// NewEnclosed creates a child environment nested inside parent (§4.F
// Block/Function/For/While each introduce one).
func NewEnclosed(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Value), enclosing: parent}
}

// NewClassEnvironment creates a class-body frame: declarations write
// into body instead of a local map, while reads still see the
// surrounding lexical scope (§4.E, §4.F Class statement).
func NewClassEnvironment(parent *Environment, body *value.Entity) *Environment {
	return &Environment{enclosing: parent, classBody: body}
}

// Define binds name in this frame (used for function parameters and
// class-body members), shadowing any outer binding of the same name.
func (e *Environment) Define(name string, v value.Value) {
	if e.classBody != nil {
		e.classBody.Set(value.String{Value: name}, v)
		return
	}
	e.vars[name] = v
}

// Get resolves name by walking outward through the enclosing chain
// (§4.E lexical lookup). In class-body mode the entity's own lookup
// (§3) is used, which already walks the metaentity chain, so a bare
// reference to an inherited member resolves without needing a dotted
// access.
func (e *Environment) Get(name string) (value.Value, bool) {
	if e.classBody != nil {
		if v, ok := e.classBody.GetChain(value.String{Value: name}); ok {
			return v, true
		}
	} else if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// Assign implements §4.E's ambient-assignment rule in lexical mode: if
// name is bound anywhere in the enclosing chain, that binding is
// updated in place; otherwise a new binding is created in THIS frame
// (not the global frame), matching "assignment to an unbound name
// creates a local binding in the innermost active scope". In
// class-body mode, assign always writes into the entity's entries
// unconditionally (§4.E: "define and assign both write into the
// entity's entries") — it never walks out to mutate an outer binding
// of the same name. A class-body frame met while walking the chain
// counts as binding name only when its entity (or its metaentity chain)
// has that key; the write then goes to that entity's own entries.
func (e *Environment) Assign(name string, v value.Value) {
	if e.classBody != nil {
		e.classBody.Set(value.String{Value: name}, v)
		return
	}
	if e.assignExisting(name, v) {
		return
	}
	e.Define(name, v)
}

func (e *Environment) assignExisting(name string, v value.Value) bool {
	if e.classBody != nil {
		if _, ok := e.classBody.GetChain(value.String{Value: name}); ok {
			e.classBody.Set(value.String{Value: name}, v)
			return true
		}
	} else if _, ok := e.vars[name]; ok {
		e.vars[name] = v
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.assignExisting(name, v)
	}
	return false
}
