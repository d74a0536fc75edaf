/*
File   : nano/value/callable.go
Package: value

Callable is the third reference-shared Value variant (§3): either a
user-defined Function (itself simultaneously an Entity, per §3/§9 "a
function value is simultaneously an Entity ... and a Callable") or a
native Builtin. Mirrors the teacher's function.Function / std.Builtin
split, collapsed onto a single Callable interface since NANO's Value sum
type names Callable as one case rather than two.
*/
package value

import (
	"fmt"

	"github.com/nano-lang/nano/ast"
)

// Env is the subset of environment.Environment's behavior a closure
// needs; defined here (rather than imported) to avoid a value<->
// environment import cycle, since environment.Environment stores Values.
type Env interface {
	Get(name string) (Value, bool)
	Define(name string, v Value)
	Assign(name string, v Value)
}

// Callable is anything the evaluator's Call expression (§4.F) can invoke.
// Arity follows §4.F/§6: a non-negative arity is checked exactly against
// the argument count; a negative arity means variadic.
type Callable interface {
	Value
	Arity() int
	identity() any
}

// Function is a user-defined closure (§4.F "FunctionExpr"/"Function"
// statement semantics, §5 closure capture). It embeds *Entity so it can
// be inspected, have fields attached, and participate in prototype
// lookups exactly like any other entity (§3).
type Function struct {
	*Entity
	Name   string
	Params []string
	Body   ast.Stmt
	Env    Env
}

func NewFunction(name string, params []string, body ast.Stmt, env Env) *Function {
	return &Function{Entity: NewEntity(), Name: name, Params: params, Body: body, Env: env}
}

func (f *Function) Kind() Kind    { return KindCallable }
func (f *Function) Truthy() bool  { return true }
func (f *Function) Arity() int    { return len(f.Params) }
func (f *Function) identity() any { return f }

func (f *Function) String() string {
	name := f.Name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("<FunctionValue %s(%s)>", name, joinParams(f.Params))
}

func joinParams(params []string) string {
	out := ""
	for i, p := range params {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

// BuiltinFunc is the Go implementation of a native builtin (§6).
type BuiltinFunc func(args []Value) Value

// Builtin is a native built-in binding (§6): print, inspect, len.
// Negative arity means variadic (§4.F Call semantics).
type Builtin struct {
	Name  string
	Ar    int
	Fn    BuiltinFunc
}

func NewBuiltin(name string, arity int, fn BuiltinFunc) *Builtin {
	return &Builtin{Name: name, Ar: arity, Fn: fn}
}

func (b *Builtin) Kind() Kind     { return KindCallable }
func (b *Builtin) Truthy() bool   { return true }
func (b *Builtin) Arity() int     { return b.Ar }
func (b *Builtin) String() string { return fmt.Sprintf("<builtin %s>", b.Name) }
func (b *Builtin) identity() any  { return b }
