/*
File   : nano/eval/eval_structs.go
Package: eval

Class statement and Dot expression semantics (§4.F): prototype-based
single inheritance built directly on Entity's metaentity link, no
separate "class"/"instance" runtime types.
*/
package eval

import (
	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/environment"
	"github.com/nano-lang/nano/value"
)

// evalClassStmt creates a new entity, wires its metaentity to the named
// parent class if one resolves to an entity, executes the body in a
// class-body environment over that entity, then binds the finished
// entity under the class name in the outer environment (§4.F Class).
func (ev *Evaluator) evalClassStmt(n *ast.ClassStmt, env *environment.Environment) value.Value {
	class := value.NewEntity()

	if n.Parent != "" {
		parentVal, ok := env.Get(n.Parent)
		if !ok {
			ev.Diagnostics.Report(n.Line(), "undefined parent class '%s'", n.Parent)
		} else if parentEntity, ok := parentVal.(*value.Entity); ok {
			class.Metaentity = parentEntity
		} else {
			ev.Diagnostics.Report(n.Line(), "parent '%s' is not an entity", n.Parent)
		}
	}

	classEnv := environment.NewClassEnvironment(env, class)
	for _, stmt := range n.Body {
		ev.Eval(stmt, classEnv)
	}

	env.Define(n.Name, class)
	return value.None{}
}

// evalDot looks up name as a string key through the full prototype
// chain; there is no implicit `self` (§4.F Dot).
func (ev *Evaluator) evalDot(n *ast.DotExpr, env *environment.Environment) value.Value {
	objVal := ev.Eval(n.Obj, env)
	entity, ok := asEntity(objVal)
	if !ok {
		ev.Diagnostics.Report(n.Line(), "'.' requires an entity")
		return value.None{}
	}
	return entity.Get(value.String{Value: n.Name})
}
