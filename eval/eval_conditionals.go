/*
File   : nano/eval/eval_conditionals.go
Package: eval

If/While/For statement semantics (§4.F).
*/
package eval

import (
	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/environment"
	"github.com/nano-lang/nano/value"
)

func (ev *Evaluator) evalIf(n *ast.IfStmt, env *environment.Environment) value.Value {
	cond := ev.Eval(n.Cond, env)
	if cond.Truthy() {
		return ev.Eval(n.Then, env)
	}
	if n.Else != nil {
		return ev.Eval(n.Else, env)
	}
	return value.None{}
}

func (ev *Evaluator) evalWhile(n *ast.WhileStmt, env *environment.Environment) value.Value {
	for ev.Eval(n.Cond, env).Truthy() {
		result := ev.Eval(n.Body, env)
		if _, ok := isReturn(result); ok {
			return result
		}
	}
	return value.None{}
}

// evalFor evaluates the iterable, which must be an entity; each
// iteration runs the body in one fresh lexical environment binding the
// loop variable (§4.F For).
func (ev *Evaluator) evalFor(n *ast.ForStmt, env *environment.Environment) value.Value {
	iterVal := ev.Eval(n.Iterable, env)
	entity, ok := asEntity(iterVal)
	if !ok {
		ev.Diagnostics.Report(n.Line(), "for-loop iterable is not an entity")
		return value.None{}
	}

	for _, el := range entity.Elements() {
		iterEnv := environment.NewEnclosed(env)
		iterEnv.Define(n.Var, el)
		result := ev.evalBlock(n.Body, iterEnv)
		if _, ok := isReturn(result); ok {
			return result
		}
	}
	return value.None{}
}
