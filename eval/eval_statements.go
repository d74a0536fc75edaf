/*
File   : nano/eval/eval_statements.go
Package: eval

Expression-statement, function-declaration, and return semantics
(§4.F).
*/
package eval

import (
	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/environment"
	"github.com/nano-lang/nano/value"
)

func (ev *Evaluator) evalExprStmt(n *ast.ExprStmt, env *environment.Environment) value.Value {
	ev.Eval(n.Expr, env)
	return value.None{}
}

// evalFuncStmt creates a closure capturing env and binds it under the
// declared name (§4.F Function statement).
func (ev *Evaluator) evalFuncStmt(n *ast.FuncStmt, env *environment.Environment) value.Value {
	fn := value.NewFunction(n.Name, n.Params, n.Body, env)
	env.Define(n.Name, fn)
	return value.None{}
}

// evalReturn evaluates the optional value and wraps it so the
// enclosing call catches it (§4.F Return, §9 "Control flow for
// return").
func (ev *Evaluator) evalReturn(n *ast.ReturnStmt, env *environment.Environment) value.Value {
	var v value.Value = value.None{}
	if n.Value != nil {
		v = ev.Eval(n.Value, env)
	}
	return &returnSignal{Val: v}
}
