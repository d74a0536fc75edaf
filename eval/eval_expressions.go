/*
File   : nano/eval/eval_expressions.go
Package: eval

Literal, Unary, Variable, Assign, Ternary expression semantics (§4.F);
Binary lives in eval_operators.go.
*/
package eval

import (
	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/environment"
	"github.com/nano-lang/nano/lexer"
	"github.com/nano-lang/nano/value"
)

func (ev *Evaluator) evalLiteral(n *ast.Literal) value.Value {
	switch n.Kind {
	case ast.LiteralNone:
		return value.None{}
	case ast.LiteralBool:
		return value.Bool{Value: n.Bool}
	case ast.LiteralString:
		return value.String{Value: n.Text}
	case ast.LiteralNumber:
		num, ok := value.NewNumberFromDecimalText(n.Text)
		if !ok {
			ev.Diagnostics.Report(n.Line(), "malformed number literal '%s'", n.Text)
			return value.NewNumberFromInt64(0)
		}
		return num
	}
	return value.None{}
}

func (ev *Evaluator) evalUnary(n *ast.Unary, env *environment.Environment) value.Value {
	rhs := ev.Eval(n.Rhs, env)
	switch n.Op {
	case lexer.MINUS:
		num, ok := rhs.(*value.Number)
		if !ok {
			ev.Diagnostics.Report(n.Line(), "unary '-' requires a number")
			return value.NewNumberFromInt64(0)
		}
		return num.Neg()
	case lexer.BANG:
		return value.Bool{Value: !rhs.Truthy()}
	}
	ev.Diagnostics.Report(n.Line(), "unknown unary operator '%s'", n.Op)
	return value.None{}
}

func (ev *Evaluator) evalVariable(n *ast.Variable, env *environment.Environment) value.Value {
	v, ok := env.Get(n.Name)
	if !ok {
		ev.Diagnostics.Report(n.Line(), "undefined variable '%s'", n.Name)
		return value.None{}
	}
	return v
}

func (ev *Evaluator) evalAssign(n *ast.Assign, env *environment.Environment) value.Value {
	v := ev.Eval(n.Value, env)
	env.Assign(n.Name, v)
	return v
}

func (ev *Evaluator) evalTernary(n *ast.Ternary, env *environment.Environment) value.Value {
	if ev.Eval(n.Cond, env).Truthy() {
		return ev.Eval(n.Then, env)
	}
	return ev.Eval(n.Else, env)
}
