/*
File   : nano/eval/eval_operators.go
Package: eval

Binary operator semantics (§4.F Binary): short-circuit &&/||, `+`
polymorphism over numbers/strings/entities, arithmetic, comparison, and
equality.
*/
package eval

import (
	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/environment"
	"github.com/nano-lang/nano/lexer"
	"github.com/nano-lang/nano/value"
)

func (ev *Evaluator) evalBinary(n *ast.Binary, env *environment.Environment) value.Value {
	switch n.Op {
	case lexer.AND:
		lhs := ev.Eval(n.Lhs, env)
		if !lhs.Truthy() {
			return lhs
		}
		return ev.Eval(n.Rhs, env)
	case lexer.OR:
		lhs := ev.Eval(n.Lhs, env)
		if lhs.Truthy() {
			return lhs
		}
		return ev.Eval(n.Rhs, env)
	}

	lhs := ev.Eval(n.Lhs, env)
	rhs := ev.Eval(n.Rhs, env)

	switch n.Op {
	case lexer.PLUS:
		return ev.evalPlus(n, lhs, rhs)
	case lexer.MINUS:
		return ev.numericOp(n, lhs, rhs, func(a, b *value.Number) *value.Number { return a.Sub(b) })
	case lexer.STAR:
		return ev.numericOp(n, lhs, rhs, func(a, b *value.Number) *value.Number { return a.Mul(b) })
	case lexer.SLASH:
		return ev.evalDivide(n, lhs, rhs)
	case lexer.LT:
		return ev.comparisonOp(n, lhs, rhs, func(c int) bool { return c < 0 })
	case lexer.LE:
		return ev.comparisonOp(n, lhs, rhs, func(c int) bool { return c <= 0 })
	case lexer.GT:
		return ev.comparisonOp(n, lhs, rhs, func(c int) bool { return c > 0 })
	case lexer.GE:
		return ev.comparisonOp(n, lhs, rhs, func(c int) bool { return c >= 0 })
	case lexer.EQ:
		return value.Bool{Value: value.Equal(lhs, rhs)}
	case lexer.NE:
		return value.Bool{Value: !value.Equal(lhs, rhs)}
	}

	ev.Diagnostics.Report(n.Line(), "unknown binary operator '%s'", n.Op)
	return value.None{}
}

// evalPlus implements §4.F's `+` polymorphism: numeric add, string
// concatenation when either side is a string, entity concatenation
// when the left side is an entity, else an error.
func (ev *Evaluator) evalPlus(n *ast.Binary, lhs, rhs value.Value) value.Value {
	if lNum, ok := lhs.(*value.Number); ok {
		if rNum, ok := rhs.(*value.Number); ok {
			return lNum.Add(rNum)
		}
	}
	if _, ok := lhs.(value.String); ok {
		return value.String{Value: lhs.String() + rhs.String()}
	}
	if _, ok := rhs.(value.String); ok {
		return value.String{Value: lhs.String() + rhs.String()}
	}
	if lEntity, ok := asEntity(lhs); ok {
		return lEntity.Concat(rhs)
	}
	ev.Diagnostics.Report(n.Line(), "operands to '+' are incompatible")
	return value.None{}
}

func (ev *Evaluator) numericOp(n *ast.Binary, lhs, rhs value.Value, op func(a, b *value.Number) *value.Number) value.Value {
	lNum, ok1 := lhs.(*value.Number)
	rNum, ok2 := rhs.(*value.Number)
	if !ok1 || !ok2 {
		ev.Diagnostics.Report(n.Line(), "operands to '%s' must be numbers", n.Op)
		return value.NewNumberFromInt64(0)
	}
	return op(lNum, rNum)
}

func (ev *Evaluator) evalDivide(n *ast.Binary, lhs, rhs value.Value) value.Value {
	lNum, ok1 := lhs.(*value.Number)
	rNum, ok2 := rhs.(*value.Number)
	if !ok1 || !ok2 {
		ev.Diagnostics.Report(n.Line(), "operands to '/' must be numbers")
		return value.NewNumberFromInt64(0)
	}
	if rNum.IsZero() {
		ev.Diagnostics.Report(n.Line(), "division by zero")
		return value.NewNumberFromInt64(0)
	}
	return lNum.Div(rNum)
}

func (ev *Evaluator) comparisonOp(n *ast.Binary, lhs, rhs value.Value, pred func(cmp int) bool) value.Value {
	lNum, ok1 := lhs.(*value.Number)
	rNum, ok2 := rhs.(*value.Number)
	if !ok1 || !ok2 {
		ev.Diagnostics.Report(n.Line(), "operands to '%s' must be numbers", n.Op)
		return value.Bool{Value: false}
	}
	return value.Bool{Value: pred(lNum.Cmp(rNum))}
}
