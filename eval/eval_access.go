/*
File   : nano/eval/eval_access.go
Package: eval

Call and FunctionExpr expression semantics (§4.F), plus the closure call
protocol shared by every invocation of a *value.Function.
*/
package eval

import (
	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/environment"
	"github.com/nano-lang/nano/value"
)

func (ev *Evaluator) evalFunctionExpr(n *ast.FunctionExpr, env *environment.Environment) value.Value {
	fn := value.NewFunction(n.Name, n.Params, n.Body, env)
	if n.Name != "" {
		env.Define(n.Name, fn)
	}
	return fn
}

// evalCall implements §4.F Call: evaluate callee, evaluate args
// left-to-right, then dispatch on whatever is callable.
func (ev *Evaluator) evalCall(n *ast.Call, env *environment.Environment) value.Value {
	calleeVal := ev.Eval(n.Callee, env)
	callable, ok := calleeVal.(value.Callable)
	if !ok {
		ev.Diagnostics.Report(n.Line(), "value is not callable")
		return value.None{}
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		args[i] = ev.Eval(a, env)
	}

	arity := callable.Arity()
	if arity >= 0 && len(args) != arity {
		ev.Diagnostics.Report(n.Line(), "expected %d argument(s) but got %d", arity, len(args))
		return value.None{}
	}

	switch fn := callable.(type) {
	case *value.Function:
		return ev.callFunction(fn, args)
	case *value.Builtin:
		return fn.Fn(args)
	}
	ev.Diagnostics.Report(n.Line(), "unsupported callable type")
	return value.None{}
}

// callFunction implements the closure call protocol (§4.F "Closure
// call protocol"): a fresh environment enclosed by the closure's
// captured environment, one binding per parameter, body executed
// directly (not re-wrapped, since Body is itself the block to run in
// this exact frame), return signal unwrapped to its value or None.
func (ev *Evaluator) callFunction(fn *value.Function, args []value.Value) value.Value {
	closureEnv, ok := fn.Env.(*environment.Environment)
	if !ok {
		ev.Diagnostics.Report(0, "function '%s' has an invalid closure environment", fn.Name)
		return value.None{}
	}
	callEnv := environment.NewEnclosed(closureEnv)
	for i, param := range fn.Params {
		callEnv.Define(param, args[i])
	}

	block, ok := fn.Body.(*ast.BlockStmt)
	if !ok {
		ev.Diagnostics.Report(0, "function '%s' has a malformed body", fn.Name)
		return value.None{}
	}
	result := ev.evalBlock(block, callEnv)
	if rs, ok := isReturn(result); ok {
		return rs.Val
	}
	return value.None{}
}
