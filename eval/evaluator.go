/*
File   : nano/eval/evaluator.go
Package: eval

Evaluator is the depth-first tree-walking interpreter (§4.F), dispatched
by a single type switch over ast.Node the way the teacher's
eval.Eval(n parser.Node) switches on concrete node types (grounded in
the teacher's eval/evaluator_expressions.go dispatcher), rather than the
full NodeVisitor interface the teacher also defines but uses only for
debug printing.

Return unwinds as a sentinel Value (returnSignal) threaded up through
ordinary Eval results and unwrapped at the function-call boundary,
mirroring the teacher's objects.ReturnValue / UnwrapReturnValue /
evalStatements early-exit pattern (§9's "Control flow for return").
*/
package eval

import (
	"io"
	"os"

	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/environment"
	"github.com/nano-lang/nano/value"
)

// returnSignal wraps the value passed to `return`; it satisfies
// value.Value purely so it can travel through Eval's uniform return
// type, but it must never leak into user-visible output.
type returnSignal struct {
	Val value.Value
}

func (r *returnSignal) Kind() value.Kind { return r.Val.Kind() }
func (r *returnSignal) String() string   { return r.Val.String() }
func (r *returnSignal) Truthy() bool     { return r.Val.Truthy() }

func isReturn(v value.Value) (*returnSignal, bool) {
	rs, ok := v.(*returnSignal)
	return rs, ok
}

// Evaluator holds the global environment (where the builtins are
// bound), the diagnostics sink, and the stdout writer `print`/`inspect`
// write to.
type Evaluator struct {
	Global      *environment.Environment
	Diagnostics *Diagnostics
	Stdout      io.Writer
}

func New() *Evaluator {
	ev := &Evaluator{
		Global:      environment.New(),
		Diagnostics: NewDiagnostics(),
		Stdout:      os.Stdout,
	}
	ev.defineBuiltins()
	return ev
}

// Run executes a top-level statement list (§4.F "Top-level"): a return
// reaching here is reported and swallowed rather than propagated
// further, since there is no enclosing call to catch it (§7).
func (ev *Evaluator) Run(stmts []ast.Stmt) {
	for _, s := range stmts {
		result := ev.Eval(s, ev.Global)
		if rs, ok := isReturn(result); ok {
			_ = rs
			ev.Diagnostics.Report(s.Line(), "return outside of a function")
		}
	}
}

// Eval dispatches on the concrete node type. Statement cases return
// value.None{} for normal completion or a *returnSignal to propagate a
// `return` outward; expression cases return the expression's value.
func (ev *Evaluator) Eval(node ast.Node, env *environment.Environment) value.Value {
	switch n := node.(type) {

	// statements
	case *ast.ExprStmt:
		return ev.evalExprStmt(n, env)
	case *ast.BlockStmt:
		return ev.evalBlock(n, environment.NewEnclosed(env))
	case *ast.IfStmt:
		return ev.evalIf(n, env)
	case *ast.WhileStmt:
		return ev.evalWhile(n, env)
	case *ast.ForStmt:
		return ev.evalFor(n, env)
	case *ast.FuncStmt:
		return ev.evalFuncStmt(n, env)
	case *ast.ReturnStmt:
		return ev.evalReturn(n, env)
	case *ast.ClassStmt:
		return ev.evalClassStmt(n, env)

	// expressions
	case *ast.Literal:
		return ev.evalLiteral(n)
	case *ast.Grouping:
		return ev.Eval(n.Expr, env)
	case *ast.Unary:
		return ev.evalUnary(n, env)
	case *ast.Binary:
		return ev.evalBinary(n, env)
	case *ast.Variable:
		return ev.evalVariable(n, env)
	case *ast.Assign:
		return ev.evalAssign(n, env)
	case *ast.Call:
		return ev.evalCall(n, env)
	case *ast.FunctionExpr:
		return ev.evalFunctionExpr(n, env)
	case *ast.ArrayExpr:
		return ev.evalArray(n, env)
	case *ast.DictExpr:
		return ev.evalDict(n, env)
	case *ast.GetExpr:
		return ev.evalGet(n, env)
	case *ast.SetExpr:
		return ev.evalSet(n, env)
	case *ast.Ternary:
		return ev.evalTernary(n, env)
	case *ast.RangeExpr:
		return ev.evalRange(n, env)
	case *ast.DotExpr:
		return ev.evalDot(n, env)
	}
	ev.Diagnostics.Report(node.Line(), "unhandled node type %T", node)
	return value.None{}
}

// evalBlock runs a statement list in env (already freshly nested by the
// caller), stopping early and propagating a *returnSignal if one
// appears.
func (ev *Evaluator) evalBlock(block *ast.BlockStmt, env *environment.Environment) value.Value {
	for _, s := range block.Stmts {
		result := ev.Eval(s, env)
		if _, ok := isReturn(result); ok {
			return result
		}
	}
	return value.None{}
}
