package eval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nano-lang/nano/lexer"
	"github.com/nano-lang/nano/parser"
)

// runProgram lexes, parses, and evaluates source, returning stdout text
// and the evaluator for diagnostic inspection. Mirrors the teacher's
// evaluator_test.go table-driven "run then assert" shape.
func runProgram(t *testing.T, source string) (string, *Evaluator) {
	t.Helper()
	toks := lexer.New(source).AllTokens()
	p := parser.New(toks)
	stmts := p.Parse()
	require.Empty(t, p.Errors, "unexpected parse errors: %v", p.Errors)

	var out strings.Builder
	ev := New()
	ev.Stdout = &out
	ev.Run(stmts)
	return out.String(), ev
}

func TestEvaluator_ArithmeticAndPrint(t *testing.T) {
	out, _ := runProgram(t, `x = 4; y = 2; print(x + y)`)
	assert.Equal(t, "6\n", out)
}

func TestEvaluator_ArrayConcatAndLen(t *testing.T) {
	out, _ := runProgram(t, `nums = [10,20,30]; nums[2] = 99; print(len(nums + [40]))`)
	assert.Equal(t, "4\n", out)
}

func TestEvaluator_RangeLiteral(t *testing.T) {
	out, _ := runProgram(t, `asc = [1::4]; print(len(asc), asc[0], asc[3])`)
	assert.Equal(t, "4 1 4\n", out)
}

func TestEvaluator_DictIndexAssignment(t *testing.T) {
	out, _ := runProgram(t, `person = {name:"Alice", age:30}; person["age"] = person["age"] + 1; print(person["age"])`)
	assert.Equal(t, "31\n", out)
}

func TestEvaluator_RecursiveFactorial(t *testing.T) {
	out, _ := runProgram(t, `def fact(n){ if (n <= 1) { return 1 } return n * fact(n-1) } print(fact(5))`)
	assert.Equal(t, "120\n", out)
}

func TestEvaluator_ClassInheritanceDotLookup(t *testing.T) {
	out, _ := runProgram(t, `classP: = { v = 100 } classC:classP = { w = 200 } print(classC.w, classC.v)`)
	assert.Equal(t, "200 100\n", out)
}

func TestEvaluator_MethodBareReferencesInheritedMember(t *testing.T) {
	out, _ := runProgram(t, `classP: = { def greet(){ return "hi" } } classC:classP = { def callGreet(){ return greet() } } print(classC.callGreet())`)
	assert.Equal(t, "hi\n", out)
}

func TestEvaluator_EmptyArrayAndForLoop(t *testing.T) {
	out, _ := runProgram(t, `count = 0; for (x in []) { count = count + 1 } print(count)`)
	assert.Equal(t, "0\n", out)
}

func TestEvaluator_RangeSingleton(t *testing.T) {
	out, _ := runProgram(t, `print(len([5::5]))`)
	assert.Equal(t, "1\n", out)
}

func TestEvaluator_DivisionRounding(t *testing.T) {
	out, _ := runProgram(t, `print(1/3)`)
	assert.Equal(t, "0.3333333333\n", out)
}

func TestEvaluator_ShortCircuitOr(t *testing.T) {
	out, _ := runProgram(t, `def sideEffect(){ print("called") return true } true || sideEffect()`)
	assert.Equal(t, "", out, "right side of || must not evaluate when left is truthy")
}

func TestEvaluator_ShortCircuitAnd(t *testing.T) {
	out, _ := runProgram(t, `def sideEffect(){ print("called") return true } false && sideEffect()`)
	assert.Equal(t, "", out, "right side of && must not evaluate when left is falsy")
}

func TestEvaluator_ClosureCapturesMutableEnvironment(t *testing.T) {
	out, _ := runProgram(t, `
		def makeCounter() {
			count = 0
			return () -> (count = count + 1)
		}
		inc = makeCounter()
		print(inc())
		print(inc())
		print(inc())
	`)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestEvaluator_TernaryOperator(t *testing.T) {
	out, _ := runProgram(t, `print(1 < 2 ? "yes" : "no")`)
	assert.Equal(t, "yes\n", out)
}

func TestEvaluator_TruthinessOfZeroAndEmpty(t *testing.T) {
	out, _ := runProgram(t, `print(0 ? "t" : "f", "" ? "t" : "f")`)
	assert.Equal(t, "t t\n", out)
}

func TestEvaluator_ArityMismatchReportsDiagnostic(t *testing.T) {
	_, ev := runProgram(t, `def f(a,b){ return a } f(1)`)
	assert.True(t, ev.Diagnostics.HasErrors())
}

func TestEvaluator_DivisionByZeroReportsDiagnostic(t *testing.T) {
	out, ev := runProgram(t, `print(1/0)`)
	assert.True(t, ev.Diagnostics.HasErrors())
	assert.Equal(t, "0\n", out)
}

func TestEvaluator_TopLevelReturnIsSwallowed(t *testing.T) {
	_, ev := runProgram(t, `return 1`)
	assert.True(t, ev.Diagnostics.HasErrors())
}

func TestEvaluator_WhileLoop(t *testing.T) {
	out, _ := runProgram(t, `i = 0; while (i < 3) { print(i) i = i + 1 }`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestEvaluator_RangeSameBoundsWrongSignStepStillIncludesStart(t *testing.T) {
	// [n::n::k] always has start satisfy the termination predicate
	// regardless of k's sign, since start == end (§8 boundary cases).
	out, _ := runProgram(t, `print(len([5::5::-1]))`)
	assert.Equal(t, "1\n", out)
}

func TestEvaluator_RangeWrongSignStepWithDistinctBoundsIsEmpty(t *testing.T) {
	// start (5) does not satisfy the descending termination predicate
	// (current >= end) against end (10), so nothing is emitted, not
	// even start (§8 "always include start if it already satisfies the
	// termination predicate" — here it does not).
	out, _ := runProgram(t, `print(len([5::10::-1]))`)
	assert.Equal(t, "0\n", out)
}

func TestEvaluator_DotIsUnboundNoImplicitSelf(t *testing.T) {
	out, _ := runProgram(t, `
		base: = { greet = () -> "hi" }
		g = base.greet
		print(g())
	`)
	assert.Equal(t, "hi\n", out)
}

func TestEvaluator_InspectEntityListsLocalEntries(t *testing.T) {
	out, _ := runProgram(t, `person = {age: 30}; inspect(person)`)
	assert.Contains(t, out, "<Entity>")
	assert.Contains(t, out, "age")
	assert.Contains(t, out, "30")
}
