/*
File   : nano/eval/eval_collections.go
Package: eval

Array, Dict, Get, Set, Range expression semantics (§4.F).
*/
package eval

import (
	"github.com/nano-lang/nano/ast"
	"github.com/nano-lang/nano/environment"
	"github.com/nano-lang/nano/value"
)

func (ev *Evaluator) evalArray(n *ast.ArrayExpr, env *environment.Environment) value.Value {
	elements := make([]value.Value, len(n.Elements))
	for i, e := range n.Elements {
		elements[i] = ev.Eval(e, env)
	}
	return value.NewArray(elements...)
}

// evalDict evaluates each key then each value in order; last write
// wins on duplicate keys (§4.F Dict).
func (ev *Evaluator) evalDict(n *ast.DictExpr, env *environment.Environment) value.Value {
	dict := value.NewEntity()
	for _, entry := range n.Entries {
		key := ev.Eval(entry.Key, env)
		val := ev.Eval(entry.Value, env)
		dict.Set(key, val)
	}
	return dict
}

func (ev *Evaluator) evalGet(n *ast.GetExpr, env *environment.Environment) value.Value {
	objVal := ev.Eval(n.Obj, env)
	entity, ok := asEntity(objVal)
	if !ok {
		ev.Diagnostics.Report(n.Line(), "index target is not an entity")
		return value.None{}
	}
	index := ev.Eval(n.Index, env)
	return entity.Get(index)
}

func (ev *Evaluator) evalSet(n *ast.SetExpr, env *environment.Environment) value.Value {
	objVal := ev.Eval(n.Obj, env)
	entity, ok := asEntity(objVal)
	if !ok {
		ev.Diagnostics.Report(n.Line(), "index target is not an entity")
		return value.None{}
	}
	index := ev.Eval(n.Index, env)
	val := ev.Eval(n.Value, env)
	entity.Set(index, val)
	return val
}

// evalRange implements §4.F Range and §8's boundary cases: step
// defaults to +1 if start<=end else -1; an explicit zero step is an
// error yielding an empty entity; iteration always includes start if it
// already satisfies the termination predicate.
func (ev *Evaluator) evalRange(n *ast.RangeExpr, env *environment.Environment) value.Value {
	startVal, startOK := ev.Eval(n.Start, env).(*value.Number)
	if !startOK {
		ev.Diagnostics.Report(n.Line(), "range start must be a number")
		startVal = value.NewNumberFromInt64(0)
	}
	endVal, endOK := ev.Eval(n.End, env).(*value.Number)
	if !endOK {
		ev.Diagnostics.Report(n.Line(), "range end must be a number")
		endVal = value.NewNumberFromInt64(0)
	}

	var step *value.Number
	if n.Step != nil {
		stepVal, ok := ev.Eval(n.Step, env).(*value.Number)
		if !ok {
			ev.Diagnostics.Report(n.Line(), "range step must be a number")
			stepVal = value.NewNumberFromInt64(1)
		}
		step = stepVal
	} else if startVal.Cmp(endVal) <= 0 {
		step = value.NewNumberFromInt64(1)
	} else {
		step = value.NewNumberFromInt64(-1)
	}

	if step.IsZero() {
		ev.Diagnostics.Report(n.Line(), "range step must not be zero")
		return value.NewArray()
	}

	var elements []value.Value
	current := startVal
	ascending := step.Cmp(value.NewNumberFromInt64(0)) > 0
	for {
		if ascending {
			if current.Cmp(endVal) > 0 {
				break
			}
		} else {
			if current.Cmp(endVal) < 0 {
				break
			}
		}
		elements = append(elements, current)
		current = current.Add(step)
	}
	return value.NewArray(elements...)
}
