/*
File   : nano/eval/builtins.go
Package: eval

Built-in global bindings (§6): print, inspect, len, plus the true/false
constants. Mirrors the teacher's std/builtins.go convention of wiring
native functions straight into the global scope at interpreter
construction.
*/
package eval

import (
	"fmt"
	"strings"

	"github.com/nano-lang/nano/value"
)

func (ev *Evaluator) defineBuiltins() {
	ev.Global.Define("true", value.Bool{Value: true})
	ev.Global.Define("false", value.Bool{Value: false})
	ev.Global.Define("None", value.None{})

	ev.Global.Define("print", value.NewBuiltin("print", -1, ev.builtinPrint))
	ev.Global.Define("inspect", value.NewBuiltin("inspect", 1, ev.builtinInspect))
	ev.Global.Define("len", value.NewBuiltin("len", 1, ev.builtinLen))
}

// builtinPrint stringifies each argument, joins with single spaces,
// writes a trailing newline to stdout, and yields None (§6).
func (ev *Evaluator) builtinPrint(args []value.Value) value.Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Fprintln(ev.Stdout, strings.Join(parts, " "))
	return value.None{}
}

// builtinInspect prints a recursive dump of an entity (label, function
// details, local entries, metaentity chain with increasing indent), or
// a type/value line for anything else, and yields the printed text
// (§6). Entry iteration order is the entity's own OrderedKeys, which is
// implementation-defined and not required to be stable across
// implementations (§9).
func (ev *Evaluator) builtinInspect(args []value.Value) value.Value {
	var b strings.Builder
	inspectValue(&b, args[0], 0)
	text := b.String()
	fmt.Fprint(ev.Stdout, text)
	return value.String{Value: text}
}

func inspectValue(b *strings.Builder, v value.Value, indent int) {
	pad := strings.Repeat("  ", indent)

	var entity *value.Entity
	switch vv := v.(type) {
	case *value.Function:
		fmt.Fprintf(b, "%s<FunctionValue %s(%s)>\n", pad, fnName(vv), strings.Join(vv.Params, ", "))
		entity = vv.Entity
	case *value.Entity:
		fmt.Fprintf(b, "%s<Entity>\n", pad)
		entity = vv
	default:
		fmt.Fprintf(b, "%s%s: %s\n", pad, v.Kind(), v.String())
		return
	}

	for _, key := range entity.OrderedKeys() {
		val, _ := entity.GetLocal(key)
		fmt.Fprintf(b, "%s  %s : %s\n", pad, key.String(), val.String())
	}

	if entity.Metaentity != nil {
		fmt.Fprintf(b, "%smetaentity:\n", pad)
		inspectValue(b, entity.Metaentity, indent+1)
	}
}

func fnName(fn *value.Function) string {
	if fn.Name == "" {
		return "<anonymous>"
	}
	return fn.Name
}

// builtinLen requires an entity and yields its local entry count
// (§6); a non-entity argument is reported and yields 0.
func (ev *Evaluator) builtinLen(args []value.Value) value.Value {
	entity, ok := asEntity(args[0])
	if !ok {
		ev.Diagnostics.Report(0, "len() requires an entity")
		return value.NewNumberFromInt64(0)
	}
	return value.NewNumberFromInt64(int64(entity.LocalSize()))
}
