/*
File   : nano/eval/eval_helpers.go
Package: eval

asEntity centralizes "treat this value as an Entity" (§3: "a function
value is simultaneously an Entity ... and a Callable"), since a
*value.Function embeds *value.Entity rather than being one, so a bare
Go type assertion to *value.Entity alone would reject function values
everywhere Dot/Get/Set/`+`/for-in/inspect are supposed to accept them.
*/
package eval

import "github.com/nano-lang/nano/value"

func asEntity(v value.Value) (*value.Entity, bool) {
	switch vv := v.(type) {
	case *value.Entity:
		return vv, true
	case *value.Function:
		return vv.Entity, true
	default:
		return nil, false
	}
}
