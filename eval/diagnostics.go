/*
File   : nano/eval/diagnostics.go
Package: eval

Diagnostics collects non-fatal runtime diagnostics (§7) the same shape
as the teacher's Parser.Errors []string / HasErrors() / GetErrors():
an accumulating slice of already-formatted "[Line L] message" strings,
flushed by the caller (cmd/nano colorizes them on stderr).
*/
package eval

import "fmt"

type Diagnostics struct {
	messages []string
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

func (d *Diagnostics) Report(line int, format string, args ...any) {
	d.messages = append(d.messages, fmt.Sprintf("[Line %d] %s", line, fmt.Sprintf(format, args...)))
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.messages) > 0
}

func (d *Diagnostics) Messages() []string {
	return d.messages
}
