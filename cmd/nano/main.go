/*
File   : nano/cmd/nano/main.go
Package: main

Entry point (§6): one positional argument naming a UTF-8 source file,
executed start to finish; stdout flushed on exit; lex/parse/runtime
diagnostics go to stderr, colorized the way the teacher's main/main.go
colors its own diagnostics via github.com/fatih/color, and never force a
non-zero exit code by themselves.
*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/nano-lang/nano/eval"
	"github.com/nano-lang/nano/lexer"
	"github.com/nano-lang/nano/parser"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: nano <source-file>")
		os.Exit(1)
	}

	source, err := os.ReadFile(os.Args[1])
	if err != nil {
		errorColor.Fprintf(os.Stderr, "cannot read %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	run(string(source), out)
}

func run(source string, out *bufio.Writer) {
	lx := lexer.New(source)
	toks := lx.AllTokens()
	for _, msg := range lx.Errors {
		errorColor.Fprintln(os.Stderr, msg)
	}

	p := parser.New(toks)
	stmts := p.Parse()
	for _, msg := range p.Errors {
		errorColor.Fprintln(os.Stderr, msg)
	}

	ev := eval.New()
	ev.Stdout = out
	ev.Run(stmts)

	out.Flush()
	for _, msg := range ev.Diagnostics.Messages() {
		errorColor.Fprintln(os.Stderr, msg)
	}
}
