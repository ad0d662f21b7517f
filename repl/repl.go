/*
File    : pluto/repl/repl.go

Package repl implements Pluto's interactive Read-Eval-Print Loop, grounded
on the teacher's repl/repl.go: a readline-backed line editor, an Evaluator
that persists its root environment across lines, and color-coded output
(errors in red, results in yellow, the banner in green/blue/cyan).
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/plutolang/pluto/eval"
	"github.com/plutolang/pluto/object"
	"github.com/plutolang/pluto/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/version text shown at startup. It carries no
// interpreter state itself — a fresh Evaluator is created in Start and
// lives for the session.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New creates a Repl ready to Start.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintf(w, "pluto %s\n", r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Type an expression and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type 'exit' or Ctrl+D to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop until 'exit', EOF, or a readline error. withPrelude
// is evaluated first, silently, against the session's root environment
// (the interpreter's prelude, unless it was disabled).
func (r *Repl) Start(out io.Writer, withPrelude string) {
	r.printBanner(out)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(out, "[READLINE ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetWriter(out)

	if withPrelude != "" {
		r.execute(out, withPrelude, evaluator, false)
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			out.Write([]byte("bye\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			out.Write([]byte("bye\n"))
			return
		}
		rl.SaveHistory(line)
		r.execute(out, line, evaluator, true)
	}
}

// execute parses and evaluates one line against evaluator's persistent
// root environment, printing the result unless it's silent (used for
// loading the prelude without echoing its value).
func (r *Repl) execute(out io.Writer, src string, evaluator *eval.Evaluator, echo bool) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(out, "[RUNTIME ERROR] %v\n", rec)
		}
	}()

	par := parser.New(src)
	program := par.Parse()
	if errs := par.Errors(); len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(out, "%s\n", e.String())
		}
		return
	}

	evaluator.SetParser(par)
	result := evaluator.Run(program)
	if !echo || result == nil {
		return
	}
	if object.IsError(result) {
		redColor.Fprintf(out, "%s\n", result.Inspect())
		return
	}
	if result.Type() == object.NULL_VALUE {
		return
	}
	yellowColor.Fprintf(out, "%s\n", result.Inspect())
}
