/*
File    : pluto/cmd/pluto/main.go

Package main is the Pluto interpreter's entry point. It wires a single
cobra.Command carrying the file/parse/tree/interactive/no-prelude flags,
grounded on the teacher's main/main.go (file-vs-REPL dispatch) and on
go-dws's cobra-based `run` command (flag layout, --dump-ast equivalent).
Unlike the teacher, there is no `server` subcommand — spec.md's Non-goals
exclude networked execution.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/plutolang/pluto/ast"
	"github.com/plutolang/pluto/eval"
	"github.com/plutolang/pluto/lib"
	"github.com/plutolang/pluto/object"
	"github.com/plutolang/pluto/parser"
	"github.com/plutolang/pluto/repl"
)

const version = "0.1.0"

const banner = `
  ___  _       _
 | _ \| |_  _ | |_  ___
 |  _/| | || ||  _|/ _ \
 |_|  |_| \_,_| \__|\___/
`

var (
	flagFile       string
	flagParseOnly  bool
	flagTree       bool
	flagInteractive bool
	flagNoPrelude  bool

	redColor = color.New(color.FgRed)
)

func main() {
	root := &cobra.Command{
		Use:     "pluto [file]",
		Short:   "Pluto language interpreter",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    run,
	}
	root.Flags().StringVarP(&flagFile, "file", "f", "", "source file to run (alternative to the positional argument)")
	root.Flags().BoolVarP(&flagParseOnly, "parse", "p", false, "parse only; report syntax errors and exit without evaluating")
	root.Flags().BoolVarP(&flagTree, "tree", "t", false, "print the parsed AST before evaluating")
	root.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "drop into the REPL (after running a file, if one is given)")
	root.Flags().BoolVarP(&flagNoPrelude, "no-prelude", "n", false, "skip loading the standard prelude")

	if err := root.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path := flagFile
	if path == "" && len(args) == 1 {
		path = args[0]
	}

	prelude := ""
	if !flagNoPrelude {
		prelude = lib.Prelude
	}

	if path == "" {
		r := repl.New(banner, version, "----------------------------------------", "pluto >>> ")
		r.Start(os.Stdout, prelude)
		return nil
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	evaluator := eval.New()
	evaluator.SetWriter(os.Stdout)

	if prelude != "" {
		if err := runSource(evaluator, prelude, false); err != nil {
			return fmt.Errorf("loading prelude: %w", err)
		}
	}

	if err := runSource(evaluator, string(source), true); err != nil {
		if flagInteractive {
			redColor.Fprintf(os.Stderr, "%v\n", err)
		} else {
			return err
		}
	}

	if flagInteractive {
		r := repl.New(banner, version, "----------------------------------------", "pluto >>> ")
		r.Start(os.Stdout, "")
	}
	return nil
}

// runSource parses and, unless flagParseOnly is set, evaluates src
// against evaluator's environment. Parse errors and an evaluation error
// are returned to the caller as an error either way; report controls
// whether they are also printed (file mode) or returned unprinted
// (prelude loading).
func runSource(evaluator *eval.Evaluator, src string, report bool) error {
	par := parser.New(src)
	program := par.Parse()

	if errs := par.Errors(); len(errs) > 0 {
		if !report {
			return fmt.Errorf("%d parse error(s) in prelude", len(errs))
		}
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "%s\n", e.String())
		}
		return fmt.Errorf("%d parse error(s)", len(errs))
	}

	if flagTree && report {
		fmt.Println(ast.Dump(program))
	}
	if flagParseOnly {
		return nil
	}

	evaluator.SetParser(par)
	result := evaluator.Run(program)
	if object.IsError(result) {
		if !report {
			return fmt.Errorf("%s", result.Inspect())
		}
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		return fmt.Errorf("evaluation failed")
	}
	return nil
}
