// Command infer is the REPL described in spec.md §6's "CLI surface": read an
// expression, infer its type, print the result, repeat. It also provides a
// non-interactive `-check` batch mode (SPEC_FULL §11.D), restoring
// original_source/src/main.rs's infer_test entry point for scripting and CI.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/bookowl/typeinfer/internal/env"
	"github.com/bookowl/typeinfer/internal/infer"
	"github.com/bookowl/typeinfer/internal/parser"
	"github.com/bookowl/typeinfer/internal/prelude"
	"github.com/bookowl/typeinfer/internal/preludecfg"
	"github.com/bookowl/typeinfer/internal/types"
	"github.com/bookowl/typeinfer/internal/varsupply"
)

func main() {
	preludePath := flag.String("prelude", "", "path to a prelude manifest (YAML) to extend the base prelude with")
	preludeOff := flag.Bool("prelude-off", false, "start from the empty environment instead of the base prelude")
	check := flag.String("check", "", "batch mode: infer every line of the given file, exit non-zero on any failure")
	flag.Parse()

	baseEnv, err := buildEnv(*preludeOff, *preludePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *check != "" {
		os.Exit(runCheck(*check, baseEnv))
	}

	runREPL(baseEnv)
}

func buildEnv(preludeOff bool, preludePath string) (*env.Env, error) {
	supply := &varsupply.Supply{}
	var e *env.Env
	if preludeOff {
		e = env.Empty()
	} else {
		e = prelude.Base(supply)
	}
	if preludePath != "" {
		manifest, err := preludecfg.Load(preludePath)
		if err != nil {
			return nil, err
		}
		e, err = preludecfg.Extend(e, manifest)
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

// runREPL prints a prompt only when stdin is a terminal — the same
// isatty.IsTerminal/IsCygwinTerminal check the teacher's
// internal/evaluator/builtins_term.go uses before printing interactive
// output — and reports each line's type or error without perturbing the
// environment for the next line (spec.md §7).
func runREPL(baseEnv *env.Env) {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		typ, err := inferLine(line, baseEnv)
		if err != nil {
			fmt.Println(err.Error())
			continue
		}
		fmt.Println(typ.String())
	}
}

// runCheck infers every line of path independently and reports a
// "expr: <e> type: <t>" line (or the error) for each, exiting non-zero if any
// line fails to type (SPEC_FULL §11.D).
func runCheck(path string, baseEnv *env.Env) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	exitCode := 0
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		typ, err := inferLine(line, baseEnv)
		if err != nil {
			fmt.Printf("expr: %s error: %s\n", line, err.Error())
			exitCode = 1
			continue
		}
		fmt.Printf("expr: %s type: %s\n", line, typ.String())
	}
	return exitCode
}

func inferLine(line string, baseEnv *env.Env) (types.Type, error) {
	expr, err := parser.Parse(line)
	if err != nil {
		return nil, err
	}
	return infer.TypeOf(expr, baseEnv)
}
