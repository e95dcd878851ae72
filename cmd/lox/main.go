package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/driver"
	"lox/interpreter-go/pkg/interpreter"
	"lox/interpreter-go/pkg/runtime"
)

const cliToolVersion = "lox-cli 0.0.0-dev"

// Exit codes follow the sysexits convention used by Lox hosts.
const (
	exitUsage   = 64
	exitDataErr = 65
	exitRuntime = 70
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage(stdout)
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(stdout, cliToolVersion)
		return 0
	case "run":
		return runProgram(args[1:], stdout, stderr)
	case "ast":
		return runAST(args[1:], stdout, stderr)
	case "test":
		return runFixtures(args[1:], stdout, stderr)
	case "repl":
		return runREPL(args[1:], stdout, stderr)
	default:
		return runProgram(args, stdout, stderr)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  lox run <program.json|program.yml>")
	fmt.Fprintln(w, "  lox ast <program.json|program.yml>")
	fmt.Fprintln(w, "  lox test [-v] <fixture-dir>...")
	fmt.Fprintln(w, "  lox repl [-history path]")
	fmt.Fprintln(w, "  lox --version")
}

func runProgram(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "lox run requires exactly one program document")
		return exitUsage
	}
	program, err := driver.LoadProgram(strings.TrimSpace(args[0]))
	if err != nil {
		fmt.Fprintf(stderr, "failed to load program: %v\n", err)
		return exitDataErr
	}

	interp := interpreter.NewWithOutput(stdout)
	if err := interp.Interpret(program); err != nil {
		reportError(stderr, err)
		var rtErr *runtime.RuntimeError
		if errors.As(err, &rtErr) {
			return exitRuntime
		}
		return 1
	}
	return 0
}

// reportError renders a runtime error as its message followed by the line of
// the offending token.
func reportError(w io.Writer, err error) {
	var rtErr *runtime.RuntimeError
	if errors.As(err, &rtErr) {
		fmt.Fprintf(w, "%s\n[line %d]\n", rtErr.Message, rtErr.Line())
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

func runAST(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "lox ast requires exactly one program document")
		return exitUsage
	}
	program, err := driver.LoadProgram(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "failed to load program: %v\n", err)
		return exitDataErr
	}
	printer := ast.NewPrinter()
	for _, stmt := range program {
		fmt.Fprintln(stdout, printer.PrintStmt(stmt))
	}
	return 0
}

func runFixtures(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.SetOutput(stderr)
	verbose := flags.Bool("v", false, "print passing fixtures and skip reasons")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	dirs := flags.Args()
	if len(dirs) == 0 {
		fmt.Fprintln(stderr, "lox test requires at least one fixture directory")
		return exitUsage
	}

	failed := 0
	for _, dir := range dirs {
		manifest, outcome, err := driver.RunFixture(dir)
		if err != nil {
			failed++
			fmt.Fprintf(stdout, "FAIL %s: %v\n", dir, err)
			continue
		}
		if manifest.Skip {
			if *verbose {
				fmt.Fprintf(stdout, "skip %s\n", dir)
			}
			continue
		}
		if err := driver.CheckFixture(manifest, outcome); err != nil {
			failed++
			fmt.Fprintf(stdout, "FAIL %s: %v\n", dir, err)
			continue
		}
		if *verbose {
			if manifest.Description != "" {
				fmt.Fprintf(stdout, "ok   %s (%s)\n", dir, manifest.Description)
			} else {
				fmt.Fprintf(stdout, "ok   %s\n", dir)
			}
		}
	}

	if failed > 0 {
		fmt.Fprintf(stdout, "%d of %d fixtures failed\n", failed, len(dirs))
		return 1
	}
	fmt.Fprintf(stdout, "ok %d fixtures\n", len(dirs))
	return 0
}
