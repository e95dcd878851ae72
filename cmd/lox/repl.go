package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/driver"
	"lox/interpreter-go/pkg/interpreter"
	"lox/interpreter-go/pkg/runtime"
)

const (
	historyFile = ".lox_history"
	promptMain  = "lox> "
	promptCont  = "...  "
)

const replHelp = `Enter a JSON statement node or a list of statement nodes.
REPL commands:
  :ast <expr>  Print a JSON expression node in prefix form
  :env         List global bindings
  :help        Show this help
  :quit        Exit the REPL`

func runREPL(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("repl", flag.ContinueOnError)
	flags.SetOutput(stderr)
	history := flags.String("history", "", "history file (default $LOX_HISTORY or ~/"+historyFile+")")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		return exitUsage
	}

	histPath := *history
	if histPath == "" {
		path, err := resolveHistoryPath()
		if err != nil {
			fmt.Fprintf(stderr, "warning: %v; history disabled\n", err)
		}
		histPath = path
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintf(stdout, "%s\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", cliToolVersion)
	session := newReplSession(stdout, stderr)
	for {
		entry, ok := readEntry(ln)
		if !ok {
			fmt.Fprintln(stdout)
			return 0
		}
		if strings.TrimSpace(entry) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
		if session.handle(entry) {
			return 0
		}
	}
}

func resolveHistoryPath() (string, error) {
	if path := strings.TrimSpace(os.Getenv("LOX_HISTORY")); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}
	return filepath.Join(home, historyFile), nil
}

// readEntry collects lines until they form a complete JSON value or a REPL
// command. The second result is false once input is exhausted.
func readEntry(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}
		if b.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return line, true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !needsMoreInput(b.String()) {
			return b.String(), true
		}
	}
}

// needsMoreInput reports whether src is a truncated JSON value.
func needsMoreInput(src string) bool {
	if strings.TrimSpace(src) == "" {
		return false
	}
	var v any
	err := json.NewDecoder(strings.NewReader(src)).Decode(&v)
	return errors.Is(err, io.ErrUnexpectedEOF)
}

// replSession keeps one interpreter alive across entries so global bindings
// persist.
type replSession struct {
	interp  *interpreter.Interpreter
	printer *ast.Printer
	stdout  io.Writer
	stderr  io.Writer
}

func newReplSession(stdout, stderr io.Writer) *replSession {
	return &replSession{
		interp:  interpreter.NewWithOutput(stdout),
		printer: ast.NewPrinter(),
		stdout:  stdout,
		stderr:  stderr,
	}
}

// handle evaluates one entry and reports whether the session should end.
func (s *replSession) handle(entry string) bool {
	trimmed := strings.TrimSpace(entry)
	if strings.HasPrefix(trimmed, ":") {
		return s.command(trimmed)
	}
	program, err := driver.DecodeProgram([]byte(trimmed), driver.FormatJSON)
	if err != nil {
		fmt.Fprintf(s.stderr, "decode error: %v\n", err)
		return false
	}
	if err := s.interp.Interpret(program); err != nil {
		reportError(s.stderr, err)
	}
	return false
}

func (s *replSession) command(line string) bool {
	name, rest, _ := strings.Cut(line, " ")
	switch name {
	case ":quit", ":q", ":exit":
		return true
	case ":help":
		fmt.Fprintln(s.stdout, replHelp)
	case ":env":
		env := s.interp.Environment()
		values := env.Snapshot(runtime.GlobalScope)
		for _, key := range env.Keys(runtime.GlobalScope) {
			fmt.Fprintf(s.stdout, "%s = %s\n", key, runtime.Format(values[key]))
		}
	case ":ast":
		if strings.TrimSpace(rest) == "" {
			fmt.Fprintln(s.stderr, ":ast requires a JSON expression node")
			return false
		}
		expr, err := driver.DecodeExpression([]byte(rest), driver.FormatJSON)
		if err != nil {
			fmt.Fprintf(s.stderr, "decode error: %v\n", err)
			return false
		}
		fmt.Fprintln(s.stdout, s.printer.Print(expr))
	default:
		fmt.Fprintf(s.stderr, "unknown command %s (try :help)\n", name)
	}
	return false
}
