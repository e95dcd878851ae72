package interpreter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

// runProgram interprets statements on a fresh interpreter and returns the
// printed lines together with the evaluation error.
func runProgram(t *testing.T, statements ...ast.Stmt) ([]string, error) {
	t.Helper()
	var out bytes.Buffer
	interp := NewWithOutput(&out)
	err := interp.Interpret(statements)
	return outputLines(out.String()), err
}

func mustRun(t *testing.T, statements ...ast.Stmt) []string {
	t.Helper()
	lines, err := runProgram(t, statements...)
	if err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	return lines
}

func outputLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func expectLines(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines %q, got %d lines %q", len(want), want, len(got), got)
	}
	for idx := range want {
		if got[idx] != want[idx] {
			t.Fatalf("line %d: expected %q, got %q (all output %q)", idx, want[idx], got[idx], got)
		}
	}
}

func expectRuntimeError(t *testing.T, err error, message string) *runtime.RuntimeError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected runtime error %q", message)
	}
	var rtErr *runtime.RuntimeError
	if !errors.As(err, &rtErr) {
		t.Fatalf("expected *runtime.RuntimeError, got %T: %v", err, err)
	}
	if rtErr.Message != message {
		t.Fatalf("expected message %q, got %q", message, rtErr.Message)
	}
	return rtErr
}
