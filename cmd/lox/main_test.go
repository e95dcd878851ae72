package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureRoot = "../../pkg/driver/testdata/fixtures"

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeProgram(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

const greetingProgram = `[
  {"type": "Var", "name": {"type": "IDENTIFIER", "lexeme": "who", "line": 1},
   "initializer": {"type": "Literal", "value": "world"}},
  {"type": "Print", "expression": {"type": "Binary",
   "left": {"type": "Literal", "value": "hello "},
   "operator": {"type": "PLUS", "lexeme": "+", "line": 2},
   "right": {"type": "Variable", "name": {"type": "IDENTIFIER", "lexeme": "who", "line": 2}}}}
]`

func TestRunProgram(t *testing.T) {
	path := writeProgram(t, "hello.json", greetingProgram)
	code, stdout, stderr := runCLI(t, "run", path)
	if code != 0 {
		t.Fatalf("lox run exited %d (stderr: %q)", code, stderr)
	}
	if stdout != "hello world\n" {
		t.Fatalf("unexpected stdout %q", stdout)
	}
}

func TestRunWithoutSubcommandTreatsArgumentAsProgram(t *testing.T) {
	path := writeProgram(t, "hello.json", greetingProgram)
	code, stdout, _ := runCLI(t, path)
	if code != 0 || stdout != "hello world\n" {
		t.Fatalf("expected program output, got code %d stdout %q", code, stdout)
	}
}

func TestRunReportsRuntimeError(t *testing.T) {
	code, stdout, stderr := runCLI(t, "run", filepath.Join(fixtureRoot, "type_error", "program.json"))
	if code != exitRuntime {
		t.Fatalf("expected exit %d, got %d", exitRuntime, code)
	}
	if stdout != "before\n" {
		t.Fatalf("expected output up to the failing statement, got %q", stdout)
	}
	if want := "Operands must be two numbers or two strings.\n[line 2]\n"; stderr != want {
		t.Fatalf("stderr = %q, want %q", stderr, want)
	}
}

func TestRunReportsLoadError(t *testing.T) {
	path := writeProgram(t, "broken.json", `[{"type": "While"}]`)
	code, _, stderr := runCLI(t, "run", path)
	if code != exitDataErr {
		t.Fatalf("expected exit %d, got %d", exitDataErr, code)
	}
	if !strings.Contains(stderr, `unsupported node type "While"`) {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestRunUsageErrors(t *testing.T) {
	if code, _, _ := runCLI(t); code != exitUsage {
		t.Fatalf("expected usage exit for no arguments, got %d", code)
	}
	if code, _, stderr := runCLI(t, "run", "a.json", "b.json"); code != exitUsage || !strings.Contains(stderr, "exactly one") {
		t.Fatalf("expected usage error, got %d %q", code, stderr)
	}
}

func TestHelpAndVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "--help")
	if code != 0 || !strings.Contains(stdout, "lox run") {
		t.Fatalf("unexpected help output %d %q", code, stdout)
	}
	code, stdout, _ = runCLI(t, "--version")
	if code != 0 || strings.TrimSpace(stdout) != cliToolVersion {
		t.Fatalf("unexpected version output %d %q", code, stdout)
	}
}

func TestASTCommand(t *testing.T) {
	path := writeProgram(t, "hello.json", greetingProgram)
	code, stdout, stderr := runCLI(t, "ast", path)
	if code != 0 {
		t.Fatalf("lox ast exited %d (stderr: %q)", code, stderr)
	}
	want := "(var who world)\n(print (+ hello  who))\n"
	if stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
}

func TestTestCommand(t *testing.T) {
	entries, err := os.ReadDir(fixtureRoot)
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}
	args := []string{"test", "-v"}
	for _, entry := range entries {
		if entry.IsDir() {
			args = append(args, filepath.Join(fixtureRoot, entry.Name()))
		}
	}
	code, stdout, stderr := runCLI(t, args...)
	if code != 0 {
		t.Fatalf("lox test exited %d\nstdout: %s\nstderr: %s", code, stdout, stderr)
	}
	if !strings.Contains(stdout, "ok   "+filepath.Join(fixtureRoot, "arithmetic")) {
		t.Fatalf("expected verbose ok line, got %q", stdout)
	}
}

func TestTestCommandReportsFailure(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "manifest.yml"), []byte("expect:\n  stdout: [\"2\"]\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	program := `[{"type": "Print", "expression": {"type": "Literal", "value": 1}}]`
	if err := os.WriteFile(filepath.Join(dir, "program.json"), []byte(program), 0o600); err != nil {
		t.Fatalf("write program: %v", err)
	}
	code, stdout, _ := runCLI(t, "test", dir)
	if code != 1 {
		t.Fatalf("expected failing exit, got %d", code)
	}
	if !strings.Contains(stdout, "FAIL "+dir) || !strings.Contains(stdout, "1 of 1 fixtures failed") {
		t.Fatalf("unexpected report %q", stdout)
	}
}

func TestNeedsMoreInput(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"", false},
		{`{"type": "Print",`, true},
		{`[{"type": "Print", "expression": {"type": "Literal", "value": 1}}`, true},
		{`{"type": "Print", "expression": {"type": "Literal", "value": 1}}`, false},
		{`{"type": }`, false},
	}
	for _, tc := range cases {
		if got := needsMoreInput(tc.src); got != tc.want {
			t.Fatalf("needsMoreInput(%q) = %v, want %v", tc.src, got, tc.want)
		}
	}
}

func TestReplSessionKeepsGlobals(t *testing.T) {
	var stdout, stderr bytes.Buffer
	session := newReplSession(&stdout, &stderr)

	entries := []string{
		`{"type": "Var", "name": {"type": "IDENTIFIER", "lexeme": "n", "line": 1}, "initializer": {"type": "Literal", "value": 2}}`,
		`{"type": "Print", "expression": {"type": "Unary", "operator": {"type": "MINUS", "lexeme": "-", "line": 1}, "right": {"type": "Literal", "value": "x"}}}`,
		`{"type": "Print", "expression": {"type": "Variable", "name": {"type": "IDENTIFIER", "lexeme": "n", "line": 1}}}`,
		":env",
		`:ast {"type": "Grouping", "expression": {"type": "Literal", "value": true}}`,
	}
	for _, entry := range entries {
		if session.handle(entry) {
			t.Fatalf("entry %q ended the session", entry)
		}
	}
	if got := stdout.String(); got != "2\nn = 2\n(group true)\n" {
		t.Fatalf("unexpected stdout %q", got)
	}
	if got := stderr.String(); got != "Operand must be a number.\n[line 1]\n" {
		t.Fatalf("unexpected stderr %q", got)
	}
	if !session.handle(":quit") {
		t.Fatalf("expected :quit to end the session")
	}
}

func TestReplSessionReportsBadInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	session := newReplSession(&stdout, &stderr)
	session.handle(`{"type": "Literal", "value": 1}`)
	session.handle(":bogus")
	session.handle(":ast")
	out := stderr.String()
	for _, want := range []string{"must be a program or statement", "unknown command :bogus", ":ast requires"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected stderr to contain %q, got %q", want, out)
		}
	}
}

func TestResolveHistoryPath(t *testing.T) {
	t.Setenv("LOX_HISTORY", "/tmp/custom_history")
	got, err := resolveHistoryPath()
	if err != nil || got != "/tmp/custom_history" {
		t.Fatalf("resolveHistoryPath = %q, %v", got, err)
	}

	home := t.TempDir()
	t.Setenv("LOX_HISTORY", "")
	t.Setenv("HOME", home)
	got, err = resolveHistoryPath()
	if err != nil {
		t.Fatalf("resolveHistoryPath error: %v", err)
	}
	if want := filepath.Join(home, historyFile); got != want {
		t.Fatalf("resolveHistoryPath = %q, want %q", got, want)
	}
}
