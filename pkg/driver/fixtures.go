package driver

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"lox/interpreter-go/pkg/interpreter"
	"lox/interpreter-go/pkg/runtime"
)

// FixtureOutcome is what running a fixture program produced.
type FixtureOutcome struct {
	Stdout []string
	Err    error
}

// RunFixture loads the fixture in dir and runs its program with captured
// output. The returned error reports problems loading the fixture; the
// program's own failure is part of the outcome.
func RunFixture(dir string) (*Manifest, FixtureOutcome, error) {
	manifest, err := LoadManifest(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, FixtureOutcome{}, err
	}
	if manifest.Skip {
		return manifest, FixtureOutcome{}, nil
	}
	program, err := LoadProgram(manifest.EntryPath())
	if err != nil {
		return manifest, FixtureOutcome{}, err
	}

	var out bytes.Buffer
	interp := interpreter.NewWithOutput(&out)
	runErr := interp.Interpret(program)
	return manifest, FixtureOutcome{Stdout: splitLines(out.String()), Err: runErr}, nil
}

// CheckFixture compares an outcome with the manifest's expectations.
func CheckFixture(manifest *Manifest, outcome FixtureOutcome) error {
	if manifest.Skip {
		return nil
	}
	want := manifest.Expect
	if !equalLines(outcome.Stdout, want.Stdout) {
		return fmt.Errorf("stdout mismatch: expected %q, got %q", want.Stdout, outcome.Stdout)
	}
	if want.Error == "" {
		if outcome.Err != nil {
			return fmt.Errorf("unexpected error: %v", outcome.Err)
		}
		return nil
	}
	if outcome.Err == nil {
		return fmt.Errorf("expected error %q, program succeeded", want.Error)
	}
	var rtErr *runtime.RuntimeError
	if !errors.As(outcome.Err, &rtErr) {
		return fmt.Errorf("expected runtime error %q, got %v", want.Error, outcome.Err)
	}
	if rtErr.Message != want.Error {
		return fmt.Errorf("expected error %q, got %q", want.Error, rtErr.Message)
	}
	if want.Line > 0 && rtErr.Line() != want.Line {
		return fmt.Errorf("expected error on line %d, got line %d", want.Line, rtErr.Line())
	}
	return nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func equalLines(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
