package interpreter

import (
	"io"
	"os"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

// Interpreter walks Lox statement trees. It owns its environment arena and
// the handle of the scope currently in effect; it is not safe for concurrent
// use.
type Interpreter struct {
	env     *runtime.Environment
	current runtime.ScopeID
	stdout  io.Writer
}

// New returns an interpreter with an empty global environment printing to os.Stdout.
func New() *Interpreter {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput returns an interpreter whose print statements write to w.
func NewWithOutput(w io.Writer) *Interpreter {
	if w == nil {
		w = io.Discard
	}
	return &Interpreter{
		env:     runtime.NewEnvironment(),
		current: runtime.GlobalScope,
		stdout:  w,
	}
}

// Environment returns the interpreter's scope arena.
func (i *Interpreter) Environment() *runtime.Environment {
	return i.env
}

// CurrentScope returns the handle of the scope statements currently run in.
func (i *Interpreter) CurrentScope() runtime.ScopeID {
	return i.current
}

// Interpret executes statements in order. The first error stops execution
// and is returned; language errors are *runtime.RuntimeError.
func (i *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteBlock runs statements with scope as the current scope. The previous
// scope is restored on every exit path.
func (i *Interpreter) ExecuteBlock(statements []ast.Stmt, scope runtime.ScopeID) error {
	previous := i.current
	i.current = scope
	defer func() {
		i.current = previous
	}()
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate computes the value of a single expression in the current scope.
func (i *Interpreter) Evaluate(expr ast.Expr) (runtime.Value, error) {
	return i.evaluate(expr)
}
