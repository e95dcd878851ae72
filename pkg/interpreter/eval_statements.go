package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) execute(node ast.Stmt) error {
	switch n := node.(type) {
	case *ast.ExpressionStmt:
		_, err := i.evaluate(n.Expression)
		return err
	case *ast.PrintStmt:
		return i.executePrint(n)
	case *ast.VarStmt:
		return i.executeVar(n)
	case *ast.BlockStmt:
		return i.executeBlockStmt(n)
	case *ast.IfStmt:
		return i.executeIf(n)
	case nil:
		return fmt.Errorf("nil statement")
	default:
		return fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

func (i *Interpreter) executePrint(stmt *ast.PrintStmt) error {
	val, err := i.evaluate(stmt.Expression)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(i.stdout, runtime.Format(val)); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}

func (i *Interpreter) executeVar(stmt *ast.VarStmt) error {
	var value runtime.Value = runtime.NilValue{}
	if stmt.Initializer != nil {
		val, err := i.evaluate(stmt.Initializer)
		if err != nil {
			return err
		}
		value = val
	}
	i.env.Define(i.current, stmt.Name.Lexeme, value)
	return nil
}

func (i *Interpreter) executeBlockStmt(block *ast.BlockStmt) error {
	scope := i.env.Push(i.current)
	defer i.env.Release(scope)
	return i.ExecuteBlock(block.Statements, scope)
}

func (i *Interpreter) executeIf(stmt *ast.IfStmt) error {
	cond, err := i.evaluate(stmt.Condition)
	if err != nil {
		return err
	}
	if runtime.IsTruthy(cond) {
		return i.execute(stmt.ThenBranch)
	}
	if stmt.ElseBranch != nil {
		return i.execute(stmt.ElseBranch)
	}
	return nil
}
