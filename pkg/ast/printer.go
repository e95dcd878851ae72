package ast

import (
	"fmt"
	"strings"

	"lox/interpreter-go/pkg/runtime"
)

// Printer renders trees in a fully parenthesized prefix form, e.g.
// `(* (- 123) (group 45.67))`. It is a debugging aid and never used by the
// interpreter.
type Printer struct{}

func NewPrinter() *Printer {
	return &Printer{}
}

// Print renders an expression.
func (p *Printer) Print(expr Expr) string {
	switch e := expr.(type) {
	case nil:
		return "nil"
	case *Literal:
		return runtime.Format(e.Value)
	case *Grouping:
		return p.parenthesize("group", e.Expression)
	case *Unary:
		return p.parenthesize(e.Operator.Lexeme, e.Right)
	case *Binary:
		return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Logical:
		return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return fmt.Sprintf("(= %s %s)", e.Name.Lexeme, p.Print(e.Value))
	default:
		return fmt.Sprintf("<%s>", expr.NodeType())
	}
}

// PrintStmt renders a statement.
func (p *Printer) PrintStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case nil:
		return "nil"
	case *ExpressionStmt:
		return p.parenthesize(";", s.Expression)
	case *PrintStmt:
		return p.parenthesize("print", s.Expression)
	case *VarStmt:
		if s.Initializer == nil {
			return fmt.Sprintf("(var %s)", s.Name.Lexeme)
		}
		return fmt.Sprintf("(var %s %s)", s.Name.Lexeme, p.Print(s.Initializer))
	case *BlockStmt:
		var b strings.Builder
		b.WriteString("(block")
		for _, inner := range s.Statements {
			b.WriteByte(' ')
			b.WriteString(p.PrintStmt(inner))
		}
		b.WriteByte(')')
		return b.String()
	case *IfStmt:
		if s.ElseBranch == nil {
			return fmt.Sprintf("(if %s %s)", p.Print(s.Condition), p.PrintStmt(s.ThenBranch))
		}
		return fmt.Sprintf("(if-else %s %s %s)", p.Print(s.Condition), p.PrintStmt(s.ThenBranch), p.PrintStmt(s.ElseBranch))
	default:
		return fmt.Sprintf("<%s>", stmt.NodeType())
	}
}

func (p *Printer) parenthesize(name string, exprs ...Expr) string {
	parts := make([]string, 0, len(exprs)+1)
	parts = append(parts, name)
	for _, expr := range exprs {
		parts = append(parts, p.Print(expr))
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}
