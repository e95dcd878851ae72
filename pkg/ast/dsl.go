package ast

import (
	"fmt"

	"lox/interpreter-go/pkg/runtime"
)

// Token helpers.

var operatorTypes = map[string]runtime.TokenType{
	"-":   runtime.TokenMinus,
	"+":   runtime.TokenPlus,
	"/":   runtime.TokenSlash,
	"*":   runtime.TokenStar,
	"!":   runtime.TokenBang,
	"!=":  runtime.TokenBangEqual,
	"=":   runtime.TokenEqual,
	"==":  runtime.TokenEqualEqual,
	">":   runtime.TokenGreater,
	">=":  runtime.TokenGreaterEqual,
	"<":   runtime.TokenLess,
	"<=":  runtime.TokenLessEqual,
	"and": runtime.TokenAnd,
	"or":  runtime.TokenOr,
}

// Op builds an operator token from its lexeme on line 1.
func Op(lexeme string) runtime.Token {
	return OpAt(lexeme, 1)
}

// OpAt builds an operator token from its lexeme. It panics on lexemes that
// are not operators.
func OpAt(lexeme string, line int) runtime.Token {
	typ, ok := operatorTypes[lexeme]
	if !ok {
		panic(fmt.Sprintf("ast: %q is not an operator", lexeme))
	}
	return runtime.NewToken(typ, lexeme, line)
}

// Name builds an identifier token on line 1.
func Name(name string) runtime.Token {
	return NameAt(name, 1)
}

func NameAt(name string, line int) runtime.Token {
	return runtime.NewToken(runtime.TokenIdentifier, name, line)
}

// Literal helpers.

func Num(value float64) *Literal {
	return NewLiteral(runtime.NumberValue{Val: value})
}

func Str(value string) *Literal {
	return NewLiteral(runtime.StringValue{Val: value})
}

func Bool(value bool) *Literal {
	return NewLiteral(runtime.BoolValue{Val: value})
}

func Nil() *Literal {
	return NewLiteral(runtime.NilValue{})
}

// Expression helpers.

func Group(inner Expr) *Grouping {
	return NewGrouping(inner)
}

func Un(op string, right Expr) *Unary {
	return NewUnary(Op(op), right)
}

func Bin(left Expr, op string, right Expr) *Binary {
	return NewBinary(left, Op(op), right)
}

func And(left Expr, right Expr) *Logical {
	return NewLogical(left, Op("and"), right)
}

func Or(left Expr, right Expr) *Logical {
	return NewLogical(left, Op("or"), right)
}

func Var(name string) *Variable {
	return NewVariable(Name(name))
}

func Set(name string, value Expr) *Assign {
	return NewAssign(Name(name), value)
}

// Statement helpers.

func ExprStmt(expr Expr) *ExpressionStmt {
	return NewExpressionStmt(expr)
}

func Print(expr Expr) *PrintStmt {
	return NewPrintStmt(expr)
}

// Decl declares name; a nil initializer leaves the variable nil.
func Decl(name string, initializer Expr) *VarStmt {
	return NewVarStmt(Name(name), initializer)
}

func Block(statements ...Stmt) *BlockStmt {
	return NewBlockStmt(statements)
}

func If(condition Expr, thenBranch Stmt, elseBranch Stmt) *IfStmt {
	return NewIfStmt(condition, thenBranch, elseBranch)
}

func Prog(statements ...Stmt) []Stmt {
	return statements
}
