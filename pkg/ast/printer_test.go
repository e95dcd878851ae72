package ast

import "testing"

func TestPrinterExpressions(t *testing.T) {
	cases := []struct {
		name string
		expr Expr
		want string
	}{
		{"binary", Bin(Num(1), "+", Num(2)), "(+ 1 2)"},
		{"group nil", Group(Nil()), "(group nil)"},
		{"nested", Bin(Un("-", Num(123)), "*", Group(Num(45.67))), "(* (- 123) (group 45.67))"},
		{"bools", Bin(Bool(true), "==", Bool(false)), "(== true false)"},
		{"string", Group(Str("hello")), "(group hello)"},
		{"number precision", Num(10.40), "10.4"},
		{"not", Un("!", Bool(true)), "(! true)"},
		{"logical", Or(And(Var("a"), Var("b")), Nil()), "(or (and a b) nil)"},
		{"assign", Set("x", Bin(Var("x"), "+", Num(1))), "(= x (+ x 1))"},
	}
	p := NewPrinter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Print(tc.expr); got != tc.want {
				t.Fatalf("Print = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPrinterStatements(t *testing.T) {
	cases := []struct {
		name string
		stmt Stmt
		want string
	}{
		{"expression", ExprStmt(Set("a", Num(1))), "(; (= a 1))"},
		{"print", Print(Str("hi")), "(print hi)"},
		{"var bare", Decl("x", nil), "(var x)"},
		{"var init", Decl("x", Num(2)), "(var x 2)"},
		{"block", Block(Decl("y", nil), Print(Var("y"))), "(block (var y) (print y))"},
		{"if", If(Var("c"), Print(Num(1)), nil), "(if c (print 1))"},
		{"if else", If(Var("c"), Print(Num(1)), Print(Num(2))), "(if-else c (print 1) (print 2))"},
	}
	p := NewPrinter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.PrintStmt(tc.stmt); got != tc.want {
				t.Fatalf("PrintStmt = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOpRejectsUnknownLexeme(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown operator")
		}
	}()
	Op("<=>")
}
