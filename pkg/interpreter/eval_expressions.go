package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluate(node ast.Expr) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Literal:
		if n.Value == nil {
			return runtime.NilValue{}, nil
		}
		return n.Value, nil
	case *ast.Grouping:
		return i.evaluate(n.Expression)
	case *ast.Variable:
		return i.env.Get(i.current, n.Name)
	case *ast.Assign:
		return i.evaluateAssign(n)
	case *ast.Logical:
		return i.evaluateLogical(n)
	case *ast.Unary:
		return i.evaluateUnary(n)
	case *ast.Binary:
		return i.evaluateBinary(n)
	case nil:
		return nil, fmt.Errorf("nil expression")
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateAssign(expr *ast.Assign) (runtime.Value, error) {
	value, err := i.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}
	if err := i.env.Assign(i.current, expr.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (i *Interpreter) evaluateLogical(expr *ast.Logical) (runtime.Value, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	switch expr.Operator.Type {
	case runtime.TokenOr:
		if runtime.IsTruthy(left) {
			return left, nil
		}
	case runtime.TokenAnd:
		if !runtime.IsTruthy(left) {
			return left, nil
		}
	default:
		return nil, fmt.Errorf("unsupported logical operator %s", expr.Operator.Lexeme)
	}
	return i.evaluate(expr.Right)
}

func (i *Interpreter) evaluateUnary(expr *ast.Unary) (runtime.Value, error) {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}
	switch expr.Operator.Type {
	case runtime.TokenMinus:
		num, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, runtime.NewRuntimeError(expr.Operator, "Operand must be a number.")
		}
		return runtime.NumberValue{Val: -num.Val}, nil
	case runtime.TokenBang:
		return runtime.BoolValue{Val: !runtime.IsTruthy(right)}, nil
	default:
		return nil, fmt.Errorf("unsupported unary operator %s", expr.Operator.Lexeme)
	}
}

func (i *Interpreter) evaluateBinary(expr *ast.Binary) (runtime.Value, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	op := expr.Operator
	switch op.Type {
	case runtime.TokenPlus:
		return evaluatePlus(op, left, right)
	case runtime.TokenMinus, runtime.TokenStar, runtime.TokenSlash:
		return evaluateArithmetic(op, left, right)
	case runtime.TokenGreater, runtime.TokenGreaterEqual, runtime.TokenLess, runtime.TokenLessEqual:
		return evaluateComparison(op, left, right)
	case runtime.TokenEqualEqual:
		return runtime.BoolValue{Val: runtime.ValuesEqual(left, right)}, nil
	case runtime.TokenBangEqual:
		return runtime.BoolValue{Val: !runtime.ValuesEqual(left, right)}, nil
	default:
		return nil, fmt.Errorf("unsupported binary operator %s", op.Lexeme)
	}
}
