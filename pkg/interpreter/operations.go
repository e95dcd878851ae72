package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/runtime"
)

func evaluatePlus(op runtime.Token, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	switch lv := left.(type) {
	case runtime.StringValue:
		if rv, ok := right.(runtime.StringValue); ok {
			return runtime.StringValue{Val: lv.Val + rv.Val}, nil
		}
	case runtime.NumberValue:
		if rv, ok := right.(runtime.NumberValue); ok {
			return runtime.NumberValue{Val: lv.Val + rv.Val}, nil
		}
	}
	return nil, runtime.NewRuntimeError(op, "Operands must be two numbers or two strings.")
}

// evaluateArithmetic handles - * /. Division by zero is left to IEEE-754
// and yields ±Inf or NaN.
func evaluateArithmetic(op runtime.Token, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	l, r, err := numberOperands(op, left, right)
	if err != nil {
		return nil, err
	}
	switch op.Type {
	case runtime.TokenMinus:
		return runtime.NumberValue{Val: l - r}, nil
	case runtime.TokenStar:
		return runtime.NumberValue{Val: l * r}, nil
	case runtime.TokenSlash:
		return runtime.NumberValue{Val: l / r}, nil
	default:
		return nil, fmt.Errorf("unsupported arithmetic operator %s", op.Lexeme)
	}
}

func evaluateComparison(op runtime.Token, left runtime.Value, right runtime.Value) (runtime.Value, error) {
	l, r, err := numberOperands(op, left, right)
	if err != nil {
		return nil, err
	}
	switch op.Type {
	case runtime.TokenGreater:
		return runtime.BoolValue{Val: l > r}, nil
	case runtime.TokenGreaterEqual:
		return runtime.BoolValue{Val: l >= r}, nil
	case runtime.TokenLess:
		return runtime.BoolValue{Val: l < r}, nil
	case runtime.TokenLessEqual:
		return runtime.BoolValue{Val: l <= r}, nil
	default:
		return nil, fmt.Errorf("unsupported comparison operator %s", op.Lexeme)
	}
}

func numberOperands(op runtime.Token, left runtime.Value, right runtime.Value) (float64, float64, error) {
	lv, lok := left.(runtime.NumberValue)
	rv, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return 0, 0, runtime.NewRuntimeError(op, "Operands must be numbers.")
	}
	return lv.Val, rv.Val, nil
}
