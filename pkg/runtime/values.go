package runtime

import "fmt"

// Kind identifies the runtime value category.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
	isValue()
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }
func (NilValue) isValue()   {}

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }
func (BoolValue) isValue()     {}

// NumberValue is the only numeric type; every Lox number is a float64.
type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }
func (NumberValue) isValue()     {}

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }
func (StringValue) isValue()     {}

//-----------------------------------------------------------------------------
// Semantics shared by the evaluator and the printers
//-----------------------------------------------------------------------------

// IsTruthy reports the truthiness of a value: nil and false are falsey,
// everything else (including 0 and "") is truthy.
func IsTruthy(val Value) bool {
	switch v := val.(type) {
	case nil:
		return false
	case NilValue:
		return false
	case BoolValue:
		return v.Val
	default:
		return true
	}
}

// IsNumber reports whether val can take part in arithmetic.
func IsNumber(val Value) bool {
	_, ok := val.(NumberValue)
	return ok
}

// ValuesEqual compares two values structurally. Values of different kinds
// are never equal.
func ValuesEqual(left Value, right Value) bool {
	if left == nil {
		left = NilValue{}
	}
	if right == nil {
		right = NilValue{}
	}
	switch lv := left.(type) {
	case NilValue:
		_, ok := right.(NilValue)
		return ok
	case BoolValue:
		if rv, ok := right.(BoolValue); ok {
			return lv.Val == rv.Val
		}
	case NumberValue:
		if rv, ok := right.(NumberValue); ok {
			return lv.Val == rv.Val
		}
	case StringValue:
		if rv, ok := right.(StringValue); ok {
			return lv.Val == rv.Val
		}
	}
	return false
}

// FromGo converts a decoded scalar (as produced by encoding/json or yaml.v3)
// into a runtime value.
func FromGo(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return NilValue{}, nil
	case bool:
		return BoolValue{Val: v}, nil
	case string:
		return StringValue{Val: v}, nil
	case float64:
		return NumberValue{Val: v}, nil
	case float32:
		return NumberValue{Val: float64(v)}, nil
	case int:
		return NumberValue{Val: float64(v)}, nil
	case int64:
		return NumberValue{Val: float64(v)}, nil
	case uint64:
		return NumberValue{Val: float64(v)}, nil
	default:
		return nil, fmt.Errorf("unsupported literal value %T", raw)
	}
}
