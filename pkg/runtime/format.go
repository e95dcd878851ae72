package runtime

import (
	"fmt"
	"math"
)

// Format renders a value the way `print` shows it.
func Format(val Value) string {
	switch v := val.(type) {
	case nil:
		return "nil"
	case NilValue:
		return "nil"
	case BoolValue:
		if v.Val {
			return "true"
		}
		return "false"
	case NumberValue:
		return FormatNumber(v.Val)
	case StringValue:
		return v.Val
	default:
		return fmt.Sprintf("[%s]", val.Kind())
	}
}

// FormatNumber prints n with the fewest digits that still parse back to n.
// The exponent form kicks in at the same thresholds as C's %g.
func FormatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "nan"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	return fmt.Sprintf("%g", n)
}
