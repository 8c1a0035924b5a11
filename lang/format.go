package lang

import (
	"strconv"
	"strings"
)

// FormatValue renders a value the way the REPL echoes results. Ints honor
// their display radix; floats use the shortest exact decimal form.
func FormatValue(v Value) string {
	switch v.Kind {
	case ValueInt:
		return formatInt(v.Int, v.Radix)

	case ValueFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)

	case ValueBool:
		return strconv.FormatBool(v.Bool)

	case ValueList:
		elems := make([]string, len(v.List))
		for i, e := range v.List {
			elems[i] = FormatValue(e)
		}

		return "[" + strings.Join(elems, ", ") + "]"

	case ValueClosure:
		return "|" + strings.Join(v.Closure.Params, ", ") + "| " +
			v.Closure.Body.String()

	case ValueBuiltin:
		return "<builtin " + v.Builtin.Name + ">"

	default:
		return "<invalid>"
	}
}

// formatInt renders an integer in its display radix. Negative values keep
// the sign ahead of the radix prefix: -0xff.
func formatInt(i int64, radix Radix) string {
	if radix == RadixDecimal || radix == 0 {
		return strconv.FormatInt(i, 10)
	}

	sign := ""
	if i < 0 {
		sign, i = "-", -i
	}

	return sign + radix.Prefix() + strconv.FormatInt(i, int(radix))
}

// Interface converts a value to plain Go types for structured encoders.
// Functions encode as their source rendering.
func (v Value) Interface() any {
	switch v.Kind {
	case ValueInt:
		return v.Int
	case ValueFloat:
		return v.Float
	case ValueBool:
		return v.Bool
	case ValueList:
		elems := make([]any, len(v.List))
		for i, e := range v.List {
			elems[i] = e.Interface()
		}

		return elems
	default:
		return FormatValue(v)
	}
}
