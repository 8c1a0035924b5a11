package lang

// ValueKind discriminates the runtime value union.
type ValueKind int

const (
	ValueInt ValueKind = iota
	ValueFloat
	ValueBool
	ValueList
	ValueClosure
	ValueBuiltin
)

// String returns the type name used in error messages.
func (k ValueKind) String() string {
	switch k {
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueBool:
		return "bool"
	case ValueList:
		return "list"
	case ValueClosure:
		return "function"
	case ValueBuiltin:
		return "builtin"
	default:
		return "unknown"
	}
}

// Value is the tagged union of runtime values. Exactly one payload field is
// meaningful based on Kind.
type Value struct {
	Kind ValueKind

	Int   int64
	Float float64
	Bool  bool
	Radix Radix // display radix for ValueInt; RadixDecimal unless tagged

	List []Value

	Closure *Closure
	Builtin *Builtin
}

// Closure is a user-defined function paired with a shared reference to the
// scope it was defined in. The captured scope stays alive as long as any
// closure references it, even after the creating frame returns.
type Closure struct {
	Params []string
	Body   Expr
	Env    *Env
}

// BuiltinFunc is the native operation behind a builtin. It receives the
// evaluator so higher-order builtins can invoke function arguments and the
// reset builtin can reach the session.
type BuiltinFunc func(ev *evaluator, pos int, args []Value) (Value, error)

// Builtin is a fixed, non-user-definable named function from the native
// catalog.
type Builtin struct {
	Name     string
	Params   []string // parameter names for signature hints
	Arity    int      // exact count, or minimum when Variadic
	Variadic bool
	Fn       BuiltinFunc
}

// IntValue returns an Int displayed in base 10.
func IntValue(i int64) Value {
	return Value{Kind: ValueInt, Int: i, Radix: RadixDecimal}
}

// IntValueRadix returns an Int tagged with a display radix.
func IntValueRadix(i int64, radix Radix) Value {
	return Value{Kind: ValueInt, Int: i, Radix: radix}
}

// FloatValue returns a Float.
func FloatValue(f float64) Value {
	return Value{Kind: ValueFloat, Float: f}
}

// BoolValue returns a Bool.
func BoolValue(b bool) Value {
	return Value{Kind: ValueBool, Bool: b}
}

// ListValue returns a List over the given elements.
func ListValue(elems []Value) Value {
	return Value{Kind: ValueList, List: elems}
}

// IsNumber reports whether the value is an Int or a Float.
func (v Value) IsNumber() bool {
	return v.Kind == ValueInt || v.Kind == ValueFloat
}

// IsCallable reports whether the value can be invoked.
func (v Value) IsCallable() bool {
	return v.Kind == ValueClosure || v.Kind == ValueBuiltin
}

// AsFloat returns the numeric value promoted to float64.
// Only meaningful when IsNumber reports true.
func (v Value) AsFloat() float64 {
	if v.Kind == ValueInt {
		return float64(v.Int)
	}

	return v.Float
}

// Equal reports deep equality of two values. Int and Float compare
// numerically after promotion; display radix is ignored.
func (v Value) Equal(o Value) bool {
	switch {
	case v.IsNumber() && o.IsNumber():
		if v.Kind == ValueInt && o.Kind == ValueInt {
			return v.Int == o.Int
		}

		return v.AsFloat() == o.AsFloat()

	case v.Kind == ValueBool && o.Kind == ValueBool:
		return v.Bool == o.Bool

	case v.Kind == ValueList && o.Kind == ValueList:
		if len(v.List) != len(o.List) {
			return false
		}

		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}

		return true

	case v.Kind == ValueClosure && o.Kind == ValueClosure:
		return v.Closure == o.Closure

	case v.Kind == ValueBuiltin && o.Kind == ValueBuiltin:
		return v.Builtin == o.Builtin

	default:
		return false
	}
}
