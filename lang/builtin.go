package lang

import (
	"log/slog"
	"math"
	"slices"
	"sync"
)

// builtins returns the native function and constant catalog, constructed
// once and shared by every session. User bindings shadow these names but
// never replace them; reset restores shadowed builtins to view.
// Assigned in init to break the initialization cycle through eval/lookup.
var builtins func() map[string]Value

func init() {
	builtins = sync.OnceValue(buildBuiltins)
}

func buildBuiltins() map[string]Value {
	catalog := map[string]Value{
		"pi": FloatValue(math.Pi),
		"e":  FloatValue(math.E),
	}

	register := func(b *Builtin) {
		catalog[b.Name] = Value{Kind: ValueBuiltin, Builtin: b}
	}

	// Unary math over any number, always yielding Float.
	for name, fn := range map[string]func(float64) float64{
		"sin":  math.Sin,
		"cos":  math.Cos,
		"tan":  math.Tan,
		"asin": math.Asin,
		"acos": math.Acos,
		"atan": math.Atan,
		"ln":   math.Log,
		"log":  math.Log10,
		"log2": math.Log2,
		"exp":  math.Exp,
		"sqrt": math.Sqrt,
		"cbrt": math.Cbrt,
	} {
		register(floatBuiltin(name, fn))
	}

	register(&Builtin{
		Name: "sq", Params: []string{"x"}, Arity: 1,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			return applyArith(Token{Lexeme: "*", Pos: pos}, args[0], args[0])
		},
	})

	register(&Builtin{
		Name: "cube", Params: []string{"x"}, Arity: 1,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			v, err := applyArith(Token{Lexeme: "*", Pos: pos}, args[0], args[0])
			if err != nil {
				return Value{}, err
			}

			return applyArith(Token{Lexeme: "*", Pos: pos}, v, args[0])
		},
	})

	register(&Builtin{
		Name: "abs", Params: []string{"x"}, Arity: 1,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			switch args[0].Kind {
			case ValueInt:
				if args[0].Int < 0 {
					return IntValue(-args[0].Int), nil
				}

				return args[0], nil
			case ValueFloat:
				return FloatValue(math.Abs(args[0].Float)), nil
			default:
				return Value{}, builtinTypeError("abs", pos, "number", args[0])
			}
		},
	})

	// Rounding family: Float in, Int out. Int passes through unchanged.
	for name, fn := range map[string]func(float64) float64{
		"floor": math.Floor,
		"ceil":  math.Ceil,
		"round": math.Round,
		"trunc": math.Trunc,
	} {
		register(roundingBuiltin(name, fn))
	}

	register(&Builtin{
		Name: "int", Params: []string{"x"}, Arity: 1,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			switch args[0].Kind {
			case ValueInt:
				return args[0], nil
			case ValueFloat:
				return IntValue(int64(args[0].Float)), nil
			default:
				return Value{}, builtinTypeError("int", pos, "number", args[0])
			}
		},
	})

	register(&Builtin{
		Name: "float", Params: []string{"x"}, Arity: 1,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			if !args[0].IsNumber() {
				return Value{}, builtinTypeError("float", pos, "number", args[0])
			}

			return FloatValue(args[0].AsFloat()), nil
		},
	})

	register(radixBuiltin("hex", RadixHex))
	register(radixBuiltin("bin", RadixBinary))
	register(radixBuiltin("dec", RadixDecimal))

	register(extremumBuiltin("min", func(op Token, a, b Value) bool {
		v, _ := applyCompare(op, a, b)

		return v.Bool
	}, "<"))

	register(extremumBuiltin("max", func(op Token, a, b Value) bool {
		v, _ := applyCompare(op, a, b)

		return v.Bool
	}, ">"))

	register(&Builtin{
		Name: "len", Params: []string{"list"}, Arity: 1,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			if args[0].Kind != ValueList {
				return Value{}, builtinTypeError("len", pos, "list", args[0])
			}

			return IntValue(int64(len(args[0].List))), nil
		},
	})

	register(&Builtin{
		Name: "sum", Params: []string{"list"}, Arity: 1,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			if args[0].Kind != ValueList {
				return Value{}, builtinTypeError("sum", pos, "list", args[0])
			}

			total := IntValue(0)
			for _, e := range args[0].List {
				v, err := applyArith(Token{Lexeme: "+", Pos: pos}, total, e)
				if err != nil {
					return Value{}, err
				}

				total = v
			}

			return total, nil
		},
	})

	register(&Builtin{
		Name: "map", Params: []string{"list", "fn"}, Arity: 2,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			list, fn, err := listAndFn("map", pos, args[0], args[1])
			if err != nil {
				return Value{}, err
			}

			out := make([]Value, 0, len(list))

			for _, e := range list {
				v, err := ev.call(fn, []Value{e}, pos)
				if err != nil {
					return Value{}, err
				}

				out = append(out, v)
			}

			return ListValue(out), nil
		},
	})

	register(&Builtin{
		Name: "filter", Params: []string{"list", "fn"}, Arity: 2,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			list, fn, err := listAndFn("filter", pos, args[0], args[1])
			if err != nil {
				return Value{}, err
			}

			var out []Value

			for _, e := range list {
				v, err := ev.call(fn, []Value{e}, pos)
				if err != nil {
					return Value{}, err
				}

				if v.Kind != ValueBool {
					return Value{}, builtinTypeError("filter", pos, "bool", v)
				}

				if v.Bool {
					out = append(out, e)
				}
			}

			return ListValue(out), nil
		},
	})

	register(&Builtin{
		Name: "reduce", Params: []string{"list", "init", "fn"}, Arity: 3,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			list, fn, err := listAndFn("reduce", pos, args[0], args[2])
			if err != nil {
				return Value{}, err
			}

			acc := args[1]

			for _, e := range list {
				acc, err = ev.call(fn, []Value{acc, e}, pos)
				if err != nil {
					return Value{}, err
				}
			}

			return acc, nil
		},
	})

	register(&Builtin{
		Name: "reset", Arity: 0,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			n := ev.session.global.Len()
			ev.session.global.Reset()

			return IntValue(int64(n)), nil
		},
	})

	return catalog
}

// BuiltinNames returns every builtin and constant name, sorted.
var BuiltinNames = sync.OnceValue(func() []string {
	names := make([]string, 0, len(builtins()))
	for name := range builtins() {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
})

// floatBuiltin wraps a math function taking and returning float64. Int
// arguments are promoted.
func floatBuiltin(name string, fn func(float64) float64) *Builtin {
	return &Builtin{
		Name: name, Params: []string{"x"}, Arity: 1,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			if !args[0].IsNumber() {
				return Value{}, builtinTypeError(name, pos, "number", args[0])
			}

			return FloatValue(fn(args[0].AsFloat())), nil
		},
	}
}

// roundingBuiltin wraps a rounding function, converting the result to Int.
func roundingBuiltin(name string, fn func(float64) float64) *Builtin {
	return &Builtin{
		Name: name, Params: []string{"x"}, Arity: 1,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			switch args[0].Kind {
			case ValueInt:
				return args[0], nil
			case ValueFloat:
				return IntValue(int64(fn(args[0].Float))), nil
			default:
				return Value{}, builtinTypeError(name, pos, "number", args[0])
			}
		},
	}
}

// radixBuiltin tags an Int with a display radix. The numeric value is
// unchanged; only formatting differs.
func radixBuiltin(name string, radix Radix) *Builtin {
	return &Builtin{
		Name: name, Params: []string{"n"}, Arity: 1,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			if args[0].Kind != ValueInt {
				return Value{}, builtinTypeError(name, pos, "int", args[0])
			}

			return IntValueRadix(args[0].Int, radix), nil
		},
	}
}

// extremumBuiltin selects among one or more numeric arguments using the
// given ordering operator.
func extremumBuiltin(
	name string, prefer func(Token, Value, Value) bool, op string,
) *Builtin {
	return &Builtin{
		Name: name, Params: []string{"x", "..."}, Arity: 1, Variadic: true,
		Fn: func(ev *evaluator, pos int, args []Value) (Value, error) {
			tok := Token{Lexeme: op, Pos: pos}

			best := args[0]
			if !best.IsNumber() {
				return Value{}, builtinTypeError(name, pos, "number", best)
			}

			for _, a := range args[1:] {
				if !a.IsNumber() {
					return Value{}, builtinTypeError(name, pos, "number", a)
				}

				if prefer(tok, a, best) {
					best = a
				}
			}

			return best, nil
		},
	}
}

func listAndFn(
	name string, pos int, list, fn Value,
) ([]Value, Value, error) {
	if list.Kind != ValueList {
		return nil, Value{}, builtinTypeError(name, pos, "list", list)
	}

	if !fn.IsCallable() {
		return nil, Value{}, ErrNotCallable.At(pos).With(
			slog.String("function", name),
			slog.String("got", fn.Kind.String()),
		)
	}

	return list.List, fn, nil
}

func builtinTypeError(name string, pos int, want string, got Value) error {
	return ErrTypeMismatch.At(pos).With(
		slog.String("function", name),
		slog.String("expected", want),
		slog.String("got", got.Kind.String()),
	)
}
