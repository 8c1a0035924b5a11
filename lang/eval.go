package lang

import (
	"log/slog"
	"math"
)

// evaluator walks one expression tree against an environment. A fresh
// evaluator is created per input line; only the recursion depth travels
// with it.
type evaluator struct {
	session *Session
	depth   int
}

// eval dispatches on the node kind. Operand evaluation is eager and
// strictly left-to-right, depth-first; assignments committed before an
// error surfaces remain in effect.
func (ev *evaluator) eval(node Expr, env *Env) (Value, error) {
	switch n := node.(type) {
	case *Literal:
		return n.Val, nil

	case *Ident:
		return ev.lookup(n, env)

	case *Group:
		return ev.eval(n.Inner, env)

	case *Unary:
		return ev.evalUnary(n, env)

	case *Binary:
		return ev.evalBinary(n, env)

	case *Assign:
		v, err := ev.eval(n.Value, env)
		if err != nil {
			return Value{}, err
		}

		env.Set(n.Name, v)

		return v, nil

	case *Call:
		return ev.evalCall(n, env)

	case *Lambda:
		return Value{
			Kind:    ValueClosure,
			Closure: &Closure{Params: n.Params, Body: n.Body, Env: env},
		}, nil

	case *List:
		elems := make([]Value, 0, len(n.Elems))

		for _, e := range n.Elems {
			v, err := ev.eval(e, env)
			if err != nil {
				return Value{}, err
			}

			elems = append(elems, v)
		}

		return ListValue(elems), nil

	default:
		return Value{}, ErrSyntax.At(node.Pos()).
			With(slog.String("expected", "evaluable expression"))
	}
}

// lookup resolves an identifier through the scope chain, then the builtin
// catalog. User bindings shadow builtins.
func (ev *evaluator) lookup(n *Ident, env *Env) (Value, error) {
	if v, ok := env.Get(n.Name); ok {
		return v, nil
	}

	if v, ok := builtins()[n.Name]; ok {
		return v, nil
	}

	return Value{}, ErrUndefinedVariable.At(n.Offset).
		With(slog.String("name", n.Name))
}

func (ev *evaluator) evalUnary(n *Unary, env *Env) (Value, error) {
	operand, err := ev.eval(n.Operand, env)
	if err != nil {
		return Value{}, err
	}

	switch n.Op.Lexeme {
	case "-":
		switch operand.Kind {
		case ValueInt:
			return IntValue(-operand.Int), nil
		case ValueFloat:
			return FloatValue(-operand.Float), nil
		}

		return Value{}, typeError(n.Op, "number", operand)

	case "~":
		if operand.Kind == ValueInt {
			return IntValue(^operand.Int), nil
		}

		return Value{}, typeError(n.Op, "int", operand)

	default:
		return Value{}, ErrSyntax.At(n.Op.Pos).
			With(slog.String("expected", "unary operator"))
	}
}

func (ev *evaluator) evalBinary(n *Binary, env *Env) (Value, error) {
	left, err := ev.eval(n.Left, env)
	if err != nil {
		return Value{}, err
	}

	right, err := ev.eval(n.Right, env)
	if err != nil {
		return Value{}, err
	}

	switch n.Op.Lexeme {
	case "+", "-", "*", "/", "%", "**":
		return applyArith(n.Op, left, right)

	case "&", "|", "^", "<<", ">>":
		return applyBitwise(n.Op, left, right)

	case "==", "!=", "<", ">", "<=", ">=":
		return applyCompare(n.Op, left, right)

	default:
		return Value{}, ErrSyntax.At(n.Op.Pos).
			With(slog.String("expected", "binary operator"))
	}
}

// applyArith implements the arithmetic type rule: Int⊕Int stays Int except
// for inexact division and negative integer exponents, which promote to
// Float; any Float operand promotes the whole operation to Float.
func applyArith(op Token, left, right Value) (Value, error) {
	if !left.IsNumber() {
		return Value{}, typeError(op, "number", left)
	}

	if !right.IsNumber() {
		return Value{}, typeError(op, "number", right)
	}

	if left.Kind == ValueInt && right.Kind == ValueInt {
		return applyArithInt(op, left.Int, right.Int)
	}

	l, r := left.AsFloat(), right.AsFloat()

	switch op.Lexeme {
	case "+":
		return FloatValue(l + r), nil
	case "-":
		return FloatValue(l - r), nil
	case "*":
		return FloatValue(l * r), nil
	case "/":
		if r == 0 {
			return Value{}, ErrDivisionByZero.At(op.Pos)
		}

		return FloatValue(l / r), nil
	case "%":
		if r == 0 {
			return Value{}, ErrDivisionByZero.At(op.Pos)
		}

		return FloatValue(math.Mod(l, r)), nil
	default: // **
		return FloatValue(math.Pow(l, r)), nil
	}
}

func applyArithInt(op Token, l, r int64) (Value, error) {
	switch op.Lexeme {
	case "+":
		return IntValue(l + r), nil
	case "-":
		return IntValue(l - r), nil
	case "*":
		return IntValue(l * r), nil
	case "/":
		if r == 0 {
			return Value{}, ErrDivisionByZero.At(op.Pos)
		}

		if l%r != 0 {
			// Inexact division promotes to Float.
			return FloatValue(float64(l) / float64(r)), nil
		}

		return IntValue(l / r), nil
	case "%":
		if r == 0 {
			return Value{}, ErrDivisionByZero.At(op.Pos)
		}

		return IntValue(l % r), nil
	default: // **
		if r < 0 {
			return FloatValue(math.Pow(float64(l), float64(r))), nil
		}

		return IntValue(intPow(l, r)), nil
	}
}

// intPow raises base to a non-negative exponent by binary exponentiation.
func intPow(base, exp int64) int64 {
	result := int64(1)

	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}

		base *= base
		exp >>= 1
	}

	return result
}

// applyBitwise requires both operands to be Int. A Float operand is a
// TypeMismatch, never a silent truncation.
func applyBitwise(op Token, left, right Value) (Value, error) {
	if left.Kind != ValueInt {
		return Value{}, typeError(op, "int", left)
	}

	if right.Kind != ValueInt {
		return Value{}, typeError(op, "int", right)
	}

	l, r := left.Int, right.Int

	switch op.Lexeme {
	case "&":
		return IntValue(l & r), nil
	case "|":
		return IntValue(l | r), nil
	case "^":
		return IntValue(l ^ r), nil
	case "<<", ">>":
		if r < 0 || r > 63 {
			return Value{}, ErrTypeMismatch.At(op.Pos).With(
				slog.String("operator", op.Lexeme),
				slog.Int64("shift", r),
				slog.String("reason", "shift count out of range"),
			)
		}

		if op.Lexeme == "<<" {
			return IntValue(l << uint64(r)), nil
		}

		return IntValue(l >> uint64(r)), nil
	default:
		return Value{}, ErrSyntax.At(op.Pos).
			With(slog.String("expected", "bitwise operator"))
	}
}

// applyCompare compares numbers in a common numeric domain. Equality also
// covers Bool operands; ordering requires numbers.
func applyCompare(op Token, left, right Value) (Value, error) {
	if op.Lexeme == "==" || op.Lexeme == "!=" {
		if left.Kind == ValueBool && right.Kind == ValueBool {
			eq := left.Bool == right.Bool

			return BoolValue(eq == (op.Lexeme == "==")), nil
		}
	}

	if !left.IsNumber() {
		return Value{}, typeError(op, "number", left)
	}

	if !right.IsNumber() {
		return Value{}, typeError(op, "number", right)
	}

	var lt, eq bool

	if left.Kind == ValueInt && right.Kind == ValueInt {
		lt, eq = left.Int < right.Int, left.Int == right.Int
	} else {
		l, r := left.AsFloat(), right.AsFloat()
		lt, eq = l < r, l == r
	}

	switch op.Lexeme {
	case "==":
		return BoolValue(eq), nil
	case "!=":
		return BoolValue(!eq), nil
	case "<":
		return BoolValue(lt), nil
	case "<=":
		return BoolValue(lt || eq), nil
	case ">":
		return BoolValue(!lt && !eq), nil
	default: // >=
		return BoolValue(!lt), nil
	}
}

func (ev *evaluator) evalCall(n *Call, env *Env) (Value, error) {
	callee, err := ev.eval(n.Callee, env)
	if err != nil {
		return Value{}, err
	}

	args := make([]Value, 0, len(n.Args))

	for _, a := range n.Args {
		v, err := ev.eval(a, env)
		if err != nil {
			return Value{}, err
		}

		args = append(args, v)
	}

	return ev.call(callee, args, n.Offset)
}

// call invokes a closure or builtin. Arity is validated here, at call time.
func (ev *evaluator) call(callee Value, args []Value, pos int) (Value, error) {
	switch callee.Kind {
	case ValueBuiltin:
		b := callee.Builtin

		if (b.Variadic && len(args) < b.Arity) ||
			(!b.Variadic && len(args) != b.Arity) {
			return Value{}, ErrArityMismatch.At(pos).With(
				slog.String("function", b.Name),
				slog.Int("expected", b.Arity),
				slog.Int("got", len(args)),
			)
		}

		return b.Fn(ev, pos, args)

	case ValueClosure:
		cl := callee.Closure

		if len(args) != len(cl.Params) {
			return Value{}, ErrArityMismatch.At(pos).With(
				slog.Int("expected", len(cl.Params)),
				slog.Int("got", len(args)),
			)
		}

		ev.depth++
		defer func() { ev.depth-- }()

		if ev.depth > ev.session.maxDepth {
			return Value{}, ErrRecursionLimit.At(pos).
				With(slog.Int("max_depth", ev.session.maxDepth))
		}

		// The call scope chains to the closure's captured scope, not the
		// caller's, giving lexical rather than dynamic binding.
		scope := NewEnv(cl.Env)
		for i, param := range cl.Params {
			scope.Set(param, args[i])
		}

		return ev.eval(cl.Body, scope)

	default:
		return Value{}, ErrNotCallable.At(pos).
			With(slog.String("type", callee.Kind.String()))
	}
}

func typeError(op Token, want string, got Value) error {
	return ErrTypeMismatch.At(op.Pos).With(
		slog.String("operator", op.Lexeme),
		slog.String("expected", want),
		slog.String("got", got.Kind.String()),
	)
}
