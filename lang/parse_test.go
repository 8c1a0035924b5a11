package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParsePrecedence checks operator binding via the canonical String
// rendering of the parsed tree, wrapped to make grouping explicit.
func TestParsePrecedence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "mul binds tighter than add",
			input: "1 + 2 * 3",
			want:  "(1 + (2 * 3))",
		},
		{
			name:  "shift binds tighter than relational",
			input: "1 << 2 < 3",
			want:  "((1 << 2) < 3)",
		},
		{
			name:  "bitwise or is loosest",
			input: "1 | 2 ^ 3 & 4",
			want:  "(1 | (2 ^ (3 & 4)))",
		},
		{
			name:  "equality above bitwise",
			input: "1 & 2 == 3",
			want:  "(1 & (2 == 3))",
		},
		{
			name:  "power is right associative",
			input: "2 ** 3 ** 2",
			want:  "(2 ** (3 ** 2))",
		},
		{
			name:  "unary binds tighter than power",
			input: "-2 ** 2",
			want:  "((-2) ** 2)",
		},
		{
			name:  "left associative subtraction",
			input: "10 - 4 - 3",
			want:  "((10 - 4) - 3)",
		},
		{
			name:  "assignment is right associative",
			input: "a = b = 1",
			want:  "(a = (b = 1))",
		},
		{
			name:  "unary not stacks",
			input: "~~5",
			want:  "(~(~5))",
		},
		{
			name:  "call suffix chains",
			input: "f(1)(2)",
			want:  "f(1)(2)",
		},
		{
			name:  "lambda body extends right",
			input: "|x| x + 1",
			want:  "|x| (x + 1)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			expr, err := ParseString(tc.input)
			require.NoError(t, err)

			assert.Equal(t, tc.want, renderGrouped(expr))
		})
	}
}

// renderGrouped is like Expr.String but parenthesizes every compound node so
// tests can assert the exact tree shape.
func renderGrouped(e Expr) string {
	switch n := e.(type) {
	case *Unary:
		return "(" + n.Op.Lexeme + renderGrouped(n.Operand) + ")"
	case *Binary:
		return "(" + renderGrouped(n.Left) + " " + n.Op.Lexeme + " " +
			renderGrouped(n.Right) + ")"
	case *Assign:
		return "(" + n.Name + " = " + renderGrouped(n.Value) + ")"
	case *Group:
		return renderGrouped(n.Inner)
	case *Call:
		out := renderGrouped(n.Callee) + "("
		for i, a := range n.Args {
			if i > 0 {
				out += ", "
			}
			out += renderGrouped(a)
		}

		return out + ")"
	case *Lambda:
		out := "|"
		for i, p := range n.Params {
			if i > 0 {
				out += ", "
			}
			out += p
		}

		return out + "| " + renderGrouped(n.Body)
	default:
		return e.String()
	}
}

func TestParseForms(t *testing.T) {
	t.Parallel()

	t.Run("let assignment", func(t *testing.T) {
		t.Parallel()

		expr, err := ParseString("let x = 5")
		require.NoError(t, err)

		assign, ok := expr.(*Assign)
		require.True(t, ok)
		assert.Equal(t, "x", assign.Name)
	})

	t.Run("bare assignment", func(t *testing.T) {
		t.Parallel()

		expr, err := ParseString("x = 5")
		require.NoError(t, err)

		_, ok := expr.(*Assign)
		assert.True(t, ok)
	})

	t.Run("lambda params", func(t *testing.T) {
		t.Parallel()

		expr, err := ParseString("|a, b| a + b")
		require.NoError(t, err)

		fn, ok := expr.(*Lambda)
		require.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, fn.Params)
	})

	t.Run("zero param lambda", func(t *testing.T) {
		t.Parallel()

		expr, err := ParseString("|| 42")
		require.NoError(t, err)

		fn, ok := expr.(*Lambda)
		require.True(t, ok)
		assert.Empty(t, fn.Params)
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		expr, err := ParseString("[]")
		require.NoError(t, err)

		list, ok := expr.(*List)
		require.True(t, ok)
		assert.Empty(t, list.Elems)
	})

	t.Run("nested list", func(t *testing.T) {
		t.Parallel()

		expr, err := ParseString("[1, [2, 3]]")
		require.NoError(t, err)
		assert.Equal(t, "[1, [2, 3]]", expr.String())
	})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "trailing operator", input: "1 +"},
		{name: "unmatched paren", input: "(1 + 2"},
		{name: "unmatched bracket", input: "[1, 2"},
		{name: "trailing tokens", input: "1 2"},
		{name: "trailing close paren", input: "1 + 2)"},
		{name: "assignment to literal", input: "3 = 4"},
		{name: "assignment to call", input: "f(1) = 4"},
		{name: "let without identifier", input: "let 3 = 4"},
		{name: "let without equals", input: "let x 4"},
		{name: "lambda missing param separator", input: "|a b| a"},
		{name: "dangling comma in call", input: "f(1,)"},
		{name: "operator only", input: "**"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseString(tc.input)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}
