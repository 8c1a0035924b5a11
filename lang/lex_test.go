package lang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		tokens []Token
	}{
		{
			name:  "decimal int",
			input: "42",
			tokens: []Token{
				{Kind: KindNumber, Lexeme: "42", Pos: 0, Int: 42, Radix: RadixDecimal},
			},
		},
		{
			name:  "hex literal",
			input: "0xff",
			tokens: []Token{
				{Kind: KindNumber, Lexeme: "0xff", Pos: 0, Int: 255, Radix: RadixHex},
			},
		},
		{
			name:  "binary literal",
			input: "0b1010",
			tokens: []Token{
				{Kind: KindNumber, Lexeme: "0b1010", Pos: 0, Int: 10, Radix: RadixBinary},
			},
		},
		{
			name:  "float literal",
			input: "3.25",
			tokens: []Token{
				{Kind: KindNumber, Lexeme: "3.25", Pos: 0, Float: 3.25, IsFloat: true, Radix: RadixDecimal},
			},
		},
		{
			name:  "two char operators",
			input: "** << >> == != <= >=",
			tokens: []Token{
				{Kind: KindOperator, Lexeme: "**", Pos: 0},
				{Kind: KindOperator, Lexeme: "<<", Pos: 3},
				{Kind: KindOperator, Lexeme: ">>", Pos: 6},
				{Kind: KindOperator, Lexeme: "==", Pos: 9},
				{Kind: KindOperator, Lexeme: "!=", Pos: 12},
				{Kind: KindOperator, Lexeme: "<=", Pos: 15},
				{Kind: KindOperator, Lexeme: ">=", Pos: 18},
			},
		},
		{
			name:  "keywords and identifiers",
			input: "let x true false lettuce",
			tokens: []Token{
				{Kind: KindKeyword, Lexeme: "let", Pos: 0},
				{Kind: KindIdent, Lexeme: "x", Pos: 4},
				{Kind: KindKeyword, Lexeme: "true", Pos: 6},
				{Kind: KindKeyword, Lexeme: "false", Pos: 11},
				{Kind: KindIdent, Lexeme: "lettuce", Pos: 17},
			},
		},
		{
			name:  "expression with punctuation",
			input: "f(1, [2])",
			tokens: []Token{
				{Kind: KindIdent, Lexeme: "f", Pos: 0},
				{Kind: KindPunct, Lexeme: "(", Pos: 1},
				{Kind: KindNumber, Lexeme: "1", Pos: 2, Int: 1, Radix: RadixDecimal},
				{Kind: KindPunct, Lexeme: ",", Pos: 3},
				{Kind: KindPunct, Lexeme: "[", Pos: 5},
				{Kind: KindNumber, Lexeme: "2", Pos: 6, Int: 2, Radix: RadixDecimal},
				{Kind: KindPunct, Lexeme: "]", Pos: 7},
				{Kind: KindPunct, Lexeme: ")", Pos: 8},
			},
		},
		{
			name:  "adjacent star star is power not mul",
			input: "2**3",
			tokens: []Token{
				{Kind: KindNumber, Lexeme: "2", Pos: 0, Int: 2, Radix: RadixDecimal},
				{Kind: KindOperator, Lexeme: "**", Pos: 1},
				{Kind: KindNumber, Lexeme: "3", Pos: 3, Int: 3, Radix: RadixDecimal},
			},
		},
		{
			name:   "blank input",
			input:  "   \t ",
			tokens: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Tokenize(tc.input)
			require.NoError(t, err)

			// Every stream ends with EOF.
			require.NotEmpty(t, got)
			assert.Equal(t, KindEOF, got[len(got)-1].Kind)

			assert.Equal(t, tc.tokens, got[:len(got)-1])
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		pos   int
	}{
		{name: "unknown character", input: "1 + $", pos: 4},
		{name: "bare hex prefix", input: "0x", pos: 0},
		{name: "bare binary prefix", input: "0b + 1", pos: 0},
		{name: "trailing dot", input: "1.", pos: 0},
		{name: "lone bang", input: "1 ! 2", pos: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Tokenize(tc.input)
			require.ErrorIs(t, err, ErrLex)

			e := &Error{}
			require.ErrorAs(t, err, &e)

			pos, ok := e.Position()
			require.True(t, ok)
			assert.Equal(t, tc.pos, pos)
		})
	}
}

func TestTokenizeRadixEquivalence(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"0xff", "0b11111111", "255"} {
		tokens, err := Tokenize(input)
		require.NoError(t, err)
		require.Len(t, tokens, 2)

		assert.Equal(t, int64(255), tokens[0].Int, "input %q", input)
	}
}

func TestAnnotate(t *testing.T) {
	t.Parallel()

	_, err := Tokenize("1 + $")
	require.Error(t, err)

	got := Annotate(err, "1 + $")
	assert.Contains(t, got, "1 + $")
	assert.Contains(t, got, "column 5")

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  1 | 1 + $", lines[1])
	assert.Equal(t, "          ^", lines[2])
}
