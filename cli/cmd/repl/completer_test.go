package repl

import "testing"

func TestWordBounds_ExprOperators(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"after_plus", "a + sq", 6, "sq", 4, 6},
		{"after_paren", "sqrt(pi", 7, "pi", 5, 7},
		{"after_comma", "min(a, fl", 9, "fl", 7, 9},
		{"after_comparison", "a > fl", 6, "fl", 4, 6},
		{"after_shift", "x << co", 7, "co", 5, 7},
		{"after_power", "2 ** sq", 7, "sq", 5, 7},
		{"in_lambda_body", "|x| x + sq", 10, "sq", 8, 10},
		{"in_list", "[1, ro", 6, "ro", 4, 6},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "foobar", 3, "foobar", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"between_operators", "a+b", 2, "b", 2, 3},
		{"underscore", "my_var", 6, "my_var", 0, 6},
		{"after_assign", "x = sq", 6, "sq", 4, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestIsDigits(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"123", true},
		{"0", true},
		{"", false},
		{"0x", false},
		{"12a", false},
		{"sqrt", false},
	}

	for _, tt := range tests {
		if got := isDigits(tt.word); got != tt.want {
			t.Errorf("isDigits(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
