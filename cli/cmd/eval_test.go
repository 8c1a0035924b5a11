package cmd

import (
	"context"
	"testing"
)

// TestEvalRun tests the Eval.Run command.
func TestEvalRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		exprs   []string
		output  string
		wantErr bool
	}{
		{
			name:    "single_expression",
			exprs:   []string{"1 + 2"},
			output:  "text",
			wantErr: false,
		},
		{
			name:    "session_carries_across_arguments",
			exprs:   []string{"x = 3", "x * x"},
			output:  "text",
			wantErr: false,
		},
		{
			name:    "ans_binding",
			exprs:   []string{"6 * 7", "ans + 1"},
			output:  "text",
			wantErr: false,
		},
		{
			name:    "json_output",
			exprs:   []string{"2 ** 10"},
			output:  "json",
			wantErr: false,
		},
		{
			name:    "yaml_output",
			exprs:   []string{"[1, 2, 3]"},
			output:  "yaml",
			wantErr: false,
		},
		{
			name:    "syntax_error",
			exprs:   []string{"1 +"},
			output:  "text",
			wantErr: true,
		},
		{
			name:    "undefined_variable",
			exprs:   []string{"nope + 1"},
			output:  "text",
			wantErr: true,
		},
		{
			name:    "error_stops_remaining_expressions",
			exprs:   []string{"x = 1", "y +", "x"},
			output:  "text",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			evalCmd := &Eval{
				Exprs:  tt.exprs,
				Output: tt.output,
			}

			err := evalCmd.Run(context.Background())

			if (err != nil) != tt.wantErr {
				t.Errorf("Eval.Run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
