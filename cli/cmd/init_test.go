package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/radish-sh/radish/lang"
)

// TestInitRun tests the Init.Run command.
func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		setup   func(t *testing.T, path string) // setup function to prepare test
		wantErr bool
	}{
		{
			name:    "create_new_rc",
			force:   false,
			setup:   nil, // no pre-existing file
			wantErr: false,
		},
		{
			name:  "overwrite_existing_with_force",
			force: true,
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: false,
		},
		{
			name:  "fail_without_force",
			force: false,
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("existing content"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: true, // should fail because file exists
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rcPath := filepath.Join(t.TempDir(), "rc")

			if tt.setup != nil {
				tt.setup(t, rcPath)
			}

			var cli struct{}
			parser, err := kong.New(&cli, kong.Vars{
				RCIdentifier: rcPath,
			})
			if err != nil {
				t.Fatal(err)
			}

			kctx, err := parser.Parse(nil)
			if err != nil {
				t.Fatal(err)
			}

			ctx := WithContext(context.Background(), kctx)

			initCmd := &Init{Force: tt.force}
			err = initCmd.Run(ctx)

			if (err != nil) != tt.wantErr {
				t.Errorf("Init.Run() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			// Verify the generated file loads cleanly as a startup file.
			if !tt.wantErr {
				file, err := os.Open(rcPath)
				if err != nil {
					t.Fatal(err)
				}
				defer file.Close()

				session := lang.NewSession()
				if err := session.LoadRC(file); err != nil {
					t.Errorf("Generated startup file does not load: %v", err)
				}

				if _, ok := session.Lookup("tau"); !ok {
					t.Error("Generated startup file did not define tau")
				}
			}
		})
	}
}

// TestInitWithoutParserContext tests that init fails loudly, not with a nil
// dereference, when no parser context was attached.
func TestInitWithoutParserContext(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Init.Run() expected panic without parser context")
		}
	}()

	initCmd := &Init{}
	_ = initCmd.Run(context.Background())
}

// TestInitWithInvalidPath tests init with an invalid file path.
func TestInitWithInvalidPath(t *testing.T) {
	t.Parallel()

	invalidPath := "/nonexistent/directory/rc"

	var cli struct{}
	parser, err := kong.New(&cli, kong.Vars{
		RCIdentifier: invalidPath,
	})
	if err != nil {
		t.Fatal(err)
	}

	kctx, err := parser.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx := WithContext(context.Background(), kctx)

	initCmd := &Init{Force: false}
	err = initCmd.Run(ctx)

	// Should fail because directory doesn't exist
	if err == nil {
		t.Error("Init.Run() expected error for invalid path, got nil")
	}
}
