package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/radish-sh/radish/log"
)

// defaultRC is the scaffold written by the init command. Every line is either
// a comment or a valid expression, so the file loads cleanly as-is.
const defaultRC = `# radish startup definitions
#
# Each line is evaluated when a session starts. Variables and functions
# defined here are available in every session. Lines starting with # are
# ignored.

tau = pi * 2

# let double = |x| x * 2
`

// Init generates the startup definitions file with example content.
type Init struct {
	Force bool `help:"Overwrite existing startup definitions file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	rcPath := rcPathFrom(ctx)
	if rcPath == "" {
		panic("internal error: rc path undefined")
	}

	// Check if file exists and force not set
	_, err = os.Stat(rcPath)
	if err == nil && !i.Force {
		return ErrWriteRC.
			With(slog.String("file", rcPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	err = os.WriteFile(rcPath, []byte(defaultRC), 0o600)
	if err != nil {
		return ErrWriteRC.
			With(slog.String("file", rcPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized startup definitions file",
		slog.String("path", rcPath),
	)

	return nil
}
