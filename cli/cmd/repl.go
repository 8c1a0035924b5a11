package cmd

import (
	"context"

	"github.com/radish-sh/radish/cli/cmd/repl"
	"github.com/radish-sh/radish/log"
)

// Repl starts the interactive calculator.
type Repl struct{}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	session, err := newSession(ctx)
	if err != nil {
		return err
	}

	rc := startupFileFrom(ctx)

	return repl.Run(ctx, session, cachePathFrom(ctx), rc.path, log.Default())
}
