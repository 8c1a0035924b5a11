package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/radish-sh/radish/lang"
	"github.com/radish-sh/radish/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	startupFileKey struct{}

	// startupFile carries the resolved startup definitions file path and
	// whether loading it was disabled on the command line.
	startupFile struct {
		path string
		skip bool
	}
)

// WithStartupFile returns a new context.Context carrying the startup
// definitions file path and whether it should be skipped.
func WithStartupFile(
	ctx context.Context,
	path string,
	skip bool,
) context.Context {
	return context.WithValue(ctx, startupFileKey{}, startupFile{
		path: path,
		skip: skip,
	})
}

func startupFileFrom(ctx context.Context) startupFile {
	rc, _ := ctx.Value(startupFileKey{}).(startupFile)

	return rc
}

// newSession creates an evaluation session and loads the startup definitions
// file unless it was disabled or does not exist.
func newSession(ctx context.Context) (*lang.Session, error) {
	session := lang.NewSession(lang.WithLogger(log.Default()))

	rc := startupFileFrom(ctx)
	if rc.skip || rc.path == "" {
		return session, nil
	}

	file, err := os.Open(rc.path)
	if err != nil {
		// A missing startup file is the common case on first run.
		if os.IsNotExist(err) {
			return session, nil
		}

		return nil, ErrReadRC.
			With(slog.String("file", rc.path)).
			Wrap(err)
	}
	defer file.Close()

	if err := session.LoadRC(file); err != nil {
		return nil, ErrReadRC.
			With(slog.String("file", rc.path)).
			Wrap(err)
	}

	log.DebugContext(ctx, "loaded startup definitions",
		slog.String("file", rc.path),
		slog.Int("bindings", len(session.Variables())),
	)

	return session, nil
}

// cachePathFrom returns the runtime cache directory recorded by the parser.
func cachePathFrom(ctx context.Context) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	return ktx.Model.Vars()[CacheIdentifier]
}

// rcPathFrom returns the default startup definitions file path recorded by
// the parser.
func rcPathFrom(ctx context.Context) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	return ktx.Model.Vars()[RCIdentifier]
}
