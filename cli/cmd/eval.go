package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/radish-sh/radish/lang"
)

// Eval evaluates one or more expressions in a single session and prints each
// result. Expressions are evaluated in order, so later arguments can
// reference variables bound by earlier ones.
type Eval struct {
	Exprs  []string `arg:"" help:"Expressions to evaluate" name:"expr"`
	Output string   `       help:"Result output format"    name:"output" default:"text" enum:"text,json,yaml" short:"o"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	session, err := newSession(ctx)
	if err != nil {
		return err
	}

	results := make([]lang.Value, 0, len(e.Exprs))

	for _, expr := range e.Exprs {
		result, err := session.Eval(expr)
		if err != nil {
			// The annotated rendering points at the offending column.
			fmt.Fprintln(os.Stderr, lang.Annotate(err, expr))

			return lang.WrapError(err).
				With(slog.String("command", "eval")).
				With(slog.String("input", expr))
		}

		results = append(results, result)
	}

	return e.print(results)
}

// print renders the results in the requested output format, one line per
// expression for text, or a single document for json and yaml.
func (e *Eval) print(results []lang.Value) error {
	switch e.Output {
	case "json":
		enc := json.NewEncoder(os.Stdout)

		err := enc.Encode(interfaces(results))
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()

		err := enc.Encode(interfaces(results))
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

	default: // text
		for _, result := range results {
			fmt.Println(lang.FormatValue(result))
		}
	}

	return nil
}

// interfaces converts results to plain Go values for structured encoders.
// A single result encodes as a scalar rather than a one-element array.
func interfaces(results []lang.Value) any {
	if len(results) == 1 {
		return results[0].Interface()
	}

	out := make([]any, len(results))
	for i, r := range results {
		out[i] = r.Interface()
	}

	return out
}
