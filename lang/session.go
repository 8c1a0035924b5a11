package lang

import (
	"bufio"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/radish-sh/radish/log"
)

// DefaultMaxDepth bounds nested closure calls per evaluation. Deep enough
// for any sane hand-typed recursion, shallow enough to fail before the Go
// stack does.
const DefaultMaxDepth = 1000

// AnsVariable names the binding that receives the most recent successful
// result.
const AnsVariable = "ans"

// Session owns the global variable scope and evaluates input lines against
// it. Bindings persist across Eval calls until reset.
//
// A Session is not safe for concurrent use; callers serialize access.
type Session struct {
	global   *Env
	logger   log.Logger
	maxDepth int
}

// Option configures a [Session].
type Option func(*Session)

// WithLogger sets the logger used for evaluation tracing.
func WithLogger(logger log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithMaxDepth overrides [DefaultMaxDepth]. Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(s *Session) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// NewSession creates a session with an empty global scope.
func NewSession(opts ...Option) *Session {
	s := &Session{
		global:   NewEnv(nil),
		logger:   log.Make(io.Discard),
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Eval tokenizes, parses, and evaluates one input line against the global
// scope. On success the result is also bound to [AnsVariable].
//
// Assignments committed before an evaluation error remain in effect; the
// session stays usable after any error.
func (s *Session) Eval(input string) (Value, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return Value{}, err
	}

	s.logger.Trace("tokenized input",
		slog.String("input", input),
		slog.Int("tokens", len(tokens)),
	)

	expr, err := Parse(tokens)
	if err != nil {
		return Value{}, err
	}

	s.logger.Trace("parsed expression", slog.String("expr", expr.String()))

	ev := &evaluator{session: s}

	result, err := ev.eval(expr, s.global)
	if err != nil {
		return Value{}, err
	}

	s.global.Set(AnsVariable, result)

	s.logger.Debug("evaluated expression",
		slog.String("expr", expr.String()),
		slog.String("result", FormatValue(result)),
	)

	return result, nil
}

// Variables returns a snapshot of the global scope.
func (s *Session) Variables() map[string]Value {
	return s.global.Snapshot()
}

// VariableNames returns the names bound in the global scope, sorted.
func (s *Session) VariableNames() []string {
	return s.global.Names()
}

// ResetVariables removes every global binding, including [AnsVariable], and
// returns how many were removed. Builtins are untouched and any shadowed
// builtin becomes visible again.
func (s *Session) ResetVariables() int {
	n := s.global.Len()
	s.global.Reset()

	return n
}

// KnownIdentifiers returns every name resolvable in the global scope, user
// bindings and builtins merged and sorted. Used for completion.
func (s *Session) KnownIdentifiers() []string {
	names := slices.Concat(s.global.Names(), BuiltinNames())
	slices.Sort(names)

	return slices.Compact(names)
}

// Lookup resolves a name the way the evaluator would: global scope first,
// then the builtin catalog.
func (s *Session) Lookup(name string) (Value, bool) {
	if v, ok := s.global.Get(name); ok {
		return v, true
	}

	v, ok := builtins()[name]

	return v, ok
}

// LoadRC evaluates startup definitions, one expression per line. Blank lines
// and lines starting with # are skipped. A failing line is logged and
// skipped; the remaining lines still load.
func (s *Session) LoadRC(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if _, err := s.Eval(text); err != nil {
			s.logger.Warn("skipping startup definition",
				slog.Int("line", line),
				slog.String("input", text),
				slog.Any("error", err),
			)
		}
	}

	if err := scanner.Err(); err != nil {
		return ErrReadInput.Wrap(err)
	}

	return nil
}
