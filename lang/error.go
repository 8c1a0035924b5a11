package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values). One sentinel per failure class in the
// evaluation pipeline; use errors.Is to test for a class.
var (
	ErrLex               = NewError("malformed token")
	ErrSyntax            = NewError("syntax error")
	ErrUndefinedVariable = NewError("undefined variable")
	ErrNotCallable       = NewError("not callable")
	ErrArityMismatch     = NewError("arity mismatch")
	ErrTypeMismatch      = NewError("type mismatch")
	ErrDivisionByZero    = NewError("division by zero")
	ErrRecursionLimit    = NewError("recursion limit exceeded")
	ErrReadInput         = NewError("failed to read input")
)

// noPosition marks an Error that does not refer to a source offset.
const noPosition = -1

// Error represents an evaluation error with optional structured logging
// attributes and an optional source position.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
	pos   int         // Byte offset within the input line, or noPosition
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg, pos: noPosition}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err, pos: noPosition}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the same error class.
// Derived errors created with Wrap, With, or At compare equal to their
// sentinel.
func (e *Error) Is(target error) bool {
	t := &Error{}
	if !errors.As(target, &t) {
		return false
	}

	return e.msg == t.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	if e.pos != noPosition {
		attrs = append(attrs, slog.Int("pos", e.pos))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
		pos:   e.pos,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		pos:   e.pos,
	}
}

// At creates a new Error annotated with a byte offset into the input line.
func (e *Error) At(pos int) *Error {
	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: e.attrs,
		pos:   pos,
	}
}

// Position returns the byte offset the error refers to within the input
// line, and whether one was recorded.
func (e *Error) Position() (int, bool) {
	if e.pos == noPosition {
		return 0, false
	}

	return e.pos, true
}

// Annotate renders err against its source line with a caret marking the
// offending column:
//
//	  1 | 0x + 2
//	       ^
//
// If err carries no position, only its message is returned.
func Annotate(err error, source string) string {
	e := &Error{}
	if !errors.As(err, &e) {
		return err.Error()
	}

	pos, ok := e.Position()
	if !ok {
		return e.Error()
	}

	col := pos
	if col > len(source) {
		col = len(source)
	}

	var buf strings.Builder

	buf.WriteString(e.Error())
	buf.WriteString(" at column ")
	buf.WriteString(strconv.Itoa(col + 1))
	buf.WriteString(":\n")
	buf.WriteString("  1 | ")
	buf.WriteString(source)
	buf.WriteRune('\n')

	// +6 accounts for: 2 leading spaces + "1 | " (4 chars)
	buf.WriteString(strings.Repeat(" ", col+6))
	buf.WriteString("^")

	return buf.String()
}
