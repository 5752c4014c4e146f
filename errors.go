package charton

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures a render call can surface.
type ErrorKind int

const (
	// InvalidDomain reports a domain a scale cannot represent, e.g.
	// non-positive values on a logarithmic scale.
	InvalidDomain ErrorKind = iota + 1

	// EncodingMismatch reports a layer referencing a column that is
	// absent from its data source or has an incompatible type.
	EncodingMismatch

	// RenderFailure reports an output-backend-level failure.
	RenderFailure

	// UnsupportedOutputFormat reports an unrecognized or missing file
	// extension on a save path.
	UnsupportedOutputFormat

	// IoFailure reports a failure persisting the output.
	IoFailure
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidDomain:
		return "invalid domain"
	case EncodingMismatch:
		return "encoding mismatch"
	case RenderFailure:
		return "render failure"
	case UnsupportedOutputFormat:
		return "unsupported output format"
	case IoFailure:
		return "io failure"
	}
	return "unknown"
}

// Error is the error type returned by the layout and render code.
// Every failure is fatal to its render call and is surfaced verbatim;
// nothing is coerced to a default chart.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error of the given kind.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{Kind: kind, Msg: err.Error(), Err: errors.Unwrap(err)}
}

// KindOf returns the ErrorKind of err, or 0 if err carries none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
