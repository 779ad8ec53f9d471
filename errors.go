package cronex

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFields reports an expression with fewer fields than
	// the parser is configured to expect.
	ErrMissingFields = errors.New("missing fields")

	// ErrSyntax reports an atom that matches no recognized grammar.
	ErrSyntax = errors.New("syntax error")

	// ErrInvalidUsage reports a well-formed construct used in a field
	// where it has no meaning.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrOutOfBounds reports a value outside its field's range, or a
	// monotonic constraint whose epoch information is missing.
	ErrOutOfBounds = errors.New("out of bounds")
)

// A FieldError describes why a single field of an expression could
// not be compiled. It unwraps to one of the sentinel error kinds
// above, so errors.Is classifies it.
type FieldError struct {
	Field   string // field name, e.g. "minutes"
	Kind    error
	Problem string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Problem)
}

func (e *FieldError) Unwrap() error { return e.Kind }

func fieldErr(f field, kind error, format string, a ...any) error {
	return &FieldError{
		Field:   f.String(),
		Kind:    kind,
		Problem: fmt.Sprintf(format, a...),
	}
}
