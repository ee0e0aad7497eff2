package offset

import (
	"errors"
	"fmt"
)

// Error types
type ErrorType string

const (
	// ErrUnconfigured marks arithmetic attempted on a DateOffset whose
	// configuration named no duration key.
	ErrUnconfigured ErrorType = "unconfigured"
	// ErrDateRange marks a result outside the representable year range.
	ErrDateRange ErrorType = "date_range"
	// ErrInvalidInput marks configuration that could not be parsed.
	ErrInvalidInput ErrorType = "invalid_input"
)

// Error represents an offset-related error
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsType reports whether err is, or wraps, an *Error of the given type.
func IsType(err error, t ErrorType) bool {
	var oe *Error
	return errors.As(err, &oe) && oe.Type == t
}
