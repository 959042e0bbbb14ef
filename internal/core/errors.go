package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput covers empty collections and malformed process descriptors.
	ErrInvalidInput = errors.New("scheduler: invalid input")

	// ErrInvalidConfiguration covers bad run parameters such as a non-positive quantum.
	ErrInvalidConfiguration = errors.New("scheduler: invalid configuration")

	// ErrDuplicateIdentifier is returned when two processes share an id.
	ErrDuplicateIdentifier = errors.New("scheduler: duplicate process id")
)

// ValidationError carries the offending field and process. It unwraps to one of
// the sentinel errors above.
type ValidationError struct {
	Kind      error
	Field     string
	ProcessID *int
	Message   string
}

func (e *ValidationError) Error() string {
	if e.ProcessID != nil {
		return fmt.Sprintf("%v: process %d: %s: %s", e.Kind, *e.ProcessID, e.Field, e.Message)
	}
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// ErrorKind maps an error to a short machine readable name.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrInvalidConfiguration):
		return "invalid_configuration"
	case errors.Is(err, ErrDuplicateIdentifier):
		return "duplicate_identifier"
	}
	return "internal"
}
