package usecase

import "errors"

var (
	// ErrNotFound means no booking matches the given id.
	ErrNotFound = errors.New("booking not found")

	// ErrInvalidTransition means the booking is in a terminal status and
	// cannot change anymore.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError carries per-field messages for rejected input.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}
