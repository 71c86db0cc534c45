package dsa

import "errors"

// Domain errors for visualizer operations.
var (
	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("dsa: structure is empty")

	// ErrMissingValue indicates an insert with no value supplied.
	ErrMissingValue = errors.New("dsa: missing value")

	// ErrInvalidValue indicates a value that does not parse as an integer.
	ErrInvalidValue = errors.New("dsa: value is not an integer")

	// ErrUnknownMode indicates a mode name outside linkedlist, stack and queue.
	ErrUnknownMode = errors.New("dsa: unknown mode")

	// ErrUnknownCommand indicates a script command that is not recognised.
	ErrUnknownCommand = errors.New("dsa: unknown command")
)

// OpError wraps an error with operation context.
type OpError struct {
	Op      string
	Mode    Mode
	Wrapped error
}

func (e *OpError) Error() string {
	return e.Op + " (" + e.Mode.String() + "): " + e.Wrapped.Error()
}

func (e *OpError) Unwrap() error {
	return e.Wrapped
}
