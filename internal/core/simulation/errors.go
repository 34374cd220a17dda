package simulation

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates an unknown supplier id at simulation time.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument indicates a malformed simulation parameter, e.g. a
	// negative delay.
	ErrInvalidArgument = errors.New("invalid argument")
)

// NotFoundError reports a supplier id absent from the graph.
type NotFoundError struct {
	SupplierID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: supplier %q", ErrNotFound.Error(), e.SupplierID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidArgumentError reports a parameter the engine refuses to simulate.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidArgument.Error(), e.Msg)
}

func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }
