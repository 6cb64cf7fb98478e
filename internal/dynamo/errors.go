package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidParameter indicates a non-positive vehicle parameter, which
	// would make the model physically meaningless (and the mass matrix
	// singular).
	ErrInvalidParameter = errors.New("dynamo: vehicle parameter must be positive")

	// ErrInvalidState indicates a state vector with NaN or Inf entries.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrUnknownName indicates a registry lookup for a name that was never
	// registered.
	ErrUnknownName = errors.New("dynamo: unknown name")
)

// SimError wraps a mid-run fault with step context.
type SimError struct {
	Step    int
	Time    float64
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
