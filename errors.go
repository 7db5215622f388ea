package parabox

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddress is returned for a cell or cell index outside the grid.
	ErrInvalidAddress = errors.New("parabox: invalid cell address")

	// ErrInvalidGrid is returned when a grid extent cannot be tiled into 2x2 groups.
	ErrInvalidGrid = errors.New("parabox: invalid grid extent")

	// ErrUnknownKind is returned when a box kind has no theme entry.
	ErrUnknownKind = errors.New("parabox: unknown box kind")

	// ErrCyclicContainment is returned when a binding would make a box its own descendant.
	ErrCyclicContainment = errors.New("parabox: cyclic containment")

	// ErrAlreadyAttached is returned when a box already occupies a slot in another parent.
	ErrAlreadyAttached = errors.New("parabox: box already attached")

	// ErrUnknownBox is returned for a box handle that does not belong to the world.
	ErrUnknownBox = errors.New("parabox: unknown box")

	// ErrNegativeDelta is returned by Clock.Tick for a negative frame delta.
	ErrNegativeDelta = errors.New("parabox: negative frame delta")

	// ErrInvalidDelta is returned by Clock.Tick for a NaN or infinite frame delta.
	ErrInvalidDelta = errors.New("parabox: invalid frame delta")

	// ErrReentrantTick is returned when Clock.Tick is called from inside a subscriber.
	ErrReentrantTick = errors.New("parabox: re-entrant tick")
)

// SubscriberError records a per-frame subscriber that returned an error.
type SubscriberError struct {
	Name  string
	Frame uint64
	Err   error
}

func (e *SubscriberError) Error() string {
	return fmt.Sprintf("parabox: subscriber %q failed on frame %d: %v", e.Name, e.Frame, e.Err)
}

func (e *SubscriberError) Unwrap() error {
	return e.Err
}
