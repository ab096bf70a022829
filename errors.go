package sat

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewPoints is returned for polygons with fewer than 3 vertices.
	ErrTooFewPoints = errors.New("number of vertices < 3")
	// ErrNonFinite is returned when a shape has a NaN or infinite coordinate.
	ErrNonFinite = errors.New("non-finite coordinate")
	// ErrNegativeDimension is returned for boxes or circles with negative size.
	ErrNegativeDimension = errors.New("negative dimension")
	// ErrZeroAxis is returned when projecting onto the zero vector.
	ErrZeroAxis = errors.New("projection onto zero length axis")
)

// ValidationError reports a shape failing a precondition of the engine.
type ValidationError struct {
	// Shape names the offending argument, i.e. "a", "b", "box", "circle".
	Shape string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Shape, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
