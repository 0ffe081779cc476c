package quadtree

import (
	"errors"
	"fmt"

	"github.com/hupe1980/quadtree/geom"
)

var (
	// ErrOutOfBounds is returned when a point lies outside the index boundary.
	ErrOutOfBounds = errors.New("point out of bounds")
	// ErrInvalidArgument is returned for rejected thresholds, boundaries and query shapes.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned by Update when no entry exists at the point.
	ErrNotFound = errors.New("not found")
)

// ErrPointOutOfBounds reports the point that was rejected and the boundary it
// was checked against. It matches ErrOutOfBounds with errors.Is.
type ErrPointOutOfBounds struct {
	Point    geom.Point
	Boundary geom.Rect
}

func (e *ErrPointOutOfBounds) Error() string {
	return fmt.Sprintf("point %s does not lie within the boundary %s", e.Point, e.Boundary)
}

func (e *ErrPointOutOfBounds) Unwrap() error { return ErrOutOfBounds }

// ErrInvalidSplitThreshold indicates a split threshold below 1.
// It matches ErrInvalidArgument with errors.Is.
type ErrInvalidSplitThreshold struct {
	Threshold int
}

func (e *ErrInvalidSplitThreshold) Error() string {
	return fmt.Sprintf("invalid split threshold: %d (must be at least 1)", e.Threshold)
}

func (e *ErrInvalidSplitThreshold) Unwrap() error { return ErrInvalidArgument }

func invalidArgument(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}
