package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRadius is returned when a circle has a non-positive radius.
var ErrInvalidRadius = errors.New("geom: radius must be positive")

// Circle is a disc with a positive radius.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle returns the circle around center with the given radius.
func NewCircle(center Point, radius float64) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, fmt.Errorf("%w: got %g", ErrInvalidRadius, radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Contains reports whether p lies inside c or on its circumference.
func (c Circle) Contains(p Point) bool {
	return c.Center.SquaredDistance(p) <= c.Radius*c.Radius
}

// IntersectsRect reports whether c overlaps r, edges included.
func (c Circle) IntersectsRect(r Rect) bool {
	closest := Point{
		X: math.Max(r.X, math.Min(c.Center.X, r.X+r.Width)),
		Y: math.Max(r.Y, math.Min(c.Center.Y, r.Y+r.Height)),
	}
	return c.Center.SquaredDistance(closest) <= c.Radius*c.Radius
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(%s r=%g)", c.Center, c.Radius)
}
