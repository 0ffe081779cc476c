package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidExtent is returned when a rectangle has a non-positive width or height.
var ErrInvalidExtent = errors.New("geom: width and height must be positive")

// Rect is an axis-aligned rectangle anchored at its top-left corner (X, Y).
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect returns the rectangle with top-left corner (x, y) and the given
// extents. Width and height must be positive.
func NewRect(x, y, width, height float64) (Rect, error) {
	if !(width > 0) || !(height > 0) {
		return Rect{}, fmt.Errorf("%w: got %gx%g", ErrInvalidExtent, width, height)
	}
	return Rect{X: x, Y: y, Width: width, Height: height}, nil
}

// Valid reports whether r has a positive width and height.
func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// MaxX returns the x coordinate of the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the y coordinate of the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Mid returns the centre of r.
func (r Rect) Mid() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies in r using half-open bounds:
// [X, X+Width) on x and [Y, Y+Height) on y.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X &&
		p.X < r.X+r.Width &&
		p.Y >= r.Y &&
		p.Y < r.Y+r.Height
}

// ContainsInclusive reports whether p lies in r including all four edges.
func (r Rect) ContainsInclusive(p Point) bool {
	return p.X >= r.X &&
		p.X <= r.X+r.Width &&
		p.Y >= r.Y &&
		p.Y <= r.Y+r.Height
}

// Intersects reports whether r and o overlap. Rectangles that only touch
// along an edge or at a corner intersect.
func (r Rect) Intersects(o Rect) bool {
	// Separating axis: disjoint iff one minimum exceeds the other maximum.
	return !(o.X > r.X+r.Width ||
		o.X+o.Width < r.X ||
		o.Y > r.Y+r.Height ||
		o.Y+o.Height < r.Y)
}

// Quadrants splits r at Mid into four rectangles ordered top-left,
// top-right, bottom-left, bottom-right.
//
// The near quadrants end exactly at Mid. The far quadrants reach at least
// to r's right and bottom edges, so every point r contains inclusively is
// contained inclusively by a quadrant.
func (r Rect) Quadrants() [4]Rect {
	w, h := r.Width/2, r.Height/2
	mid := Point{X: r.X + w, Y: r.Y + h}
	fw, fh := span(mid.X, r.MaxX()), span(mid.Y, r.MaxY())
	return [4]Rect{
		{X: r.X, Y: r.Y, Width: w, Height: h},
		{X: mid.X, Y: r.Y, Width: fw, Height: h},
		{X: r.X, Y: mid.Y, Width: w, Height: fh},
		{X: mid.X, Y: mid.Y, Width: fw, Height: fh},
	}
}

// span returns the smallest extent w with lo+w >= hi.
func span(lo, hi float64) float64 {
	w := hi - lo
	for lo+w < hi {
		w = math.Nextafter(w, math.Inf(1))
	}
	return w
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.Width, r.Height)
}
