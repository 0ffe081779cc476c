package geom

import "strconv"

// Point is a location in the plane. Points compare by exact coordinate
// equality with ==.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// SquaredDistance returns the squared Euclidean distance between p and q.
func (p Point) SquaredDistance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}
