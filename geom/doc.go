// Package geom provides the planar value types used by the quadtree index.
//
// The coordinate system has its origin at the top-left corner of a
// rectangle with y growing downward, so the quadrants of a rectangle are
// ordered top-left, top-right, bottom-left, bottom-right.
//
// # Containment
//
// Rect exposes two containment tests:
//
//   - Contains: half-open, x in [X, X+Width) and y in [Y, Y+Height).
//     Every point inside a subdivided rectangle belongs to exactly one
//     quadrant under this test.
//   - ContainsInclusive: closed, x in [X, X+Width] and y in [Y, Y+Height].
//     Used for boundary validation and range matching.
//
// # Usage
//
//	r, _ := geom.NewRect(0, 0, 100, 100)
//	c, _ := geom.NewCircle(geom.Pt(50, 50), 10)
//	r.ContainsInclusive(geom.Pt(100, 100)) // true
//	c.IntersectsRect(r)                    // true
package geom
