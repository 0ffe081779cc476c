// Package quadtree provides an in-memory point index over a bounded plane.
//
// An Index stores (point, value) pairs and answers rectangle and circle
// range queries by recursively partitioning its boundary into four
// quadrants. Leaves split when they exceed the configured split threshold
// and sparse subtrees merge back into leaves after removals.
//
// # Quick Start
//
//	boundary, _ := geom.NewRect(0, 0, 100, 100)
//	idx, _ := quadtree.New[string](4, boundary)
//
//	idx.Insert(geom.Pt(10, 20), "a")
//	idx.Insert(geom.Pt(60, 70), "b")
//
//	ok, _ := idx.Exists(geom.Pt(10, 20))            // true
//	inRect, _ := idx.QueryRect(geom.Pt(0, 0), 50, 50) // [a]
//	inCircle, _ := idx.QueryCircle(geom.Pt(60, 60), 15) // [b]
//
// # Geographic Coordinates
//
// NewGlobal fixes the boundary to WorldBoundary, (-180, -90, 360, 180), so
// points are (longitude, latitude) pairs:
//
//	world, _ := quadtree.NewGlobal[string](16)
//	world.Insert(geom.Pt(13.405, 52.52), "berlin")
//
// # Boundaries
//
// Points are accepted anywhere inside the boundary, edges included. Inside
// the tree, a point on a split line belongs to the quadrant to its right or
// below it. Range queries include points lying on the query shape's edge.
//
// # Errors
//
// Operations on points outside the boundary fail with an error matching
// ErrOutOfBounds. Thresholds below 1 and non-positive query extents fail
// with an error matching ErrInvalidArgument. Nothing is modified when an
// operation fails.
//
// # Concurrency
//
// An Index is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package quadtree
