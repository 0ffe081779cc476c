package quadtree

import "github.com/hupe1980/quadtree/geom"

// WorldBoundary spans longitude -180..180 on x and latitude -90..90 on y.
var WorldBoundary = geom.Rect{X: -180, Y: -90, Width: 360, Height: 180}

// NewGlobal creates an Index over WorldBoundary. Points are (longitude,
// latitude) pairs.
func NewGlobal[V any](splitThreshold int, optFns ...Option) (*Index[V], error) {
	return New[V](splitThreshold, WorldBoundary, optFns...)
}
