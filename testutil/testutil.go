package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/quadtree/geom"
	"github.com/hupe1980/quadtree/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints returns num points drawn uniformly from the half-open
// interior of bounds.
func (r *RNG) UniformPoints(num int, bounds geom.Rect) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geom.Point, num)
	for i := range points {
		points[i] = geom.Point{
			X: bounds.X + r.rand.Float64()*bounds.Width,
			Y: bounds.Y + r.rand.Float64()*bounds.Height,
		}
	}
	return points
}

// ClusteredPoints returns num points normally distributed around clusters
// random centres with standard deviation spread, clamped into bounds.
// Small spreads produce deep subtrees.
func (r *RNG) ClusteredPoints(num, clusters int, spread float64, bounds geom.Rect) []geom.Point {
	if clusters < 1 {
		clusters = 1
	}
	centers := r.UniformPoints(clusters, bounds)

	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]geom.Point, num)
	for i := range points {
		c := centers[r.rand.Intn(clusters)]
		points[i] = geom.Point{
			X: clamp(c.X+r.rand.NormFloat64()*spread, bounds.X, bounds.MaxX()),
			Y: clamp(c.Y+r.rand.NormFloat64()*spread, bounds.Y, bounds.MaxY()),
		}
	}
	return points
}

// GridPoints returns the (n+1)² points of a regular grid over bounds,
// including every point on its four edges.
func GridPoints(bounds geom.Rect, n int) []geom.Point {
	points := make([]geom.Point, 0, (n+1)*(n+1))
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			x := bounds.X + bounds.Width*float64(i)/float64(n)
			y := bounds.Y + bounds.Height*float64(j)/float64(n)
			if i == n {
				x = bounds.MaxX()
			}
			if j == n {
				y = bounds.MaxY()
			}
			points = append(points, geom.Point{X: x, Y: y})
		}
	}
	return points
}

// BruteRect returns the entries whose point lies in rect, edges included,
// by linear scan.
func BruteRect[V any](entries []model.Entry[V], rect geom.Rect) []model.Entry[V] {
	var out []model.Entry[V]
	for _, e := range entries {
		if rect.ContainsInclusive(e.Point()) {
			out = append(out, e)
		}
	}
	return out
}

// BruteCircle returns the entries whose point lies in c by linear scan.
func BruteCircle[V any](entries []model.Entry[V], c geom.Circle) []model.Entry[V] {
	var out []model.Entry[V]
	for _, e := range entries {
		if c.Contains(e.Point()) {
			out = append(out, e)
		}
	}
	return out
}

// Points returns the points of entries in order.
func Points[V any](entries []model.Entry[V]) []geom.Point {
	out := make([]geom.Point, len(entries))
	for i, e := range entries {
		out[i] = e.Point()
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
