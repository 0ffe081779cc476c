package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/quadtree"
	"github.com/hupe1980/quadtree/geom"
	"github.com/hupe1980/quadtree/testutil"
)

var benchBoundary = geom.Rect{X: 0, Y: 0, Width: 1000, Height: 1000}

// dataset names a point distribution.
type dataset struct {
	name string
	gen  func(rng *testutil.RNG, n int) []geom.Point
}

var datasets = []dataset{
	{name: "Uniform", gen: func(rng *testutil.RNG, n int) []geom.Point {
		return rng.UniformPoints(n, benchBoundary)
	}},
	{name: "Clustered", gen: func(rng *testutil.RNG, n int) []geom.Point {
		return rng.ClusteredPoints(n, 8, 5, benchBoundary)
	}},
}

func buildIndex(b *testing.B, threshold int, pts []geom.Point) *quadtree.Index[int] {
	b.Helper()

	idx, err := quadtree.New[int](threshold, benchBoundary, quadtree.WithMaxDepth(24))
	if err != nil {
		b.Fatal(err)
	}
	for i, p := range pts {
		if _, err := idx.Insert(p, i); err != nil {
			b.Fatal(err)
		}
	}
	return idx
}

func sizeName(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%dk", n/1000)
	}
	return fmt.Sprint(n)
}
