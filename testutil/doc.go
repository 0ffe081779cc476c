// Package testutil provides testing utilities for the quadtree packages.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random points and computing exact
// range query results by linear scan.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, boundary)
//	clustered := rng.ClusteredPoints(1000, 5, 0.5, boundary)
//
// # Exact Queries (Ground Truth)
//
//	want := testutil.BruteRect(entries, rect)
//	want := testutil.BruteCircle(entries, circle)
package testutil
