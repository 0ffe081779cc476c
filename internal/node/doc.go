// Package node implements the quadrant nodes of the quadtree index.
//
// Nodes live in an arena.Slots table and refer to each other by ID. A node
// is either a leaf holding entries directly, or an internal node with exactly
// four children (top-left, top-right, bottom-left, bottom-right) and no
// entries. Subdivide and Merge are the only transitions between the two
// states; no other method changes a node's children.
//
// The package provides primitives only. Split thresholds, duplicate handling
// and the merge sweep belong to the caller.
package node
