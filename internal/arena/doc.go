// Package arena provides an index-addressed slot table for tree nodes.
//
// Nodes that reference each other by ID instead of by pointer avoid the
// parent/child reference cycle: the arena owns every node, children are
// reached through their IDs and a parent link is a plain ID that never
// extends a node's lifetime.
//
// # Features
//
//   - Dense uint32 IDs, ID 0 reserved as None
//   - Freed slots are tracked in a roaring bitmap and reused lowest-first
//   - Values are stored inline in a single slice
//
// # Safety
//
// A pointer returned by Get is only valid until the next Alloc, which may
// grow the backing slice. Get returns nil for None and for freed slots.
// Slots is not safe for concurrent use.
package arena
