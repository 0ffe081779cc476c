package model

import (
	"fmt"

	"github.com/hupe1980/quadtree/geom"
)

// Entry is an immutable (point, value) pair. Its identity within an index is
// the exact point.
type Entry[V any] struct {
	point geom.Point
	value V
}

// NewEntry returns the entry holding value at point.
func NewEntry[V any](point geom.Point, value V) Entry[V] {
	return Entry[V]{point: point, value: value}
}

// Point returns the location of the entry.
func (e Entry[V]) Point() geom.Point {
	return e.point
}

// Value returns the caller-supplied payload.
func (e Entry[V]) Value() V {
	return e.value
}

// String returns a string representation of the Entry.
func (e Entry[V]) String() string {
	return fmt.Sprintf("Entry(%s: %v)", e.point, e.value)
}
