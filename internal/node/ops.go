package node

import (
	"slices"

	"github.com/hupe1980/quadtree/geom"
	"github.com/hupe1980/quadtree/model"
)

// FindPoint returns the entry stored at exactly p in the subtree rooted at
// id. It returns false without descending when p lies outside the boundary
// of id, edges included.
//
// Unlike QuadrantFor, the check at id is inclusive: the root accepts points
// on its right and bottom edges, and those must stay findable. Below id,
// routing follows QuadrantFor without re-checking containment.
func (t *Tree[V]) FindPoint(id ID, p geom.Point) (model.Entry[V], bool) {
	var zero model.Entry[V]

	n := t.get(id)
	if n == nil || !n.bounds.ContainsInclusive(p) {
		return zero, false
	}
	for !n.isLeaf() {
		n = t.get(t.quadrantFor(n, p))
	}

	for _, e := range n.entries {
		if e.Point() == p {
			return e, true
		}
	}
	return zero, false
}

// QuadrantFor returns the child of id that owns p, or None if id is a leaf.
func (t *Tree[V]) QuadrantFor(id ID, p geom.Point) ID {
	n := t.get(id)
	if n == nil || n.isLeaf() {
		return None
	}
	return t.quadrantFor(n, p)
}

func (t *Tree[V]) quadrantFor(n *node[V], p geom.Point) ID {
	for _, c := range n.children {
		if t.get(c).bounds.Contains(p) {
			return c
		}
	}

	// No child owns p under half-open containment. This happens on the far
	// edges of n and when rounding leaves a sliver between quadrants.
	mid := n.bounds.Mid()
	q := TopLeft
	if p.X >= mid.X {
		q |= TopRight
	}
	if p.Y >= mid.Y {
		q |= BottomLeft
	}
	return n.children[q]
}

// Subdivide turns the leaf id into an internal node with four fresh leaf
// children and moves every entry of id into the child that owns it.
// It reports false and does nothing if id is not a leaf.
func (t *Tree[V]) Subdivide(id ID) bool {
	n := t.get(id)
	if n == nil || !n.isLeaf() {
		return false
	}

	quads := n.bounds.Quadrants()
	depth := n.depth + 1
	entries := n.entries

	var children [4]ID
	for i, q := range quads {
		children[i] = t.slots.Alloc(node[V]{bounds: q, parent: id, depth: depth})
	}

	// Alloc may have moved the backing slice.
	n = t.get(id)
	n.children = children
	n.entries = nil

	for _, e := range entries {
		c := t.get(t.quadrantFor(n, e.Point()))
		c.entries = append(c.entries, e)
	}

	t.logger.Debug("node subdivided",
		"node", id,
		"depth", n.depth,
		"bounds", n.bounds.String(),
		"entries", len(entries),
		"slots", t.slots.String(),
	)
	return true
}

// AddEntry appends e to the leaf id. It reports false if id is not a leaf.
func (t *Tree[V]) AddEntry(id ID, e model.Entry[V]) bool {
	n := t.get(id)
	if n == nil || !n.isLeaf() {
		return false
	}
	n.entries = append(n.entries, e)
	return true
}

// RemoveEntry deletes the entry at exactly p from the leaf id, keeping the
// order of the remaining entries. It reports whether an entry was removed.
func (t *Tree[V]) RemoveEntry(id ID, p geom.Point) bool {
	n := t.get(id)
	if n == nil || !n.isLeaf() {
		return false
	}

	i := slices.IndexFunc(n.entries, func(e model.Entry[V]) bool {
		return e.Point() == p
	})
	if i < 0 {
		return false
	}
	n.entries = slices.Delete(n.entries, i, i+1)
	return true
}

// QueryRange appends to out every entry below id whose point lies in r,
// edges included, and returns the extended slice. Leaves are visited
// top-left, top-right, bottom-left, bottom-right; entries within a leaf in
// insertion order.
func (t *Tree[V]) QueryRange(id ID, r geom.Rect, out []model.Entry[V]) []model.Entry[V] {
	n := t.get(id)
	if n == nil || !n.bounds.Intersects(r) {
		return out
	}

	if n.isLeaf() {
		for _, e := range n.entries {
			if r.ContainsInclusive(e.Point()) {
				out = append(out, e)
			}
		}
		return out
	}

	for _, c := range n.children {
		out = t.QueryRange(c, r, out)
	}
	return out
}

// QueryCircle is QueryRange for a circle.
func (t *Tree[V]) QueryCircle(id ID, c geom.Circle, out []model.Entry[V]) []model.Entry[V] {
	n := t.get(id)
	if n == nil || !c.IntersectsRect(n.bounds) {
		return out
	}

	if n.isLeaf() {
		for _, e := range n.entries {
			if c.Contains(e.Point()) {
				out = append(out, e)
			}
		}
		return out
	}

	for _, child := range n.children {
		out = t.QueryCircle(child, c, out)
	}
	return out
}

// CanMerge reports whether id is internal, all four of its children are
// leaves, and together they hold at most threshold entries.
func (t *Tree[V]) CanMerge(id ID, threshold int) bool {
	n := t.get(id)
	if n == nil || n.isLeaf() {
		return false
	}

	total := 0
	for _, c := range n.children {
		child := t.get(c)
		if !child.isLeaf() {
			return false
		}
		total += len(child.entries)
	}
	return total <= threshold
}

// Merge turns the internal node id back into a leaf holding every entry of
// its subtree, in query order, and releases all descendant nodes.
// It is a no-op on a leaf.
func (t *Tree[V]) Merge(id ID) {
	n := t.get(id)
	if n == nil || n.isLeaf() {
		return
	}

	var entries []model.Entry[V]
	for _, c := range n.children {
		entries = t.drain(c, entries)
	}

	n.children = [4]ID{}
	n.entries = entries

	t.logger.Debug("node merged",
		"node", id,
		"depth", n.depth,
		"bounds", n.bounds.String(),
		"entries", len(entries),
		"slots", t.slots.String(),
	)
}

// drain appends the entries below id to out and frees id and its descendants.
func (t *Tree[V]) drain(id ID, out []model.Entry[V]) []model.Entry[V] {
	n := t.get(id)
	if n.isLeaf() {
		out = append(out, n.entries...)
	} else {
		for _, c := range n.children {
			out = t.drain(c, out)
		}
	}
	t.slots.Free(id)
	return out
}
