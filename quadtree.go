package quadtree

import (
	"fmt"

	"github.com/hupe1980/quadtree/geom"
	"github.com/hupe1980/quadtree/internal/node"
	"github.com/hupe1980/quadtree/model"
)

// Entry is an immutable (point, value) pair stored in an Index.
type Entry[V any] = model.Entry[V]

// Index is a point quadtree over a fixed rectangular boundary.
//
// Leaves hold up to splitThreshold entries. Inserting into a full leaf splits
// it into four quadrants; removing entries collapses a node whose four leaf
// children together hold at most splitThreshold/4 entries.
//
// Index is not safe for concurrent use.
type Index[V any] struct {
	tree           *node.Tree[V]
	splitThreshold int
	maxDepth       int
	logger         *Logger
}

// New creates an empty Index covering boundary. splitThreshold is the number
// of entries a leaf holds before the next insert subdivides it and must be at
// least 1.
func New[V any](splitThreshold int, boundary geom.Rect, optFns ...Option) (*Index[V], error) {
	if splitThreshold < 1 {
		return nil, &ErrInvalidSplitThreshold{Threshold: splitThreshold}
	}
	if !boundary.Valid() {
		return nil, invalidArgument(fmt.Errorf("%w: boundary %s", geom.ErrInvalidExtent, boundary))
	}

	o := applyOptions(optFns)
	if o.maxDepth < 0 {
		return nil, fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidArgument, o.maxDepth)
	}

	logger := o.logger.WithBoundary(boundary)
	tree := node.New[V](boundary, func(no *node.Options) {
		no.Logger = logger.Logger
	})

	return &Index[V]{
		tree:           tree,
		splitThreshold: splitThreshold,
		maxDepth:       o.maxDepth,
		logger:         logger,
	}, nil
}

// Boundary returns the rectangle covered by the index.
func (idx *Index[V]) Boundary() geom.Rect {
	return idx.tree.Boundary(idx.tree.Root())
}

// SplitThreshold returns the configured split threshold.
func (idx *Index[V]) SplitThreshold() int {
	return idx.splitThreshold
}

// Len returns the number of stored entries.
func (idx *Index[V]) Len() int {
	return idx.tree.TotalEntryCount(idx.tree.Root())
}

// Insert stores value at p and returns the new entry. An entry already
// stored at exactly p is replaced.
//
// It returns an *ErrPointOutOfBounds if p lies outside the boundary, edges
// included.
func (idx *Index[V]) Insert(p geom.Point, value V) (Entry[V], error) {
	if err := idx.checkBounds(p); err != nil {
		idx.logger.LogInsert(p, false, err)
		return Entry[V]{}, err
	}

	root := idx.tree.Root()
	_, replaced := idx.tree.FindPoint(root, p)
	if replaced {
		idx.remove(root, p)
	}

	e := idx.insert(root, model.NewEntry(p, value))
	idx.logger.LogInsert(p, replaced, nil)
	return e, nil
}

// Update replaces the value stored at p. It returns ErrNotFound if no entry
// exists at p and an *ErrPointOutOfBounds if p lies outside the boundary.
func (idx *Index[V]) Update(p geom.Point, value V) (Entry[V], error) {
	if err := idx.checkBounds(p); err != nil {
		idx.logger.LogUpdate(p, err)
		return Entry[V]{}, err
	}

	root := idx.tree.Root()
	if _, ok := idx.tree.FindPoint(root, p); !ok {
		err := fmt.Errorf("%w: no entry at %s", ErrNotFound, p)
		idx.logger.LogUpdate(p, err)
		return Entry[V]{}, err
	}

	idx.remove(root, p)
	e := idx.insert(root, model.NewEntry(p, value))
	idx.logger.LogUpdate(p, nil)
	return e, nil
}

// Exists reports whether an entry is stored at exactly p.
func (idx *Index[V]) Exists(p geom.Point) (bool, error) {
	_, ok, err := idx.Get(p)
	return ok, err
}

// Get returns the entry stored at exactly p.
func (idx *Index[V]) Get(p geom.Point) (Entry[V], bool, error) {
	if err := idx.checkBounds(p); err != nil {
		return Entry[V]{}, false, err
	}
	e, ok := idx.tree.FindPoint(idx.tree.Root(), p)
	return e, ok, nil
}

// Remove deletes the entry stored at exactly p and reports whether one
// existed. After a removal, sparse subtrees are merged back into leaves.
func (idx *Index[V]) Remove(p geom.Point) (bool, error) {
	if err := idx.checkBounds(p); err != nil {
		idx.logger.LogRemove(p, false, err)
		return false, err
	}

	root := idx.tree.Root()
	removed := idx.remove(root, p)
	if removed {
		idx.tryMerge(root)
	}

	idx.logger.LogRemove(p, removed, nil)
	return removed, nil
}

// QueryRect returns every entry inside the rectangle with top-left corner p
// and the given extents. Points on the rectangle's edges are included.
// The order of the results is unspecified.
func (idx *Index[V]) QueryRect(p geom.Point, width, height float64) ([]Entry[V], error) {
	r, err := geom.NewRect(p.X, p.Y, width, height)
	if err != nil {
		err = invalidArgument(err)
		idx.logger.LogQuery(fmt.Sprintf("rect %s %gx%g", p, width, height), 0, err)
		return nil, err
	}

	results := idx.tree.QueryRange(idx.tree.Root(), r, make([]Entry[V], 0))
	idx.logger.LogQuery(r.String(), len(results), nil)
	return results, nil
}

// QueryCircle returns every entry within radius of p, circumference included.
// The order of the results is unspecified.
func (idx *Index[V]) QueryCircle(p geom.Point, radius float64) ([]Entry[V], error) {
	c, err := geom.NewCircle(p, radius)
	if err != nil {
		err = invalidArgument(err)
		idx.logger.LogQuery(fmt.Sprintf("circle(%s r=%g)", p, radius), 0, err)
		return nil, err
	}

	results := idx.tree.QueryCircle(idx.tree.Root(), c, make([]Entry[V], 0))
	idx.logger.LogQuery(c.String(), len(results), nil)
	return results, nil
}

// Clear removes every entry. The boundary and split threshold are kept.
func (idx *Index[V]) Clear() {
	idx.tree.Reset()
	idx.logger.Debug("index cleared")
}

func (idx *Index[V]) checkBounds(p geom.Point) error {
	boundary := idx.Boundary()
	if !boundary.ContainsInclusive(p) {
		return &ErrPointOutOfBounds{Point: p, Boundary: boundary}
	}
	return nil
}

func (idx *Index[V]) insert(id node.ID, e Entry[V]) Entry[V] {
	t := idx.tree
	if t.IsLeaf(id) {
		if t.EntryCount(id) < idx.splitThreshold || idx.atMaxDepth(id) {
			t.AddEntry(id, e)
			return e
		}
		t.Subdivide(id)
	}
	return idx.insert(t.QuadrantFor(id, e.Point()), e)
}

func (idx *Index[V]) atMaxDepth(id node.ID) bool {
	return idx.maxDepth > 0 && idx.tree.Depth(id) >= idx.maxDepth
}

func (idx *Index[V]) remove(id node.ID, p geom.Point) bool {
	t := idx.tree
	if t.IsLeaf(id) {
		return t.RemoveEntry(id, p)
	}
	return idx.remove(t.QuadrantFor(id, p), p)
}

// tryMerge collapses sparse subtrees bottom-up. The merge threshold is
// splitThreshold/4, which is 0 for thresholds below 4; a zero threshold
// still collapses subtrees that have become empty.
func (idx *Index[V]) tryMerge(id node.ID) {
	t := idx.tree
	if t.IsLeaf(id) {
		return
	}

	for _, c := range t.Children(id) {
		idx.tryMerge(c)
	}

	if t.CanMerge(id, idx.splitThreshold/4) {
		t.Merge(id)
	}
}
