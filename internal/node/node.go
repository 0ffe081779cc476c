package node

import (
	"log/slog"
	"slices"

	"github.com/hupe1980/quadtree/geom"
	"github.com/hupe1980/quadtree/internal/arena"
	"github.com/hupe1980/quadtree/model"
)

// ID addresses a node within a Tree.
type ID = arena.ID

// None is the ID of no node. Leaves have None children and the root has a
// None parent.
const None = arena.None

// Quadrant positions within Children.
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// Options configures a Tree.
type Options struct {
	// Capacity is the number of node slots reserved up front.
	Capacity int
	// Logger receives Debug records for subdivide and merge. Nil discards.
	Logger *slog.Logger
}

type node[V any] struct {
	bounds   geom.Rect
	entries  []model.Entry[V]
	children [4]ID
	parent   ID
	depth    int
}

func (n *node[V]) isLeaf() bool {
	return n.children[TopLeft] == None
}

// Tree owns the nodes of one quadtree, starting from a single leaf root.
type Tree[V any] struct {
	slots  *arena.Slots[node[V]]
	root   ID
	logger *slog.Logger
}

// New creates a tree whose root is an empty leaf covering boundary.
func New[V any](boundary geom.Rect, optFns ...func(*Options)) *Tree[V] {
	opts := Options{Capacity: 16}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	slots := arena.New[node[V]](opts.Capacity)
	root := slots.Alloc(node[V]{bounds: boundary})

	return &Tree[V]{
		slots:  slots,
		root:   root,
		logger: opts.Logger,
	}
}

func (t *Tree[V]) get(id ID) *node[V] {
	return t.slots.Get(id)
}

// Root returns the ID of the root node.
func (t *Tree[V]) Root() ID {
	return t.root
}

// NodeCount returns the number of live nodes, root included.
func (t *Tree[V]) NodeCount() int {
	return t.slots.Len()
}

// Boundary returns the rectangle covered by id.
func (t *Tree[V]) Boundary(id ID) geom.Rect {
	if n := t.get(id); n != nil {
		return n.bounds
	}
	return geom.Rect{}
}

// Parent returns the parent of id, or None for the root.
func (t *Tree[V]) Parent(id ID) ID {
	if n := t.get(id); n != nil {
		return n.parent
	}
	return None
}

// Depth returns the distance of id from the root.
func (t *Tree[V]) Depth(id ID) int {
	if n := t.get(id); n != nil {
		return n.depth
	}
	return 0
}

// Children returns the four children of id in TopLeft..BottomRight order.
// All four are None for a leaf.
func (t *Tree[V]) Children(id ID) [4]ID {
	if n := t.get(id); n != nil {
		return n.children
	}
	return [4]ID{}
}

// IsLeaf reports whether id has no children. An ID that addresses no node
// has none.
func (t *Tree[V]) IsLeaf(id ID) bool {
	n := t.get(id)
	return n == nil || n.isLeaf()
}

// Entries returns a copy of the entries held directly by id.
func (t *Tree[V]) Entries(id ID) []model.Entry[V] {
	if n := t.get(id); n != nil {
		return slices.Clone(n.entries)
	}
	return nil
}

// EntryCount returns the number of entries held directly by id.
func (t *Tree[V]) EntryCount(id ID) int {
	if n := t.get(id); n != nil {
		return len(n.entries)
	}
	return 0
}

// TotalEntryCount returns the number of entries in the subtree rooted at id.
func (t *Tree[V]) TotalEntryCount(id ID) int {
	n := t.get(id)
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return len(n.entries)
	}

	total := 0
	for _, c := range n.children {
		total += t.TotalEntryCount(c)
	}
	return total
}

// Reset drops every node and starts over with an empty leaf root covering
// the same boundary.
func (t *Tree[V]) Reset() {
	boundary := t.Boundary(t.root)
	t.slots.Reset()
	t.root = t.slots.Alloc(node[V]{bounds: boundary})
}
