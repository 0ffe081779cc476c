package arena

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// ID addresses a slot.
type ID uint32

// None is the ID that is never allocated.
const None ID = 0

// Stats describes slot usage.
type Stats struct {
	Live   int    // slots currently allocated
	Free   int    // slots released and waiting for reuse
	Grown  int    // slots ever appended to the backing slice
	Allocs uint64 // cumulative Alloc calls
	Frees  uint64 // cumulative successful Free calls
}

// Slots is a slot table of T values addressed by ID.
type Slots[T any] struct {
	items  []T
	free   *roaring.Bitmap
	allocs uint64
	frees  uint64
}

// New creates a Slots table with room for capacity values before growing.
func New[T any](capacity int) *Slots[T] {
	if capacity < 0 {
		capacity = 0
	}
	// Slot 0 backs None and is never handed out.
	return &Slots[T]{
		items: make([]T, 1, capacity+1),
		free:  roaring.New(),
	}
}

// Alloc stores v in a free slot and returns its ID.
// Released slots are reused lowest ID first.
func (s *Slots[T]) Alloc(v T) ID {
	s.allocs++

	if !s.free.IsEmpty() {
		id := s.free.Minimum()
		s.free.Remove(id)
		s.items[id] = v
		return ID(id)
	}

	if uint64(len(s.items)) > math.MaxUint32 {
		panic(fmt.Sprintf("arena: slot space exhausted after %d slots", len(s.items)-1))
	}

	s.items = append(s.items, v)
	return ID(len(s.items) - 1) //nolint:gosec // bounded above
}

// Get returns a pointer to the value in slot id, or nil if id is None,
// out of range, or freed.
func (s *Slots[T]) Get(id ID) *T {
	if !s.Live(id) {
		return nil
	}
	return &s.items[id]
}

// Live reports whether id addresses an allocated slot.
func (s *Slots[T]) Live(id ID) bool {
	return id != None && int(id) < len(s.items) && !s.free.Contains(uint32(id))
}

// Free releases slot id for reuse. It reports false if the slot was not live.
func (s *Slots[T]) Free(id ID) bool {
	if !s.Live(id) {
		return false
	}

	var zero T
	s.items[id] = zero
	s.free.Add(uint32(id))
	s.frees++
	return true
}

// Len returns the number of live slots.
func (s *Slots[T]) Len() int {
	return len(s.items) - 1 - int(s.free.GetCardinality()) //nolint:gosec // bounded by len(items)
}

// Reset releases every slot and truncates the backing slice.
func (s *Slots[T]) Reset() {
	clear(s.items)
	s.items = s.items[:1]
	s.free.Clear()
}

// Stats returns the current slot usage.
func (s *Slots[T]) Stats() Stats {
	free := int(s.free.GetCardinality()) //nolint:gosec // bounded by len(items)
	return Stats{
		Live:   len(s.items) - 1 - free,
		Free:   free,
		Grown:  len(s.items) - 1,
		Allocs: s.allocs,
		Frees:  s.frees,
	}
}

// String returns a human-readable summary of slot usage.
func (s *Slots[T]) String() string {
	st := s.Stats()
	return fmt.Sprintf("Slots{live=%d, free=%d, grown=%d}", st.Live, st.Free, st.Grown)
}
