// Package bitmap wraps Roaring Bitmaps as ordered sets of entry
// positions. The matcher uses them for query candidate sets, per-pattern
// match caches, and the per-tag-bit posting index.
package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is an ordered set of entry positions backed by a 32-bit Roaring
// Bitmap. Iteration order is ascending position, which for an
// append-only entry list is insertion order.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// FromSlice creates a set holding the given positions.
func FromSlice(positions []uint32) *Set {
	s := New()
	s.rb.AddMany(positions)
	return s
}

// Add adds a position to the set.
func (s *Set) Add(pos uint32) {
	s.rb.Add(pos)
}

// Contains checks if a position is in the set.
func (s *Set) Contains(pos uint32) bool {
	return s.rb.Contains(pos)
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Len returns the number of positions in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// And returns the intersection of s and o as a new set.
func (s *Set) And(o *Set) *Set {
	return &Set{rb: roaring.And(s.rb, o.rb)}
}

// Or unions o into s in place.
func (s *Set) Or(o *Set) {
	s.rb.Or(o.rb)
}

// Union returns the union of the given sets as a new set.
func Union(sets ...*Set) *Set {
	rbs := make([]*roaring.Bitmap, 0, len(sets))
	for _, s := range sets {
		if s != nil {
			rbs = append(rbs, s.rb)
		}
	}
	if len(rbs) == 0 {
		return New()
	}
	return &Set{rb: roaring.FastOr(rbs...)}
}

// All returns an iterator over the positions in ascending order.
func (s *Set) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Slice returns the positions in ascending order.
func (s *Set) Slice() []uint32 {
	return s.rb.ToArray()
}
