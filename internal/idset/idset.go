// Package idset provides a compressed set of record rows.
//
// Every loaded record is assigned a dense row number in arrival order. The
// list engine tracks filtered, selected and disabled membership as Roaring
// bitmaps over those rows, which keeps membership queries O(1) and
// intersections between the derived views cheap on large lists.
package idset

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a set of rows.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Add adds a row to the set.
func (s *Set) Add(row uint32) {
	s.rb.Add(row)
}

// Remove removes a row from the set.
func (s *Set) Remove(row uint32) {
	s.rb.Remove(row)
}

// Contains checks if a row is in the set.
func (s *Set) Contains(row uint32) bool {
	return s.rb.Contains(row)
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Len returns the number of rows in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// And keeps only rows that are also in other.
func (s *Set) And(other *Set) {
	s.rb.And(other.rb)
}

// Clear removes all rows.
func (s *Set) Clear() {
	s.rb.Clear()
}
