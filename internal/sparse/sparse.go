// Package sparse provides a sparse set of bytes for character-set atoms.
//
// A sparse set supports O(1) insertion, membership testing and clearing while
// keeping a dense list of members for iteration. The universe is fixed at 256
// values, so the set needs no size bookkeeping and no heap growth after
// construction.
package sparse

// ByteSet is a set of byte values that supports O(1) operations.
// It maintains both a sparse array (for membership testing) and a dense array
// (for iteration). The sparse array maps values to indices in the dense array.
//
// Inserting a value twice is a no-op.
type ByteSet struct {
	sparse [256]uint8 // Maps value -> index in dense
	dense  [256]byte  // Contains the actual values
	size   int        // Current number of elements
}

// NewByteSet creates a set holding every byte of members.
// An empty members string yields an empty set.
func NewByteSet(members string) *ByteSet {
	s := &ByteSet{}
	for i := 0; i < len(members); i++ {
		s.Insert(members[i])
	}
	return s
}

// Insert adds a value to the set.
// If the value is already present, this is a no-op.
func (s *ByteSet) Insert(value byte) {
	if s.Contains(value) {
		return
	}
	s.dense[s.size] = value
	//nolint:gosec // G115: size < 256 here, a member is missing
	s.sparse[value] = uint8(s.size)
	s.size++
}

// Contains returns true if the value is in the set.
// A nil set contains nothing.
func (s *ByteSet) Contains(value byte) bool {
	if s == nil {
		return false
	}
	idx := int(s.sparse[value])
	return idx < s.size && s.dense[idx] == value
}

// Clear removes all elements from the set in O(1) time.
func (s *ByteSet) Clear() {
	s.size = 0
}

// Size returns the number of elements in the set.
func (s *ByteSet) Size() int {
	if s == nil {
		return 0
	}
	return s.size
}

// IsEmpty returns true if the set contains no elements.
func (s *ByteSet) IsEmpty() bool {
	return s.Size() == 0
}

// Values returns the members in insertion order.
// The returned slice is valid until the next mutation.
func (s *ByteSet) Values() []byte {
	if s == nil {
		return nil
	}
	return s.dense[:s.size]
}

// Clone returns an independent copy of the set.
func (s *ByteSet) Clone() *ByteSet {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
