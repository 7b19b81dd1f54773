package engine

// Store is an ordered collection of plain records of type T
// Identity is positional; removals are deferred and applied by a single Compact per frame
// so that traversal never skips an element
// Owned by the simulation goroutine, no internal locking
type Store[T any] struct {
	items   []T
	removed []bool
	pending int
}

// NewStore creates a new store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		items:   make([]T, 0, 32),
		removed: make([]bool, 0, 32),
	}
}

// Add appends a record
func (s *Store[T]) Add(val T) {
	s.items = append(s.items, val)
	s.removed = append(s.removed, false)
}

// Len returns the number of records including those marked for removal
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Live returns the number of records not marked for removal
func (s *Store[T]) Live() int {
	return len(s.items) - s.pending
}

// At returns a pointer to the record at index i for in-place mutation
// Pointers are invalidated by Add and Compact
func (s *Store[T]) At(i int) *T {
	return &s.items[i]
}

// Removed reports whether index i is marked for removal
func (s *Store[T]) Removed(i int) bool {
	return s.removed[i]
}

// Remove marks index i for removal at the next Compact
// Marking twice is harmless
func (s *Store[T]) Remove(i int) {
	if !s.removed[i] {
		s.removed[i] = true
		s.pending++
	}
}

// Each calls fn for every record not marked for removal, in order
func (s *Store[T]) Each(fn func(i int, val *T)) {
	for i := range s.items {
		if s.removed[i] {
			continue
		}
		fn(i, &s.items[i])
	}
}

// Compact drops marked records in one pass, preserving order
func (s *Store[T]) Compact() {
	if s.pending == 0 {
		return
	}
	n := 0
	for i := range s.items {
		if s.removed[i] {
			continue
		}
		s.items[n] = s.items[i]
		n++
	}

	var zero T
	for i := n; i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = s.items[:n]
	s.removed = s.removed[:n]
	clear(s.removed)
	s.pending = 0
}

// Snapshot returns a copy of the live records for readers outside the simulation step
func (s *Store[T]) Snapshot() []T {
	out := make([]T, 0, s.Live())
	s.Each(func(_ int, val *T) {
		out = append(out, *val)
	})
	return out
}

// Clear removes all records
func (s *Store[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
	s.removed = s.removed[:0]
	s.pending = 0
}
