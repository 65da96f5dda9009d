package sunaba

// invalidIndex marks a sparse slot that points at no dense entry. Any
// value >= count would do; keeping it above MaxEntities makes stale
// slots obvious in a debugger.
const invalidIndex = uint32(MaxEntities + 1)

// initialCapacity is the dense-array size allocated by the first Add.
// Later growths double the capacity.
const initialCapacity = 64

// Storage is a sparse set mapping entities to component values of type
// T. It keeps two parallel dense arrays (entities and values) plus a
// sparse index keyed by entity id, giving O(1) membership tests,
// inserts, updates and removals while iteration stays contiguous.
//
// Entries are dense at all times: removal swaps the last entry into the
// vacated slot, so dense order is insertion order modulo removals.
//
// Invalid input (the null entity, an id at or beyond MaxEntities, an
// out-of-range position) is absorbed as a no-op or an absent result,
// never a panic.
type Storage[T any] struct {
	sparse []uint32 // entity id -> dense index, invalidIndex when absent
	dense  []Entity // entities present, packed in [0, count)
	values []T      // values parallel to dense
	count  int
}

// NewStorage returns an empty storage with its sparse index allocated.
func NewStorage[T any]() *Storage[T] {
	s := &Storage[T]{}
	s.init()
	return s
}

func (s *Storage[T]) init() {
	s.sparse = make([]uint32, MaxEntities)
	for i := range s.sparse {
		s.sparse[i] = invalidIndex
	}
}

// index returns the dense position of e, reporting whether e is present.
func (s *Storage[T]) index(e Entity) (uint32, bool) {
	if e == NullEntity || e >= MaxEntities || s.sparse == nil {
		return 0, false
	}
	idx := s.sparse[e]
	if idx >= uint32(s.count) || s.dense[idx] != e {
		return 0, false
	}
	return idx, true
}

// Add attaches value v to entity e, overwriting in place if e already
// has one. Invalid entities are ignored.
func (s *Storage[T]) Add(e Entity, v T) {
	if e == NullEntity || e >= MaxEntities {
		return
	}
	if s.sparse == nil {
		s.init()
	}
	if idx, ok := s.index(e); ok {
		s.values[idx] = v
		return
	}
	if s.count == len(s.dense) {
		s.grow()
	}
	s.dense[s.count] = e
	s.values[s.count] = v
	s.sparse[e] = uint32(s.count)
	s.count++
}

// grow replaces the dense arrays with larger ones, copying the live
// prefix. The old arrays stay untouched until both allocations succeed.
func (s *Storage[T]) grow() {
	newCap := initialCapacity
	if len(s.dense) > 0 {
		newCap = len(s.dense) * 2
	}
	dense := make([]Entity, newCap)
	values := make([]T, newCap)
	copy(dense, s.dense[:s.count])
	copy(values, s.values[:s.count])
	s.dense = dense
	s.values = values
}

// Remove detaches e's value. The last dense entry is swapped into the
// vacated slot, so no other entry moves and no gap is left. Absent
// entities are ignored.
func (s *Storage[T]) Remove(e Entity) {
	idx, ok := s.index(e)
	if !ok {
		return
	}
	last := uint32(s.count - 1)
	if idx != last {
		moved := s.dense[last]
		s.dense[idx] = moved
		s.values[idx] = s.values[last]
		s.sparse[moved] = idx
	}
	s.sparse[e] = invalidIndex
	s.count--
}

// Get returns a pointer to e's value, or nil and false when e is absent.
// The pointer aliases live storage: it is valid until the next Add,
// Remove or Clear on this storage and must not be retained.
func (s *Storage[T]) Get(e Entity) (*T, bool) {
	idx, ok := s.index(e)
	if !ok {
		return nil, false
	}
	return &s.values[idx], true
}

// Has reports whether e currently holds a value in this storage.
func (s *Storage[T]) Has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

// Count returns the number of entities present.
func (s *Storage[T]) Count() int {
	return s.count
}

// EntityAt returns the entity at dense position i, or NullEntity when i
// is out of range. Position, not entity id, is the iteration key.
func (s *Storage[T]) EntityAt(i int) Entity {
	if i < 0 || i >= s.count {
		return NullEntity
	}
	return s.dense[i]
}

// ValueAt returns a pointer to the value at dense position i, or nil
// when i is out of range. Like Get, the pointer must not outlive the
// next mutation of this storage.
func (s *Storage[T]) ValueAt(i int) *T {
	if i < 0 || i >= s.count {
		return nil
	}
	return &s.values[i]
}

// Clear detaches every entity while retaining the allocated capacity.
func (s *Storage[T]) Clear() {
	for i := 0; i < s.count; i++ {
		s.sparse[s.dense[i]] = invalidIndex
	}
	s.count = 0
}
