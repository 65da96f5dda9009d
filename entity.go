// Package sunaba implements a sparse-set Entity Component System for Go.
//
// An Entity is a plain integer handle; every component kind lives in its
// own Storage, a sparse set backed by two parallel dense arrays. Adding,
// removing and looking up a component are all O(1), and iteration walks
// contiguous memory. The World owns one Storage per component kind and
// joins them through the Query functions, which visit every entity that
// carries all of the requested kinds.
//
// Features:
// - Per-kind sparse-set storage, no archetypes and no entity moves on
//   component add/remove.
// - O(1) add, remove, lookup; swap-to-end removal keeps the dense
//   arrays gap-free.
// - Queries for 1 to 6 component kinds with direct pointers into live
//   storage.
// - No reflection and no allocation on the hot paths.
package sunaba

// Entity is a unique identifier for an object in the World. It carries no
// data itself; components attached through the World hold all state.
type Entity uint32

// NullEntity is the reserved "no entity" value. CreateEntity returns it
// once the id space is exhausted, and every storage operation treats it
// as permanently absent.
const NullEntity Entity = 0

// MaxEntities bounds the number of ids a World can ever issue. Valid
// entities lie in [1, MaxEntities).
const MaxEntities = 10000

// allocator issues unique, monotonically increasing entity ids. Ids are
// never recycled: a destroyed entity's id stays retired for the lifetime
// of the World.
type allocator struct {
	next Entity
}

func newAllocator() allocator {
	return allocator{next: 1}
}

// create returns the next unused id, or NullEntity once the id space is
// exhausted. Exhaustion leaves the counter unchanged, so every later
// call keeps returning NullEntity.
func (a *allocator) create() Entity {
	if a.next >= MaxEntities {
		return NullEntity
	}
	e := a.next
	a.next++
	return e
}
