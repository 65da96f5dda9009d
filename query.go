package sunaba

// Query visits every entity that has a component of kind T1, in the
// storage's dense order, passing a pointer to the live value. Mutations
// through the pointer persist after the call.
//
// The visitor must not add or remove T1 components (or destroy entities
// carrying them) while the query runs: the dense array is being walked
// by position, and a swap-removal would move entries under the walk.
// Mutating other kinds, or component values in place, is safe.
//
// Queries over more component kinds follow the same pattern; Query3
// through Query6 live in query_generated.go.
func Query[T1 any](w *World, visit func(Entity, *T1)) {
	s1 := StorageOf[T1](w)
	if s1 == nil {
		return
	}
	for i := 0; i < s1.count; i++ {
		visit(s1.dense[i], &s1.values[i])
	}
}

// Query2 visits every entity that has both T1 and T2. The storage with
// fewer entries drives the iteration and the other is probed per
// entity, which keeps the probe count low when the set sizes differ;
// ties go to T1. Visit order is therefore the driving storage's dense
// order, not sorted by entity id.
//
// The restriction on mutating the driving kind during the query applies
// to whichever of the two kinds is driving.
func Query2[T1 any, T2 any](w *World, visit func(Entity, *T1, *T2)) {
	s1 := StorageOf[T1](w)
	s2 := StorageOf[T2](w)
	if s1 == nil || s2 == nil {
		return
	}
	if s1.count <= s2.count {
		for i := 0; i < s1.count; i++ {
			e := s1.dense[i]
			v2, ok := s2.Get(e)
			if !ok {
				continue
			}
			visit(e, &s1.values[i], v2)
		}
		return
	}
	for i := 0; i < s2.count; i++ {
		e := s2.dense[i]
		v1, ok := s1.Get(e)
		if !ok {
			continue
		}
		visit(e, v1, &s2.values[i])
	}
}
