package sunaba

// The higher-arity queries all drive on T1's storage and probe the
// remaining kinds in declared order, short-circuiting on the first
// absent kind. Unlike Query2, no smallest-set selection is applied:
// the visit order is always T1's dense order, and T1 is always the
// kind that must not be mutated while the query runs. Name the rarest
// kind first for the fewest probes.

// Query3 visits every entity that has all of T1, T2 and T3.
func Query3[T1 any, T2 any, T3 any](w *World, visit func(Entity, *T1, *T2, *T3)) {
	s1 := StorageOf[T1](w)
	s2 := StorageOf[T2](w)
	s3 := StorageOf[T3](w)
	if s1 == nil || s2 == nil || s3 == nil {
		return
	}
	for i := 0; i < s1.count; i++ {
		e := s1.dense[i]
		v2, ok := s2.Get(e)
		if !ok {
			continue
		}
		v3, ok := s3.Get(e)
		if !ok {
			continue
		}
		visit(e, &s1.values[i], v2, v3)
	}
}

// Query4 visits every entity that has all of T1 through T4.
func Query4[T1 any, T2 any, T3 any, T4 any](w *World, visit func(Entity, *T1, *T2, *T3, *T4)) {
	s1 := StorageOf[T1](w)
	s2 := StorageOf[T2](w)
	s3 := StorageOf[T3](w)
	s4 := StorageOf[T4](w)
	if s1 == nil || s2 == nil || s3 == nil || s4 == nil {
		return
	}
	for i := 0; i < s1.count; i++ {
		e := s1.dense[i]
		v2, ok := s2.Get(e)
		if !ok {
			continue
		}
		v3, ok := s3.Get(e)
		if !ok {
			continue
		}
		v4, ok := s4.Get(e)
		if !ok {
			continue
		}
		visit(e, &s1.values[i], v2, v3, v4)
	}
}

// Query5 visits every entity that has all of T1 through T5.
func Query5[T1 any, T2 any, T3 any, T4 any, T5 any](w *World, visit func(Entity, *T1, *T2, *T3, *T4, *T5)) {
	s1 := StorageOf[T1](w)
	s2 := StorageOf[T2](w)
	s3 := StorageOf[T3](w)
	s4 := StorageOf[T4](w)
	s5 := StorageOf[T5](w)
	if s1 == nil || s2 == nil || s3 == nil || s4 == nil || s5 == nil {
		return
	}
	for i := 0; i < s1.count; i++ {
		e := s1.dense[i]
		v2, ok := s2.Get(e)
		if !ok {
			continue
		}
		v3, ok := s3.Get(e)
		if !ok {
			continue
		}
		v4, ok := s4.Get(e)
		if !ok {
			continue
		}
		v5, ok := s5.Get(e)
		if !ok {
			continue
		}
		visit(e, &s1.values[i], v2, v3, v4, v5)
	}
}

// Query6 visits every entity that has all of T1 through T6.
func Query6[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any](w *World, visit func(Entity, *T1, *T2, *T3, *T4, *T5, *T6)) {
	s1 := StorageOf[T1](w)
	s2 := StorageOf[T2](w)
	s3 := StorageOf[T3](w)
	s4 := StorageOf[T4](w)
	s5 := StorageOf[T5](w)
	s6 := StorageOf[T6](w)
	if s1 == nil || s2 == nil || s3 == nil || s4 == nil || s5 == nil || s6 == nil {
		return
	}
	for i := 0; i < s1.count; i++ {
		e := s1.dense[i]
		v2, ok := s2.Get(e)
		if !ok {
			continue
		}
		v3, ok := s3.Get(e)
		if !ok {
			continue
		}
		v4, ok := s4.Get(e)
		if !ok {
			continue
		}
		v5, ok := s5.Get(e)
		if !ok {
			continue
		}
		v6, ok := s6.Get(e)
		if !ok {
			continue
		}
		visit(e, &s1.values[i], v2, v3, v4, v5, v6)
	}
}
