package sunaba

import (
	"math/rand"
	"testing"
)

const benchEntities = MaxEntities - 1

func benchWorld(kinds int) *World {
	w := NewWorld()
	for i := 0; i < benchEntities; i++ {
		e := w.CreateEntity()
		w.AddTransform(e, NewTransform(Vec2{X: float32(i)}))
		if kinds > 1 {
			w.AddPhysics(e, Physics{Velocity: Vec2{X: 1}})
		}
		if kinds > 2 {
			w.AddCollider(e, Collider{Size: Vec2{X: 8, Y: 8}})
		}
	}
	return w
}

// go test -benchmem -run=^$ -bench ^BenchmarkStorageAdd$ . -count 1
func BenchmarkStorageAdd(b *testing.B) {
	s := NewStorage[Transform]()
	b.ReportAllocs()
	for b.Loop() {
		for e := Entity(1); e < MaxEntities; e++ {
			s.Add(e, Transform{Scale: 1})
		}
		s.Clear()
	}
}

// go test -benchmem -run=^$ -bench ^BenchmarkStorageGet$ . -count 1
func BenchmarkStorageGet(b *testing.B) {
	w := benchWorld(1)
	s := StorageOf[Transform](w)
	b.ReportAllocs()
	for b.Loop() {
		for e := Entity(1); e < MaxEntities; e++ {
			if tr, ok := s.Get(e); ok {
				tr.Position.Y += 1
			}
		}
	}
}

// go test -benchmem -run=^$ -bench ^BenchmarkStorageAddRemoveChurn$ . -count 1
func BenchmarkStorageAddRemoveChurn(b *testing.B) {
	s := NewStorage[Physics]()
	b.ReportAllocs()
	for b.Loop() {
		for e := Entity(1); e <= 1024; e++ {
			s.Add(e, Physics{})
		}
		for e := Entity(1); e <= 1024; e++ {
			s.Remove(e)
		}
	}
}

// go test -benchmem -run=^$ -bench ^BenchmarkQuery$ . -count 1
func BenchmarkQuery(b *testing.B) {
	w := benchWorld(1)
	b.ReportAllocs()
	for b.Loop() {
		Query(w, func(e Entity, tr *Transform) {
			tr.Position.X += 1
		})
	}
}

// go test -benchmem -run=^$ -bench ^BenchmarkQuery2$ . -count 1
func BenchmarkQuery2(b *testing.B) {
	w := benchWorld(2)
	b.ReportAllocs()
	for b.Loop() {
		Query2(w, func(e Entity, tr *Transform, ph *Physics) {
			tr.Position = tr.Position.Add(ph.Velocity)
		})
	}
}

// go test -benchmem -run=^$ -bench ^BenchmarkQuery3$ . -count 1
func BenchmarkQuery3(b *testing.B) {
	w := benchWorld(3)
	b.ReportAllocs()
	for b.Loop() {
		Query3(w, func(e Entity, tr *Transform, ph *Physics, co *Collider) {
			tr.Position = tr.Position.Add(ph.Velocity)
		})
	}
}

// The pair below is the cache behavior comparison: walking the dense
// array by position against probing the same entities through the
// sparse index in shuffled id order.

// go test -benchmem -run=^$ -bench ^BenchmarkIterateDense$ . -count 1
func BenchmarkIterateDense(b *testing.B) {
	w := benchWorld(1)
	s := StorageOf[Transform](w)
	b.ReportAllocs()
	for b.Loop() {
		for i := 0; i < s.Count(); i++ {
			s.ValueAt(i).Position.X += 1
		}
	}
}

// go test -benchmem -run=^$ -bench ^BenchmarkIterateShuffled$ . -count 1
func BenchmarkIterateShuffled(b *testing.B) {
	w := benchWorld(1)
	s := StorageOf[Transform](w)
	ids := make([]Entity, 0, benchEntities)
	for e := Entity(1); e < MaxEntities; e++ {
		ids = append(ids, e)
	}
	rand.New(rand.NewSource(1)).Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	b.ReportAllocs()
	for b.Loop() {
		for _, e := range ids {
			if tr, ok := s.Get(e); ok {
				tr.Position.X += 1
			}
		}
	}
}

// go test -benchmem -run=^$ -bench ^BenchmarkEventBusPublish$ . -count 1
func BenchmarkEventBusPublish(b *testing.B) {
	var bus EventBus
	sum := Entity(0)
	Subscribe(&bus, func(ev contactEvent) { sum += ev.A })
	b.ReportAllocs()
	for b.Loop() {
		Publish(&bus, contactEvent{A: 1, B: 2})
	}
}
