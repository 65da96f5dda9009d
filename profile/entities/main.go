// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/sunaba"
	"github.com/pkg/profile"
)

func main() {
	rounds := 500
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds)
	p.Stop()
}

// run churns through full worlds: create every issuable entity with two
// components, touch them through a join, then tear everything down.
func run(rounds int) {
	for range rounds {
		w := sunaba.NewWorld()
		for {
			e := w.CreateEntity()
			if e == sunaba.NullEntity {
				break
			}
			w.AddTransform(e, sunaba.NewTransform(sunaba.Vec2{X: float32(e)}))
			w.AddPhysics(e, sunaba.Physics{Velocity: sunaba.Vec2{X: 1, Y: 1}})
		}

		sunaba.Query2(w, func(e sunaba.Entity, tr *sunaba.Transform, ph *sunaba.Physics) {
			tr.Position = tr.Position.Add(ph.Velocity)
		})

		ids := make([]sunaba.Entity, 0, sunaba.MaxEntities)
		sunaba.Query(w, func(e sunaba.Entity, _ *sunaba.Transform) {
			ids = append(ids, e)
		})
		for _, e := range ids {
			w.DestroyEntity(e)
		}
	}
}
