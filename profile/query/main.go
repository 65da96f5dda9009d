// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"github.com/edwinsyarief/sunaba"
	"github.com/pkg/profile"
)

func main() {
	iters := 5000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters)
	p.Stop()
}

// run hammers the widest join over a fully populated world.
func run(iters int) {
	w := sunaba.NewWorld()
	for {
		e := w.CreateEntity()
		if e == sunaba.NullEntity {
			break
		}
		w.AddTransform(e, sunaba.NewTransform(sunaba.Vec2{}))
		w.AddSprite(e, sunaba.Sprite{Width: 8, Height: 8})
		w.AddAnimation(e, sunaba.Animation{TotalFrames: 4, FrameTime: 0.1})
		w.AddPhysics(e, sunaba.Physics{Velocity: sunaba.Vec2{X: 1}})
		w.AddCollider(e, sunaba.Collider{Size: sunaba.Vec2{X: 8, Y: 8}})
		w.AddCollisionState(e, sunaba.CollisionState{})
	}

	for range iters {
		sunaba.Query6(w, func(e sunaba.Entity,
			tr *sunaba.Transform, _ *sunaba.Sprite, _ *sunaba.Animation,
			ph *sunaba.Physics, _ *sunaba.Collider, _ *sunaba.CollisionState) {
			tr.Position = tr.Position.Add(ph.Velocity)
		})
	}
}
