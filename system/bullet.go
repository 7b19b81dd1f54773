package system

import (
	"sync/atomic"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/physics"
)

// BulletSystem advances bullets and retires them at max range or on wall contact
type BulletSystem struct {
	statBullets *atomic.Int64
}

func NewBulletSystem(w *engine.World) engine.System {
	return &BulletSystem{
		statBullets: w.Status.Ints.Get("world.bullets"),
	}
}

func (s *BulletSystem) Name() string {
	return "bullet"
}

func (s *BulletSystem) Priority() int {
	return parameter.PriorityBullet
}

func (s *BulletSystem) Update(w *engine.World) {
	w.Bullets.Each(func(i int, b *component.BulletComponent) {
		b.Advance()
		if b.Distance > parameter.BulletMaxRange || physics.HitsWall(b.Pos, parameter.BulletRadius, w.Walls) {
			w.Bullets.Remove(i)
		}
	})
	s.statBullets.Store(int64(w.Bullets.Live()))
}
