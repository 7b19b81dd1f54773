package system

import (
	"sync/atomic"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/parameter"
)

// PowerupSystem animates dropped powerups and removes them after their lifetime
type PowerupSystem struct {
	statPowerups *atomic.Int64
	statExpired  *atomic.Int64
}

func NewPowerupSystem(w *engine.World) engine.System {
	return &PowerupSystem{
		statPowerups: w.Status.Ints.Get("world.powerups"),
		statExpired:  w.Status.Ints.Get("powerup.expired"),
	}
}

func (s *PowerupSystem) Name() string {
	return "powerup"
}

func (s *PowerupSystem) Priority() int {
	return parameter.PriorityPowerup
}

func (s *PowerupSystem) Update(w *engine.World) {
	now := w.Now()
	ms := float64(w.DeltaTime().Milliseconds())

	w.Powerups.Each(func(i int, pu *component.PowerupComponent) {
		pu.PulsePhase += ms * parameter.PowerupPulseRate
		if pu.Expired(now) {
			w.Powerups.Remove(i)
			s.statExpired.Add(1)
		}
	})
	s.statPowerups.Store(int64(w.Powerups.Live()))
}
