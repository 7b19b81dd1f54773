package system

import (
	"sync/atomic"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/physics"
	"github.com/SrWilson89/doom/vmath"
)

// CombatSystem resolves bullet hits against enemies and player pickups
// Killed enemies stay in the store until the enemy system removes them next frame
type CombatSystem struct {
	statHits    *atomic.Int64
	statSplash  *atomic.Int64
	statPickups *atomic.Int64
}

func NewCombatSystem(w *engine.World) engine.System {
	return &CombatSystem{
		statHits:    w.Status.Ints.Get("combat.hits"),
		statSplash:  w.Status.Ints.Get("combat.splash"),
		statPickups: w.Status.Ints.Get("powerup.pickups"),
	}
}

func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

func (s *CombatSystem) Update(w *engine.World) {
	w.Bullets.Each(func(bi int, b *component.BulletComponent) {
		target := firstHit(w.Enemies, b.Pos)
		if target < 0 {
			return
		}

		damage := w.Player.Damage
		w.Enemies.At(target).Health -= damage
		s.statHits.Add(1)

		if b.Explosive {
			s.statSplash.Add(int64(Splash(w.Enemies, b.Pos, target, damage*parameter.SplashDamageFactor)))
		}

		// A bullet is consumed by its first hit
		w.Bullets.Remove(bi)
	})

	p := &w.Player
	w.Powerups.Each(func(i int, pu *component.PowerupComponent) {
		if vmath.V2Dist(p.Pos, pu.Pos) >= pu.Radius+parameter.PowerupPickupMargin {
			return
		}
		ApplyEffect(w, pu.Type)
		w.State.Score += parameter.PowerupPickupScore
		w.State.Pickups++
		s.statPickups.Add(1)
		w.Powerups.Remove(i)
	})
}

// firstHit returns the index of the first living enemy whose radius contains pos, or -1
func firstHit(enemies *engine.Store[component.EnemyComponent], pos vmath.Vec2) int {
	for i := range enemies.Len() {
		if enemies.Removed(i) {
			continue
		}
		e := enemies.At(i)
		if !e.Dead() && physics.CirclesOverlap(pos, e.Pos, e.Radius) {
			return i
		}
	}
	return -1
}

// Splash damages every living enemy other than skip within the splash radius of impact
// Returns the number of enemies hit
func Splash(enemies *engine.Store[component.EnemyComponent], impact vmath.Vec2, skip int, damage float64) int {
	n := 0
	enemies.Each(func(i int, e *component.EnemyComponent) {
		if i == skip || e.Dead() {
			return
		}
		if physics.CirclesOverlap(e.Pos, impact, parameter.SplashRadius) {
			e.Health -= damage
			n++
		}
	})
	return n
}
