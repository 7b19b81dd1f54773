package system

import (
	"sync/atomic"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/event"
	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/physics"
	"github.com/SrWilson89/doom/vmath"
)

// EnemySystem removes dead enemies, then chases or melees the player
type EnemySystem struct {
	statEnemies *atomic.Int64
	statKills   *atomic.Int64
	statDrops   *atomic.Int64
}

func NewEnemySystem(w *engine.World) engine.System {
	return &EnemySystem{
		statEnemies: w.Status.Ints.Get("world.enemies"),
		statKills:   w.Status.Ints.Get("enemy.kills"),
		statDrops:   w.Status.Ints.Get("enemy.drops"),
	}
}

func (s *EnemySystem) Name() string {
	return "enemy"
}

func (s *EnemySystem) Priority() int {
	return parameter.PriorityEnemy
}

func (s *EnemySystem) Update(w *engine.World) {
	w.Enemies.Each(func(i int, e *component.EnemyComponent) {
		if e.Dead() {
			s.kill(w, i, e)
		}
	})

	now := w.Now()
	p := &w.Player

	w.Enemies.Each(func(_ int, e *component.EnemyComponent) {
		dist := vmath.V2Dist(p.Pos, e.Pos)

		if dist > parameter.EnemyMeleeRange {
			step := vmath.V2Toward(e.Pos, p.Pos, e.Speed)
			e.Pos = physics.SlideMove(e.Pos, step, e.Radius, w.Walls)
			return
		}

		if now-e.LastAttack <= e.AttackCooldown || p.Invulnerable {
			return
		}
		e.LastAttack = now
		if p.TakeDamage(e.Damage) {
			w.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{
				Amount: e.Damage,
				Health: p.Health,
			})
		}
	})

	s.statEnemies.Store(int64(w.Enemies.Live()))
}

// kill scores a dead enemy, rolls its drop and marks it for removal
func (s *EnemySystem) kill(w *engine.World, i int, e *component.EnemyComponent) {
	w.State.Score += parameter.EnemyKillScore
	w.State.Kills++
	s.statKills.Add(1)

	dropped := w.Rand.Float64() < parameter.EnemyDropChance
	if dropped {
		t := RollPowerupType(w.Rand)
		w.Powerups.Add(component.PowerupComponent{
			Pos:       e.Pos,
			Type:      t,
			Radius:    parameter.PowerupRadius,
			SpawnTime: w.Now(),
			Lifetime:  parameter.PowerupLifetime,
		})
		s.statDrops.Add(1)
		w.PushEvent(event.EventPowerupDropped, &event.PowerupDroppedPayload{Type: t, Pos: e.Pos})
	}

	w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{Pos: e.Pos, Dropped: dropped})
	w.Enemies.Remove(i)
}
