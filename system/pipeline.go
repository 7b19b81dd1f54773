package system

import (
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/status"
)

// sessionCounters are zeroed at the start of every session; engine.ticks,
// engine.dropped_frames and game.sessions stay cumulative across restarts
var sessionCounters = []string{
	"enemy.kills",
	"enemy.drops",
	"combat.hits",
	"combat.splash",
	"powerup.pickups",
	"powerup.expired",
	"buff.expired",
	"player.shots",
	"event.dropped",
}

// ResetSessionStats zeroes the per-session counters in reg
func ResetSessionStats(reg *status.Registry) {
	for _, name := range sessionCounters {
		reg.Ints.Get(name).Store(0)
	}
}

// RegisterSystems resets the session counters and installs the standard
// frame pipeline on w
func RegisterSystems(w *engine.World) {
	ResetSessionStats(w.Status)
	for _, ctor := range []func(*engine.World) engine.System{
		NewBuffSystem,
		NewPlayerSystem,
		NewEnemySystem,
		NewBulletSystem,
		NewPowerupSystem,
		NewSpawnSystem,
		NewCombatSystem,
		NewOutcomeSystem,
	} {
		w.AddSystem(ctor(w))
	}
}
