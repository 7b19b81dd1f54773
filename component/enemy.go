package component

import (
	"time"

	"github.com/SrWilson89/doom/vmath"
)

// EnemyStats are the per-wave attributes of a spawned enemy
type EnemyStats struct {
	Health         float64
	Damage         int
	Speed          float64
	AttackCooldown time.Duration
	Radius         float64
}

// EnemyComponent is a chasing melee enemy
// The target is always the session player, resolved by the enemy system
type EnemyComponent struct {
	Pos vmath.Vec2

	Health    float64
	MaxHealth float64

	Speed          float64
	Damage         int
	AttackCooldown time.Duration
	LastAttack     time.Duration
	Radius         float64

	Wave int // Wave the enemy was spawned in
}

// NewEnemy creates an enemy at pos with the given stats
func NewEnemy(pos vmath.Vec2, stats EnemyStats, wave int) EnemyComponent {
	return EnemyComponent{
		Pos:            pos,
		Health:         stats.Health,
		MaxHealth:      stats.Health,
		Speed:          stats.Speed,
		Damage:         stats.Damage,
		AttackCooldown: stats.AttackCooldown,
		LastAttack:     Never,
		Radius:         stats.Radius,
		Wave:           wave,
	}
}

// Dead reports health depleted
func (e *EnemyComponent) Dead() bool {
	return e.Health <= 0
}

// HealthFraction returns remaining health in [0,1] for health bars
func (e *EnemyComponent) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return min(1, max(0, e.Health/e.MaxHealth))
}
