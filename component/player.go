package component

import (
	"time"

	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/vmath"
)

// PlayerComponent is the single player record of a session
type PlayerComponent struct {
	Pos   vmath.Vec2
	Angle float64 // Facing, radians

	Health    int
	MaxHealth int

	// Invulnerable is the sentinel state: health is unbounded and damage is suppressed
	// Health keeps its numeric value underneath and is not read while set
	Invulnerable bool
	// InvulnSnapshot is the health captured when the first overlapping invulnerability began
	InvulnSnapshot int

	Speed    float64       // Units per frame
	FireRate time.Duration // Minimum interval between shots
	Damage   float64

	ExplosiveShots bool
	DoubleShot     bool

	LastShot time.Duration // Session time of the last shot
}

// NewPlayer returns a player at start with default stats
func NewPlayer(start vmath.Vec2) PlayerComponent {
	return PlayerComponent{
		Pos:       start,
		Health:    parameter.PlayerMaxHealth,
		MaxHealth: parameter.PlayerMaxHealth,
		Speed:     parameter.PlayerSpeed,
		FireRate:  parameter.PlayerFireRate,
		Damage:    parameter.PlayerDamage,
		LastShot:  Never,
	}
}

// Alive reports whether the player can still act
func (p *PlayerComponent) Alive() bool {
	return p.Invulnerable || p.Health > 0
}

// TakeDamage applies contact damage, clamping at zero
// Returns false when damage was suppressed by invulnerability
func (p *PlayerComponent) TakeDamage(amount int) bool {
	if p.Invulnerable {
		return false
	}
	p.Health = max(0, p.Health-amount)
	return true
}

// Heal restores health up to MaxHealth
func (p *PlayerComponent) Heal(amount int) {
	p.Health = min(p.MaxHealth, p.Health+amount)
}

// Never is a session time far enough in the past that any cooldown has elapsed
const Never time.Duration = -1 << 62
