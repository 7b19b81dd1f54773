package component

import (
	"time"

	"github.com/SrWilson89/doom/vmath"
)

// PowerupType is the closed set of pickup kinds
type PowerupType uint8

const (
	PowerupHealth PowerupType = iota
	PowerupDamage
	PowerupSpeed
	PowerupFireRate
	PowerupInvulnerability
	PowerupExplosive
	PowerupDoubleShot

	PowerupTypeCount
)

var powerupNames = [PowerupTypeCount]string{
	PowerupHealth:          "health",
	PowerupDamage:          "damage",
	PowerupSpeed:           "speed",
	PowerupFireRate:        "firerate",
	PowerupInvulnerability: "invulnerability",
	PowerupExplosive:       "explosive",
	PowerupDoubleShot:      "double",
}

func (t PowerupType) String() string {
	if t < PowerupTypeCount {
		return powerupNames[t]
	}
	return "unknown"
}

// Valid reports membership in the closed set
func (t PowerupType) Valid() bool {
	return t < PowerupTypeCount
}

// PowerupComponent is a collectible dropped by a killed enemy
type PowerupComponent struct {
	Pos        vmath.Vec2
	Type       PowerupType
	Radius     float64
	SpawnTime  time.Duration // Session time at drop
	Lifetime   time.Duration
	PulsePhase float64 // Presentation only
}

// Expired reports age beyond lifetime at session time now
func (p *PowerupComponent) Expired(now time.Duration) bool {
	return now-p.SpawnTime > p.Lifetime
}
