package parameter

import (
	"time"
)

// Powerup Entities
const (
	PowerupRadius   = 15.0
	PowerupLifetime = 12 * time.Second

	// PowerupPickupMargin is added to the powerup radius for player pickup range
	PowerupPickupMargin = 12.0

	// PowerupPickupScore is awarded per pickup
	PowerupPickupScore = 100

	// PowerupPulseRate advances pulse phase per millisecond of frame time
	PowerupPulseRate = 0.005
)

// Timed Effect Amounts
const (
	EffectHealAmount    = 50
	EffectDamageBonus   = 20.0
	EffectSpeedBonus    = 2.0
	EffectFireRateBonus = 50 * time.Millisecond

	// EffectFireRateFloor bounds the fire rate reduction
	EffectFireRateFloor = 50 * time.Millisecond
)

// Timed Effect Durations
const (
	EffectDamageDuration     = 10 * time.Second
	EffectSpeedDuration      = 8 * time.Second
	EffectFireRateDuration   = 12 * time.Second
	EffectInvulnDuration     = 5 * time.Second
	EffectExplosiveDuration  = 15 * time.Second
	EffectDoubleShotDuration = 20 * time.Second
)

// Drop Weights (sum to 1.0)
const (
	DropWeightHealth = 0.4
	DropWeightOther  = 0.1
)
