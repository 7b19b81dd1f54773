package system

import (
	"math/rand/v2"
	"slices"
	"sync/atomic"
	"time"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/event"
	"github.com/SrWilson89/doom/parameter"
)

// EffectKind classifies how a powerup modifies the player
type EffectKind uint8

const (
	// EffectInstant applies once with no expiry
	EffectInstant EffectKind = iota
	// EffectAdditive adds to a stat and subtracts the applied amount on expiry
	// Overlapping applications stack, each with its own expiry
	EffectAdditive
	// EffectSentinel replaces health with the invulnerable state
	EffectSentinel
	// EffectFlag sets a boolean held while any application is pending
	EffectFlag
)

// Effect is the static description of a powerup type
type Effect struct {
	Type     component.PowerupType
	Kind     EffectKind
	Amount   float64       // Health, damage or speed delta
	Interval time.Duration // Fire rate delta
	Duration time.Duration // Zero for instant effects
	Message  string
	Color    component.RGB
}

var effects = [component.PowerupTypeCount]Effect{
	component.PowerupHealth: {
		Kind: EffectInstant, Amount: parameter.EffectHealAmount,
		Message: "MEDKIT ACQUIRED!", Color: component.RGBHealth,
	},
	component.PowerupDamage: {
		Kind: EffectAdditive, Amount: parameter.EffectDamageBonus, Duration: parameter.EffectDamageDuration,
		Message: "BERSERK!", Color: component.RGBDamage,
	},
	component.PowerupSpeed: {
		Kind: EffectAdditive, Amount: parameter.EffectSpeedBonus, Duration: parameter.EffectSpeedDuration,
		Message: "DEMON SPEED!", Color: component.RGBSpeed,
	},
	component.PowerupFireRate: {
		Kind: EffectAdditive, Interval: parameter.EffectFireRateBonus, Duration: parameter.EffectFireRateDuration,
		Message: "CHAINGUN READY!", Color: component.RGBFireRate,
	},
	component.PowerupInvulnerability: {
		Kind: EffectSentinel, Duration: parameter.EffectInvulnDuration,
		Message: "INVULNERABLE!", Color: component.RGBInvuln,
	},
	component.PowerupExplosive: {
		Kind: EffectFlag, Duration: parameter.EffectExplosiveDuration,
		Message: "BFG ONLINE!", Color: component.RGBExplosive,
	},
	component.PowerupDoubleShot: {
		Kind: EffectFlag, Duration: parameter.EffectDoubleShotDuration,
		Message: "DOUBLE SHOTGUN!", Color: component.RGBDoubleShot,
	},
}

// DescribeEffect returns the description of t; invalid types yield ok=false
func DescribeEffect(t component.PowerupType) (Effect, bool) {
	if !t.Valid() {
		return Effect{}, false
	}
	e := effects[t]
	e.Type = t
	return e, true
}

// dropWeights is the powerup selection table, summing to 1
var dropWeights = [component.PowerupTypeCount]float64{
	component.PowerupHealth:          parameter.DropWeightHealth,
	component.PowerupDamage:          parameter.DropWeightOther,
	component.PowerupSpeed:           parameter.DropWeightOther,
	component.PowerupFireRate:        parameter.DropWeightOther,
	component.PowerupInvulnerability: parameter.DropWeightOther,
	component.PowerupExplosive:       parameter.DropWeightOther,
	component.PowerupDoubleShot:      parameter.DropWeightOther,
}

// PickPowerupType maps a uniform roll in [0,1) onto the weighted drop table
func PickPowerupType(roll float64) component.PowerupType {
	acc := 0.0
	for t, weight := range dropWeights {
		acc += weight
		if roll < acc {
			return component.PowerupType(t)
		}
	}
	return component.PowerupTypeCount - 1
}

// RollPowerupType draws a weighted powerup type
func RollPowerupType(r *rand.Rand) component.PowerupType {
	return PickPowerupType(r.Float64())
}

// ApplyEffect applies a collected powerup to the player and schedules its expiry
// The pickup message is queued for the notification collaborator
func ApplyEffect(w *engine.World, t component.PowerupType) (Effect, bool) {
	eff, ok := DescribeEffect(t)
	if !ok {
		return Effect{}, false
	}
	p := &w.Player

	switch t {
	case component.PowerupHealth:
		if p.Invulnerable {
			// Health is restored from the snapshot on expiry, so heal that instead
			p.InvulnSnapshot = min(p.MaxHealth, p.InvulnSnapshot+int(eff.Amount))
		} else {
			p.Heal(int(eff.Amount))
		}

	case component.PowerupDamage:
		p.Damage += eff.Amount
		schedule(w, t, eff.Duration, func() { p.Damage -= eff.Amount })

	case component.PowerupSpeed:
		p.Speed += eff.Amount
		schedule(w, t, eff.Duration, func() { p.Speed -= eff.Amount })

	case component.PowerupFireRate:
		applied := min(eff.Interval, max(0, p.FireRate-parameter.EffectFireRateFloor))
		p.FireRate -= applied
		schedule(w, t, eff.Duration, func() { p.FireRate += applied })

	case component.PowerupInvulnerability:
		if !p.Invulnerable {
			p.InvulnSnapshot = p.Health
			p.Invulnerable = true
		}
		schedule(w, t, eff.Duration, func() {
			if !hasEffect(w, t) {
				p.Invulnerable = false
				p.Health = min(p.InvulnSnapshot, p.MaxHealth)
			}
		})

	case component.PowerupExplosive:
		p.ExplosiveShots = true
		schedule(w, t, eff.Duration, func() { p.ExplosiveShots = hasEffect(w, t) })

	case component.PowerupDoubleShot:
		p.DoubleShot = true
		schedule(w, t, eff.Duration, func() { p.DoubleShot = hasEffect(w, t) })
	}

	w.PushEvent(event.EventPowerupCollected, &event.PowerupCollectedPayload{
		Type:    t,
		Message: eff.Message,
		Color:   eff.Color,
	})
	return eff, true
}

// schedule registers revert to run after d of session time
// The active entry is dropped before revert runs, so revert sees only the remaining applications
func schedule(w *engine.World, t component.PowerupType, d time.Duration, revert func()) {
	expires := w.Now() + d
	var h engine.TimerHandle
	h = w.Timers.Schedule(expires, func() {
		w.Effects = slices.DeleteFunc(w.Effects, func(e engine.ActiveEffect) bool {
			return e.Handle == h
		})
		revert()
		w.PushEvent(event.EventEffectExpired, &event.EffectExpiredPayload{Type: t})
	})
	w.Effects = append(w.Effects, engine.ActiveEffect{Type: t, Handle: h, Expires: expires})
}

func hasEffect(w *engine.World, t component.PowerupType) bool {
	return slices.ContainsFunc(w.Effects, func(e engine.ActiveEffect) bool {
		return e.Type == t
	})
}

// BuffSystem runs due effect expiries before any other system reads player stats
type BuffSystem struct {
	statActive  *atomic.Int64
	statExpired *atomic.Int64
}

func NewBuffSystem(w *engine.World) engine.System {
	return &BuffSystem{
		statActive:  w.Status.Ints.Get("buff.active"),
		statExpired: w.Status.Ints.Get("buff.expired"),
	}
}

func (s *BuffSystem) Name() string {
	return "buff"
}

func (s *BuffSystem) Priority() int {
	return parameter.PriorityBuff
}

func (s *BuffSystem) Update(w *engine.World) {
	if n := w.Timers.Advance(w.Now()); n > 0 {
		s.statExpired.Add(int64(n))
	}
	s.statActive.Store(int64(len(w.Effects)))
}
