package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/vmath"
)

// SessionStartedPayload identifies the new world
type SessionStartedPayload struct {
	SessionID  uuid.UUID
	Generation uint64
}

// GameOverPayload carries the final tally
type GameOverPayload struct {
	Victory   bool
	Score     int
	Kills     int
	Wave      int
	Elapsed   time.Duration
	BestScore int  // Best score after this session
	NewRecord bool // Score exceeded the previous best
}

// WaveAdvancedPayload contains the new wave and spawn cadence
type WaveAdvancedPayload struct {
	Wave          int
	SpawnInterval time.Duration
}

// ShotFiredPayload describes one trigger pull
type ShotFiredPayload struct {
	Bullets   int
	Explosive bool
}

// PlayerDamagedPayload contains the damage dealt and remaining health
type PlayerDamagedPayload struct {
	Amount int
	Health int
}

// EnemyKilledPayload contains the death position
type EnemyKilledPayload struct {
	Pos     vmath.Vec2
	Dropped bool
}

// EnemySpawnedPayload contains spawn position and wave
type EnemySpawnedPayload struct {
	Pos  vmath.Vec2
	Wave int
}

// PowerupDroppedPayload contains the dropped type and position
type PowerupDroppedPayload struct {
	Type component.PowerupType
	Pos  vmath.Vec2
}

// PowerupCollectedPayload is forwarded to the notification collaborator
type PowerupCollectedPayload struct {
	Type    component.PowerupType
	Message string
	Color   component.RGB
}

// EffectExpiredPayload identifies the reverted effect
type EffectExpiredPayload struct {
	Type component.PowerupType
}
