package event

// EventType represents the type of game event
type EventType int

const (
	// === Session Event ===

	// EventSessionStarted signals a fresh world is running
	// Trigger: game.New, game.Restart
	// Consumer: AudioAdapter (background loop) | Payload: *SessionStartedPayload
	EventSessionStarted EventType = iota

	// EventGameOver signals the terminal transition
	// Trigger: OutcomeSystem | Payload: *GameOverPayload
	EventGameOver

	// EventWaveAdvanced signals the wave number increased
	// Trigger: SpawnSystem | Payload: *WaveAdvancedPayload
	EventWaveAdvanced

	// === Combat Event ===

	// EventShotFired signals one trigger pull (one or three bullets)
	// Trigger: PlayerSystem | Consumer: audio shoot cue | Payload: *ShotFiredPayload
	EventShotFired

	// EventPlayerDamaged signals enemy contact damage landed
	// Trigger: EnemySystem | Consumer: notifier damage flash, audio hit cue | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventEnemyKilled signals an enemy removal at health <= 0
	// Trigger: EnemySystem | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventEnemySpawned signals a new enemy entered the arena
	// Trigger: SpawnSystem | Payload: *EnemySpawnedPayload
	EventEnemySpawned

	// === Powerup Event ===

	// EventPowerupDropped signals a drop at an enemy death position
	// Trigger: EnemySystem | Payload: *PowerupDroppedPayload
	EventPowerupDropped

	// EventPowerupCollected signals a pickup and its display message
	// Trigger: CombatSystem via BuffSystem | Consumer: notifier, audio powerup cue | Payload: *PowerupCollectedPayload
	EventPowerupCollected

	// EventEffectExpired signals a timed effect reverted
	// Trigger: BuffSystem expiry | Payload: *EffectExpiredPayload
	EventEffectExpired

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventSessionStarted:   "SessionStarted",
	EventGameOver:         "GameOver",
	EventWaveAdvanced:     "WaveAdvanced",
	EventShotFired:        "ShotFired",
	EventPlayerDamaged:    "PlayerDamaged",
	EventEnemyKilled:      "EnemyKilled",
	EventEnemySpawned:     "EnemySpawned",
	EventPowerupDropped:   "PowerupDropped",
	EventPowerupCollected: "PowerupCollected",
	EventEffectExpired:    "EffectExpired",
}

// String returns the registered event name
func (et EventType) String() string {
	if et >= 0 && et < eventTypeCount {
		return eventNames[et]
	}
	return "Unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
