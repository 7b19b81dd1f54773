package engine

import (
	"time"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/parameter"
)

// Phase is the session state machine: running until one terminal outcome
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseVictory
	PhaseDefeat
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// GameState holds session counters owned by the simulation goroutine
type GameState struct {
	Phase   Phase
	EndedAt time.Duration

	Score int
	Kills int

	// Wave state
	Wave          int
	SpawnInterval time.Duration
	LastSpawn     time.Duration

	// Telemetry
	Spawned    int
	ShotsFired int
	Pickups    int
}

// NewGameState returns wave 1 at the initial spawn cadence
func NewGameState() GameState {
	return GameState{
		Phase:         PhaseRunning,
		Wave:          1,
		SpawnInterval: parameter.SpawnInitialInterval,
		LastSpawn:     component.Never,
	}
}

// Ended reports a terminal phase
func (s *GameState) Ended() bool {
	return s.Phase != PhaseRunning
}

// End transitions to a terminal phase once; later calls are ignored
func (s *GameState) End(victory bool, at time.Duration) bool {
	if s.Ended() {
		return false
	}
	if victory {
		s.Phase = PhaseVictory
	} else {
		s.Phase = PhaseDefeat
	}
	s.EndedAt = at
	return true
}
