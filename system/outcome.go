package system

import (
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/event"
	"github.com/SrWilson89/doom/parameter"
)

// OutcomeSystem ends the session: defeat on depleted health, else victory when time runs out
type OutcomeSystem struct{}

func NewOutcomeSystem(*engine.World) engine.System {
	return &OutcomeSystem{}
}

func (s *OutcomeSystem) Name() string {
	return "outcome"
}

func (s *OutcomeSystem) Priority() int {
	return parameter.PriorityOutcome
}

func (s *OutcomeSystem) Update(w *engine.World) {
	var victory bool
	switch {
	case !w.Player.Alive():
		victory = false
	case w.Now() >= w.MatchDuration:
		victory = true
	default:
		return
	}

	if !w.State.End(victory, w.Now()) {
		return
	}
	w.PushEvent(event.EventGameOver, &event.GameOverPayload{
		Victory: victory,
		Score:   w.State.Score,
		Kills:   w.State.Kills,
		Wave:    w.State.Wave,
		Elapsed: w.Now(),
	})
}
