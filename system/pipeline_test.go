package system

import (
	"testing"

	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/status"
)

func TestRegisterSystemsZeroesSessionCounters(t *testing.T) {
	reg := status.NewRegistry()
	for _, name := range sessionCounters {
		reg.Ints.Get(name).Store(9)
	}
	reg.Ints.Get("game.sessions").Store(4)

	w := engine.NewWorld(engine.WorldConfig{Level: openLevel(), Seed: 42, Status: reg})
	RegisterSystems(w)

	for _, name := range sessionCounters {
		if got := reg.Ints.Get(name).Load(); got != 0 {
			t.Errorf("%s = %d, want 0", name, got)
		}
	}
	if got := reg.Ints.Get("game.sessions").Load(); got != 4 {
		t.Errorf("game.sessions = %d, want 4", got)
	}
}
