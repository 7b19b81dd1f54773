package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/game"
	"github.com/SrWilson89/doom/input"
	"github.com/SrWilson89/doom/render"
	"github.com/SrWilson89/doom/status"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(100, 32)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := range w {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func keyEvent(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestViewsToggle(t *testing.T) {
	o := render.NewRenderOrchestrator(newScreen(t))
	v := NewViews(o, ViewTopDown)

	if v.topDown[0].IsVisible() == v.raycast[0].IsVisible() {
		t.Fatal("exactly one presentation should be visible")
	}
	if got := v.Toggle(); got != ViewRaycast {
		t.Errorf("Toggle() = %d, want raycast", got)
	}
	for _, l := range v.topDown {
		if l.IsVisible() {
			t.Error("top-down layer visible in raycast view")
		}
	}
	if got := v.Toggle(); got != ViewTopDown {
		t.Errorf("second Toggle() = %d, want top-down", got)
	}
}

func TestFrameLoopAppliesInputAndQuits(t *testing.T) {
	screen := newScreen(t)
	o := render.NewRenderOrchestrator(screen)
	views := NewViews(o, ViewTopDown)
	g := game.New(game.Config{Seed: 3}, nil, nil, nil)

	events := make(chan tcell.Event, 4)
	events <- keyEvent('w')
	events <- keyEvent('v')
	events <- keyEvent('q')

	err := frameLoop(context.Background(), time.Millisecond, g, input.NewMachine(nil, 0), views, o, events, new(status.AtomicFloat))
	if !errors.Is(err, errQuit) {
		t.Fatalf("frameLoop() = %v, want errQuit", err)
	}

	var up bool
	g.View(func(w *engine.World) { up = w.Input.Held(engine.IntentUp) })
	if !up {
		t.Error("w press did not reach the session")
	}
	if !views.raycast[0].IsVisible() {
		t.Error("v did not switch to the ray-cast view")
	}
}

func TestFrameLoopStopsOnCancel(t *testing.T) {
	o := render.NewRenderOrchestrator(newScreen(t))
	views := NewViews(o, ViewTopDown)
	g := game.New(game.Config{Seed: 3}, nil, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	var fps status.AtomicFloat
	if err := frameLoop(ctx, 5*time.Millisecond, g, input.NewMachine(nil, 0), views, o, nil, &fps); err != nil {
		t.Errorf("frameLoop() = %v, want nil", err)
	}
	if fps.Get() <= 0 {
		t.Errorf("fps = %v, want a measured rate", fps.Get())
	}
}

func TestDrawFrameShowsHUD(t *testing.T) {
	screen := newScreen(t)
	o := render.NewRenderOrchestrator(screen)
	NewViews(o, ViewTopDown)
	o.Register(render.NewHUDRenderer(), render.PriorityUI)
	g := game.New(game.Config{Seed: 3}, nil, nil, nil)

	drawFrame(g, o)

	if row := rowText(screen, 0); !strings.Contains(row, "HEALTH 100") || !strings.Contains(row, "TIME 5:00") {
		t.Errorf("HUD row = %q", row)
	}
}
