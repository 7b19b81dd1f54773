// Package app wires the session, terminal, audio and score file into a running process
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/SrWilson89/doom/audio"
	"github.com/SrWilson89/doom/config"
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/game"
	"github.com/SrWilson89/doom/input"
	"github.com/SrWilson89/doom/level"
	"github.com/SrWilson89/doom/render"
	"github.com/SrWilson89/doom/score"
	"github.com/SrWilson89/doom/status"
)

// View selects the initial arena presentation
type View uint8

const (
	ViewTopDown View = iota
	ViewRaycast
)

// errQuit ends the process group on a player quit
var errQuit = errors.New("quit")

// minimap inset size for the ray-cast view
const (
	minimapWidth  = 32
	minimapHeight = 12
)

// Views holds the arena layers toggled between top-down and ray-cast
type Views struct {
	topDown []*render.Layer
	raycast []*render.Layer
}

// NewViews registers both arena presentations on o; initial picks the visible one
func NewViews(o *render.RenderOrchestrator, initial View) *Views {
	td := initial == ViewTopDown
	v := &Views{
		topDown: []*render.Layer{
			render.NewLayer(render.NewArenaRenderer(), td),
			render.NewLayer(render.NewEntityRenderer(), td),
			render.NewLayer(render.NewPlayerRenderer(), td),
		},
		raycast: []*render.Layer{
			render.NewLayer(render.NewRaycastRenderer(), !td),
			render.NewLayer(render.NewMinimap(minimapWidth, minimapHeight), !td),
		},
	}
	o.Register(v.topDown[0], render.PriorityBackground)
	o.Register(v.topDown[1], render.PriorityEntities)
	o.Register(v.topDown[2], render.PriorityPlayer)
	o.Register(v.raycast[0], render.PriorityBackground)
	o.Register(v.raycast[1], render.PriorityWall)
	return v
}

// Toggle flips between the two presentations
func (v *Views) Toggle() View {
	raycast := !v.raycast[0].IsVisible()
	for _, l := range v.topDown {
		l.SetVisible(!raycast)
	}
	for _, l := range v.raycast {
		l.SetVisible(raycast)
	}
	if raycast {
		return ViewRaycast
	}
	return ViewTopDown
}

// Run plays sessions until the player quits or the process is signalled
func Run(cfg config.Config, view View) error {
	lvl := level.Default()
	if cfg.LevelFile != "" {
		l, err := level.Load(cfg.LevelFile)
		if err != nil {
			return err
		}
		lvl = l
	}

	keys, err := input.LoadKeyTable(cfg.KeymapFile)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	guard := crashGuard{screen: screen}
	defer func() {
		guard.handle(recover())
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sounds := audio.NewSoundManager(cfg.AudioConfig())
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	reg := status.NewRegistry()
	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	overlay := render.NewOverlay()

	g := game.New(game.Config{
		Level:            lvl,
		MatchDuration:    cfg.MatchDuration,
		Movement:         cfg.MovementMode(),
		Seed:             cfg.Seed,
		MouseSensitivity: cfg.MouseSensitivity,
		Clock:            clock,
		Status:           reg,
	}, overlay, sounds, score.NewFileStore(cfg.ScoreFile))

	orchestrator := render.NewRenderOrchestrator(screen)
	views := NewViews(orchestrator, view)
	orchestrator.Register(render.NewHUDRenderer(), render.PriorityUI)
	orchestrator.Register(overlay, render.PriorityOverlay)
	orchestrator.Register(render.NewEndScreen(), render.PriorityOverlay)
	if cfg.Debug {
		orchestrator.Register(render.NewDebugRenderer(reg), render.PriorityDebug)
	}

	scheduler := engine.NewClockScheduler(clock, cfg.FrameInterval, g.Tick, reg)
	machine := input.NewMachine(keys, cfg.KeyReleaseTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 256)

	// Input poller; PollEvent returns nil once the screen is finalized
	guard.Go(eg, func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	guard.Go(eg, func() error {
		return scheduler.Run(ctx)
	})

	guard.Go(eg, func() error {
		defer screen.Fini()
		return frameLoop(ctx, cfg.FrameInterval, g, machine, views, orchestrator, events, reg.Floats.Get("render.fps"))
	})

	log.Printf("arena started: level=%s view=%d", lvl.Name, view)
	if err := eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	log.Printf("arena stopped after %d ticks", scheduler.TickCount())
	return nil
}

// frameLoop applies input and renders one frame per interval
// fps receives the smoothed achieved frame rate
func frameLoop(ctx context.Context, interval time.Duration, g *game.Game, m *input.Machine,
	views *Views, o *render.RenderOrchestrator, events <-chan tcell.Event, fps *status.AtomicFloat) error {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	var last time.Time

	apply := func(actions []input.Action) error {
		if len(actions) == 0 {
			return nil
		}
		out := input.Apply(g, actions)
		if out.ToggleView {
			log.Printf("view: %d", views.Toggle())
		}
		if out.Quit {
			return errQuit
		}
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if rs, ok := ev.(*tcell.EventResize); ok {
				w, h := rs.Size()
				o.Resize(w, h)
			}
			if err := apply(m.Process(ev, time.Now())); err != nil {
				return err
			}

		case now := <-ticker.C:
			if err := apply(m.Expire(now)); err != nil {
				return err
			}
			if !last.IsZero() {
				fps.Smooth(1/now.Sub(last).Seconds(), 0.1)
			}
			last = now
			drawFrame(g, o)
		}
	}
}

// drawFrame renders the world under the game lock
func drawFrame(g *game.Game, o *render.RenderOrchestrator) {
	// Game accessors take the lock; read them before View
	paused := g.Paused()
	best := g.BestScore()
	result := g.Result()

	w, h := o.Size()
	g.View(func(world *engine.World) {
		rc := render.NewRenderContext(world, w, h)
		rc.Paused = paused
		rc.Best = best
		rc.Result = result
		o.RenderFrame(rc)
	})
}
