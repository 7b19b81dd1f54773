package input

import "github.com/SrWilson89/doom/engine"

// Target is the session surface actions are applied to
type Target interface {
	SetIntent(i engine.Intent, held bool)
	Turn(dx float64)
	TogglePause() bool
	Paused() bool
	Restart()
	Ended() bool
}

// Outcome reports the actions a caller handles outside the session
type Outcome struct {
	Quit       bool
	Resize     bool
	ToggleView bool
}

// Apply forwards actions to t in order
// Presses and turns are dropped while paused; restart only applies once the session ended
func Apply(t Target, actions []Action) Outcome {
	var out Outcome
	for _, a := range actions {
		switch a.Type {
		case ActionPress:
			if !t.Paused() {
				t.SetIntent(a.Intent, true)
			}
		case ActionRelease:
			t.SetIntent(a.Intent, false)
		case ActionTurn:
			if !t.Paused() {
				t.Turn(a.Delta)
			}
		case ActionPause:
			if !t.Ended() {
				t.TogglePause()
			}
		case ActionRestart:
			if t.Ended() {
				t.Restart()
			}
		case ActionQuit:
			out.Quit = true
		case ActionResize:
			out.Resize = true
		case ActionToggleView:
			out.ToggleView = !out.ToggleView
		}
	}
	return out
}
