package input

import "github.com/SrWilson89/doom/engine"

// ActionType is the semantic result of one terminal event
type ActionType uint8

const (
	ActionNone ActionType = iota

	// Held intents
	ActionPress
	ActionRelease

	// Pointer rotation, Delta in pointer units
	ActionTurn

	// Session commands
	ActionPause
	ActionRestart
	ActionQuit

	// Presentation
	ActionToggleView
	ActionResize
)

var actionTypeNames = [...]string{
	ActionNone:       "none",
	ActionPress:      "press",
	ActionRelease:    "release",
	ActionTurn:       "turn",
	ActionPause:      "pause",
	ActionRestart:    "restart",
	ActionQuit:       "quit",
	ActionToggleView: "toggle_view",
	ActionResize:     "resize",
}

func (t ActionType) String() string {
	if int(t) < len(actionTypeNames) {
		return actionTypeNames[t]
	}
	return "unknown"
}

// Action carries a translated input to the session
type Action struct {
	Type   ActionType
	Intent engine.Intent // ActionPress, ActionRelease
	Delta  float64       // ActionTurn
}
