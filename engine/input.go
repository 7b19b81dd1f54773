package engine

// Intent is a held player action, independent of the device that produced it
type Intent uint8

const (
	IntentUp Intent = iota
	IntentDown
	IntentLeft
	IntentRight
	IntentTurnLeft
	IntentTurnRight
	IntentFire

	IntentCount
)

var intentNames = [IntentCount]string{
	IntentUp:        "up",
	IntentDown:      "down",
	IntentLeft:      "left",
	IntentRight:     "right",
	IntentTurnLeft:  "turn_left",
	IntentTurnRight: "turn_right",
	IntentFire:      "fire",
}

func (i Intent) String() string {
	if i < IntentCount {
		return intentNames[i]
	}
	return "unknown"
}

// MovementMode selects how directional intents map to motion
type MovementMode uint8

const (
	// MovementWorld moves along arena axes (top-down view)
	MovementWorld MovementMode = iota
	// MovementFacing moves relative to the facing angle (first-person view)
	MovementFacing
)

// InputState is the per-session intent snapshot consumed by the player system
// Written by the input adapter and read by systems under the game lock
type InputState struct {
	held [IntentCount]bool
	turn float64 // Accumulated pointer rotation, radians
}

// Set marks intent i held or released
func (s *InputState) Set(i Intent, held bool) {
	if i < IntentCount {
		s.held[i] = held
	}
}

// Held reports whether intent i is active
func (s *InputState) Held(i Intent) bool {
	return i < IntentCount && s.held[i]
}

// AddTurn accumulates pointer rotation for the next frame
func (s *InputState) AddTurn(radians float64) {
	s.turn += radians
}

// TakeTurn returns and clears accumulated pointer rotation
func (s *InputState) TakeTurn() float64 {
	t := s.turn
	s.turn = 0
	return t
}

// Clear releases every intent
func (s *InputState) Clear() {
	s.held = [IntentCount]bool{}
	s.turn = 0
}
