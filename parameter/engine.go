package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS)
	// Movement speeds are expressed in units per frame at this rate
	FrameUpdateInterval = 16 * time.Millisecond

	// PausedPollInterval is the scheduler sleep while the clock is paused
	PausedPollInterval = 2 * FrameUpdateInterval

	// MaxFrameCatchUp bounds how many missed frames are simulated after a stall
	MaxFrameCatchUp = 4
)

// Event Queue Limits
const (
	// EventQueueSize bounds the events buffered between two dispatches
	EventQueueSize = 256
)
