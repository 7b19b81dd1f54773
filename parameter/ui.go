package parameter

import (
	"time"
)

// Notifications
const (
	// NotifyDuration is how long a pickup message stays on screen
	NotifyDuration = 1800 * time.Millisecond

	// DamageFlashDuration is the red border flash after player damage
	DamageFlashDuration = 150 * time.Millisecond
)

// Input
const (
	// KeyReleaseTimeout synthesizes key-up for terminals that report presses only
	KeyReleaseTimeout = 120 * time.Millisecond

	// MouseCellUnits is the pointer delta reported per terminal column crossed
	MouseCellUnits = 8.0
)

// Ray-cast View
const (
	RaycastFOV      = 1.05 // ~60 degrees
	RaycastMaxDepth = 900.0
	RaycastWallSize = 18000.0 // Projected wall height numerator
)

// HUD Layout
const (
	// HUDRows is the number of status rows above the arena viewport
	HUDRows = 2

	// MinViewportWidth and MinViewportHeight below which the arena is not drawn
	MinViewportWidth  = 20
	MinViewportHeight = 8
)
