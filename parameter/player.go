package parameter

import (
	"time"
)

// Player Defaults
const (
	PlayerStartX = 400.0
	PlayerStartY = 300.0

	// PlayerRadius is the collision radius against walls
	PlayerRadius = 12.0

	PlayerMaxHealth = 100

	// PlayerSpeed is movement in units per frame
	PlayerSpeed = 4.0

	// PlayerRotSpeed is turn rate in radians per frame (facing-relative movement)
	PlayerRotSpeed = 0.06

	// PlayerFireRate is the minimum interval between shots
	PlayerFireRate = 150 * time.Millisecond

	PlayerDamage = 30.0

	// PlayerMouseSensitivity converts horizontal pointer delta to radians
	PlayerMouseSensitivity = 0.003
)

// Health Display Thresholds
const (
	HealthCritical = 30
	HealthWarning  = 60
)
