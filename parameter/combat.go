package parameter

import (
	"time"
)

// Bullets
const (
	// BulletSpeed is travel in units per frame
	BulletSpeed = 10.0

	// BulletMaxRange removes bullets once accumulated distance exceeds it
	BulletMaxRange = 600.0

	// BulletRadius is the wall collision radius
	BulletRadius = 3.0

	// DoubleShotSpread is the angular offset of side bullets in radians
	DoubleShotSpread = 0.15
)

// Explosive Shots
const (
	// SplashRadius is the binary splash range around the impact point
	SplashRadius = 60.0

	// SplashDamageFactor is the fraction of player damage dealt by splash
	SplashDamageFactor = 0.6
)

// Match
const (
	// MatchDuration ends the session in victory once elapsed
	MatchDuration = 300 * time.Second
)
