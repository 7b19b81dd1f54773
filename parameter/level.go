package parameter

// Arena Bounds
const (
	ArenaWidth  = 800.0
	ArenaHeight = 600.0
)
