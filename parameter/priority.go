package parameter

// System Execution Priorities (lower runs first)
// Order mirrors the per-frame simulation step
const (
	PriorityBuff    = 10 // Expire timed effects before anything reads player stats
	PriorityPlayer  = 20
	PriorityEnemy   = 30
	PriorityBullet  = 40
	PriorityPowerup = 50
	PrioritySpawn   = 60
	PriorityCombat  = 70
	PriorityOutcome = 100 // After all game logic
)
