package parameter

import (
	"time"
)

// Enemy Base Stats (wave 1)
const (
	EnemyBaseHealth = 60.0
	EnemyBaseDamage = 15.0
	EnemyBaseSpeed  = 1.2
	EnemyRadius     = 20.0

	EnemyBaseAttackCooldown = 800 * time.Millisecond
)

// Enemy Wave Scaling
const (
	// EnemyWaveMultiplierStep scales health and damage by (1 + step*(wave-1))
	EnemyWaveMultiplierStep = 0.25

	EnemySpeedPerWave = 0.15
	EnemySpeedCap     = 2.5

	EnemyCooldownPerWave = 40 * time.Millisecond
	EnemyCooldownFloor   = 400 * time.Millisecond
)

// Enemy Behavior
const (
	// EnemyMeleeRange is the distance at which enemies stop chasing and attack
	EnemyMeleeRange = 40.0

	// EnemyKillScore is awarded per enemy removed at health <= 0
	EnemyKillScore = 150

	// EnemyDropChance is the probability a killed enemy drops a powerup
	EnemyDropChance = 0.4
)

// Spawner
const (
	// SpawnInitialInterval is the wave 1 interval between random spawns
	SpawnInitialInterval = 4000 * time.Millisecond

	// SpawnIntervalStep is subtracted from the interval per wave gained
	SpawnIntervalStep = 500 * time.Millisecond

	SpawnIntervalFloor = 1500 * time.Millisecond

	// SpawnEnemyCap blocks random spawning at this population
	SpawnEnemyCap = 20

	// WaveDuration is the elapsed time per wave
	WaveDuration = 60 * time.Second
)
