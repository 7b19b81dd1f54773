package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/SrWilson89/doom/component"
	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/event"
	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/vmath"
)

// EnemyStatsForWave returns the attributes of an enemy spawned during wave
// Waves below 1 are treated as wave 1
func EnemyStatsForWave(wave int) component.EnemyStats {
	n := float64(max(1, wave) - 1)
	m := 1 + n*parameter.EnemyWaveMultiplierStep

	return component.EnemyStats{
		Health:         math.Floor(parameter.EnemyBaseHealth * m),
		Damage:         int(math.Floor(parameter.EnemyBaseDamage * m)),
		Speed:          math.Min(parameter.EnemySpeedCap, parameter.EnemyBaseSpeed+n*parameter.EnemySpeedPerWave),
		AttackCooldown: max(parameter.EnemyCooldownFloor, parameter.EnemyBaseAttackCooldown-time.Duration(n)*parameter.EnemyCooldownPerWave),
		Radius:         parameter.EnemyRadius,
	}
}

// WaveForElapsed maps session time to the wave number, starting at 1
func WaveForElapsed(elapsed time.Duration) int {
	if elapsed < 0 {
		return 1
	}
	return int(elapsed/parameter.WaveDuration) + 1
}

// SpawnIntervalForWave returns the random spawn cadence for wave
// Each wave gained takes one step off the initial interval, down to the floor
func SpawnIntervalForWave(wave int) time.Duration {
	gained := time.Duration(max(1, wave) - 1)
	return max(parameter.SpawnIntervalFloor, parameter.SpawnInitialInterval-gained*parameter.SpawnIntervalStep)
}

// SpawnInitialEnemies places one current-wave enemy at each point
func SpawnInitialEnemies(w *engine.World, points []vmath.Vec2) {
	for _, p := range points {
		spawnEnemy(w, p)
	}
}

// SpawnRandomEnemy places a current-wave enemy at a uniformly chosen spawn point
// Returns false when the world has no spawn points
func SpawnRandomEnemy(w *engine.World) (vmath.Vec2, bool) {
	if len(w.SpawnPoints) == 0 {
		return vmath.Vec2{}, false
	}
	p := w.SpawnPoints[w.Rand.IntN(len(w.SpawnPoints))]
	spawnEnemy(w, p)
	return p, true
}

func spawnEnemy(w *engine.World, p vmath.Vec2) {
	wave := w.State.Wave
	w.Enemies.Add(component.NewEnemy(p, EnemyStatsForWave(wave), wave))
	w.State.Spawned++
	w.PushEvent(event.EventEnemySpawned, &event.EnemySpawnedPayload{Pos: p, Wave: wave})
}

// SpawnSystem advances the wave counter and feeds random enemies into the arena
type SpawnSystem struct {
	statWave    *atomic.Int64
	statSpawned *atomic.Int64
}

func NewSpawnSystem(w *engine.World) engine.System {
	return &SpawnSystem{
		statWave:    w.Status.Ints.Get("spawn.wave"),
		statSpawned: w.Status.Ints.Get("spawn.total"),
	}
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update(w *engine.World) {
	now := w.Now()

	if wave := WaveForElapsed(now); wave > w.State.Wave {
		w.State.Wave = wave
		w.State.SpawnInterval = SpawnIntervalForWave(wave)
		w.PushEvent(event.EventWaveAdvanced, &event.WaveAdvancedPayload{
			Wave:          wave,
			SpawnInterval: w.State.SpawnInterval,
		})
	}

	if now-w.State.LastSpawn > w.State.SpawnInterval && w.Enemies.Live() < parameter.SpawnEnemyCap {
		if _, ok := SpawnRandomEnemy(w); ok {
			w.State.LastSpawn = now
		}
	}

	s.statWave.Store(int64(w.State.Wave))
	s.statSpawned.Store(int64(w.State.Spawned))
}
