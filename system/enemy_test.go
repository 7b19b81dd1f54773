package system

import (
	"math"
	"testing"
	"time"

	"github.com/SrWilson89/doom/event"
	"github.com/SrWilson89/doom/parameter"
	"github.com/SrWilson89/doom/vmath"
)

func TestEnemyChasesPlayer(t *testing.T) {
	w := newTestWorld(t, NewEnemySystem)
	start := vmath.V2Add(w.Player.Pos, vmath.V2(-100, 0))
	i := addEnemy(w, start)

	w.Update(frame)

	got := w.Enemies.At(i).Pos
	if math.Abs(got.X-(start.X+1.2)) > 1e-9 || got.Y != start.Y {
		t.Errorf("enemy at %v, want one step of 1.2 toward player", got)
	}
}

func TestEnemyMeleeCooldown(t *testing.T) {
	w := newTestWorld(t, NewEnemySystem)
	addEnemy(w, vmath.V2Add(w.Player.Pos, vmath.V2(30, 0)))

	w.Update(frame)
	if w.Player.Health != 85 {
		t.Fatalf("health = %d, want 85", w.Player.Health)
	}

	// Strictly more than 800ms must pass before the next hit
	runFor(w, 800*time.Millisecond)
	if w.Player.Health != 85 {
		t.Errorf("hit before cooldown, health = %d", w.Player.Health)
	}
	w.Update(frame)
	if w.Player.Health != 70 {
		t.Errorf("health = %d, want 70", w.Player.Health)
	}

	evs := drain(w, event.EventPlayerDamaged)
	if len(evs) != 2 {
		t.Fatalf("damage events = %d, want 2", len(evs))
	}
	if p := evs[1].Payload.(*event.PlayerDamagedPayload); p.Amount != 15 || p.Health != 70 {
		t.Errorf("payload = %+v", p)
	}
}

func TestEnemyAtPlayerPositionDoesNotProduceNaN(t *testing.T) {
	w := newTestWorld(t, NewEnemySystem)
	i := addEnemy(w, w.Player.Pos)

	w.Update(frame)

	pos := w.Enemies.At(i).Pos
	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
		t.Fatalf("enemy position NaN: %v", pos)
	}
	if w.Player.Health != 85 {
		t.Errorf("health = %d, want 85", w.Player.Health)
	}
}

func TestEnemyNoDamageWhileInvulnerable(t *testing.T) {
	w := newTestWorld(t, NewEnemySystem)
	w.Player.Invulnerable = true
	addEnemy(w, w.Player.Pos)

	runFor(w, 2*time.Second)
	if w.Player.Health != 100 {
		t.Errorf("health = %d, want 100", w.Player.Health)
	}
}

func TestEnemyDamageClampsAtZero(t *testing.T) {
	w := newTestWorld(t, NewEnemySystem)
	w.Player.Health = 10
	addEnemy(w, w.Player.Pos)

	w.Update(frame)
	if w.Player.Health != 0 {
		t.Errorf("health = %d, want 0", w.Player.Health)
	}
}

func TestDeadEnemyRemovedAndScored(t *testing.T) {
	w := newTestWorld(t, NewEnemySystem)
	far := vmath.V2(500, 500)
	i := addEnemy(w, far)
	addEnemy(w, vmath.V2(600, 600))
	w.Enemies.At(i).Health = 0

	w.Update(frame)

	if w.Enemies.Live() != 1 || w.Enemies.Len() != 1 {
		t.Fatalf("enemies live=%d len=%d, want 1/1 after compaction", w.Enemies.Live(), w.Enemies.Len())
	}
	if w.State.Score != parameter.EnemyKillScore || w.State.Kills != 1 {
		t.Errorf("score=%d kills=%d", w.State.Score, w.State.Kills)
	}

	killed := drain(w, event.EventEnemyKilled)
	if len(killed) != 1 {
		t.Fatalf("kill events = %d, want 1", len(killed))
	}
	p := killed[0].Payload.(*event.EnemyKilledPayload)
	if p.Pos != far {
		t.Errorf("kill pos = %v, want %v", p.Pos, far)
	}
	wantDrops := 0
	if p.Dropped {
		wantDrops = 1
		if pu := w.Powerups.At(0); pu.Pos != far || pu.Lifetime != parameter.PowerupLifetime {
			t.Errorf("drop = %+v", pu)
		}
	}
	if w.Powerups.Live() != wantDrops {
		t.Errorf("powerups = %d, want %d", w.Powerups.Live(), wantDrops)
	}
}

// Over many kills the drop rate approaches the configured chance
func TestDropRate(t *testing.T) {
	w := newTestWorld(t, NewEnemySystem)
	const n = 2000
	for range n {
		i := addEnemy(w, vmath.V2(10, 10))
		w.Enemies.At(i).Health = -1
	}
	w.Update(frame)

	rate := float64(w.Powerups.Live()) / n
	if math.Abs(rate-parameter.EnemyDropChance) > 0.05 {
		t.Errorf("drop rate = %.3f, want ~%.1f", rate, parameter.EnemyDropChance)
	}
	if w.State.Kills != n {
		t.Errorf("kills = %d, want %d", w.State.Kills, n)
	}
}
