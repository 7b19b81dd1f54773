package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/parameter"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func mouse(x int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, 5, btn, tcell.ModNone)
}

func press(i engine.Intent) Action   { return Action{Type: ActionPress, Intent: i} }
func release(i engine.Intent) Action { return Action{Type: ActionRelease, Intent: i} }

func equalActions(a, b []Action) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDefaultBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want []Action
	}{
		{"w moves up", runeKey('w'), []Action{press(engine.IntentUp)}},
		{"shifted rune matches", runeKey('D'), []Action{press(engine.IntentRight)}},
		{"space fires", runeKey(' '), []Action{press(engine.IntentFire)}},
		{"arrow up", specialKey(tcell.KeyUp), []Action{press(engine.IntentUp)}},
		{"arrow left turns", specialKey(tcell.KeyLeft), []Action{press(engine.IntentTurnLeft)}},
		{"pause", runeKey('p'), []Action{{Type: ActionPause}}},
		{"restart", runeKey('r'), []Action{{Type: ActionRestart}}},
		{"quit", runeKey('q'), []Action{{Type: ActionQuit}}},
		{"escape quits", specialKey(tcell.KeyEscape), []Action{{Type: ActionQuit}}},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), []Action{{Type: ActionQuit}}},
		{"tab toggles view", specialKey(tcell.KeyTab), []Action{{Type: ActionToggleView}}},
		{"unbound rune", runeKey('z'), nil},
		{"resize", tcell.NewEventResize(80, 24), []Action{{Type: ActionResize}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(nil, parameter.KeyReleaseTimeout)
			got := m.Process(tt.ev, t0)
			if !equalActions(got, tt.want) {
				t.Errorf("Process() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRepeatKeepsHoldWithoutDuplicatePress(t *testing.T) {
	m := NewMachine(nil, parameter.KeyReleaseTimeout)

	if got := m.Process(runeKey('w'), t0); len(got) != 1 {
		t.Fatalf("first press = %v, want one press", got)
	}
	// Auto-repeat every 30ms refreshes the hold
	for i := 1; i <= 10; i++ {
		now := t0.Add(time.Duration(i) * 30 * time.Millisecond)
		if got := m.Process(runeKey('w'), now); got != nil {
			t.Fatalf("repeat %d = %v, want nil", i, got)
		}
		if got := m.Expire(now); got != nil {
			t.Fatalf("expire during repeat %d = %v, want nil", i, got)
		}
	}
	if !m.Held(engine.IntentUp) {
		t.Fatal("up should still be held")
	}
}

func TestSynthesizedRelease(t *testing.T) {
	m := NewMachine(nil, parameter.KeyReleaseTimeout)
	m.Process(runeKey('a'), t0)

	if got := m.Expire(t0.Add(parameter.KeyReleaseTimeout - time.Millisecond)); got != nil {
		t.Errorf("Expire before timeout = %v, want nil", got)
	}
	got := m.Expire(t0.Add(parameter.KeyReleaseTimeout))
	if want := []Action{release(engine.IntentLeft)}; !equalActions(got, want) {
		t.Errorf("Expire at timeout = %v, want %v", got, want)
	}
	if got := m.Expire(t0.Add(time.Second)); got != nil {
		t.Errorf("second Expire = %v, want nil", got)
	}
}

func TestZeroTimeoutNeverExpires(t *testing.T) {
	m := NewMachine(nil, 0)
	m.Process(runeKey('s'), t0)
	if got := m.Expire(t0.Add(time.Hour)); got != nil {
		t.Errorf("Expire = %v, want nil", got)
	}
	if !m.Held(engine.IntentDown) {
		t.Error("down should stay held")
	}
}

func TestMouseTurnAndFire(t *testing.T) {
	m := NewMachine(nil, parameter.KeyReleaseTimeout)

	// First position only anchors the delta
	if got := m.Process(mouse(10, tcell.ButtonNone), t0); got != nil {
		t.Fatalf("first motion = %v, want nil", got)
	}

	got := m.Process(mouse(13, tcell.ButtonNone), t0)
	want := []Action{{Type: ActionTurn, Delta: 3 * parameter.MouseCellUnits}}
	if !equalActions(got, want) {
		t.Errorf("motion right = %v, want %v", got, want)
	}

	got = m.Process(mouse(11, tcell.Button1), t0)
	want = []Action{{Type: ActionTurn, Delta: -2 * parameter.MouseCellUnits}, press(engine.IntentFire)}
	if !equalActions(got, want) {
		t.Errorf("drag with button = %v, want %v", got, want)
	}

	// Mouse holds do not time out
	if got := m.Expire(t0.Add(time.Hour)); got != nil {
		t.Errorf("Expire with mouse held = %v, want nil", got)
	}

	got = m.Process(mouse(11, tcell.ButtonNone), t0)
	if want := []Action{release(engine.IntentFire)}; !equalActions(got, want) {
		t.Errorf("button up = %v, want %v", got, want)
	}
}

func TestFireCombinesKeyAndMouse(t *testing.T) {
	m := NewMachine(nil, parameter.KeyReleaseTimeout)

	m.Process(mouse(0, tcell.Button1), t0)
	if got := m.Process(runeKey(' '), t0); got != nil {
		t.Errorf("space while mouse held = %v, want nil", got)
	}
	if got := m.Expire(t0.Add(time.Second)); got != nil {
		t.Errorf("key expiry while mouse held = %v, want nil", got)
	}
	got := m.Process(mouse(0, tcell.ButtonNone), t0)
	if want := []Action{release(engine.IntentFire)}; !equalActions(got, want) {
		t.Errorf("mouse up = %v, want %v", got, want)
	}
}

func TestPauseReleasesHolds(t *testing.T) {
	m := NewMachine(nil, parameter.KeyReleaseTimeout)
	m.Process(runeKey('w'), t0)
	m.Process(runeKey(' '), t0)

	got := m.Process(runeKey('p'), t0)
	want := []Action{release(engine.IntentUp), release(engine.IntentFire), {Type: ActionPause}}
	if !equalActions(got, want) {
		t.Errorf("pause = %v, want %v", got, want)
	}
	for i := range engine.IntentCount {
		if m.Held(i) {
			t.Errorf("%s still held after pause", i)
		}
	}
}

func TestCustomTableOverridesDefaults(t *testing.T) {
	override := &KeyTable{Runes: map[rune]KeyEntry{
		'k': hold(engine.IntentFire),
		' ': {},
	}}
	m := NewMachine(MergeKeyTable(DefaultKeyTable(), override), parameter.KeyReleaseTimeout)

	if got := m.Process(runeKey(' '), t0); got != nil {
		t.Errorf("unbound space = %v, want nil", got)
	}
	if got, want := m.Process(runeKey('k'), t0), []Action{press(engine.IntentFire)}; !equalActions(got, want) {
		t.Errorf("k = %v, want %v", got, want)
	}
}
