package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/SrWilson89/doom/engine"
	"github.com/SrWilson89/doom/parameter"
)

// Machine translates tcell events into session actions
// Terminals report key presses only, so a held key stays held while
// auto-repeat keeps refreshing it and is released after the timeout
type Machine struct {
	keyTable *KeyTable
	timeout  time.Duration

	// Key-driven holds and the time of their latest press or repeat
	held    [engine.IntentCount]bool
	pressed [engine.IntentCount]time.Time

	mouseFire bool
	mouseX    int
	haveMouse bool
}

// NewMachine creates a machine over table; nil uses the defaults
// A non-positive timeout disables synthesized release
func NewMachine(table *KeyTable, timeout time.Duration) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{
		keyTable: table,
		timeout:  timeout,
	}
}

// Process parses a terminal event at wall time now
// Returns nil when the event maps to nothing
func (m *Machine) Process(ev tcell.Event, now time.Time) []Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev, now)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return []Action{{Type: ActionResize}}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey, now time.Time) []Action {
	entry, ok := m.keyTable.Lookup(ev)
	if !ok {
		return nil
	}

	switch entry.Behavior {
	case BehaviorHold:
		i := entry.Intent
		m.pressed[i] = now
		return m.change(i, func() { m.held[i] = true }, nil)

	case BehaviorCommand:
		var out []Action
		// Pause and restart clear the session's intents; drop ours to match
		if entry.Command == ActionPause || entry.Command == ActionRestart {
			out = m.Reset()
		}
		return append(out, Action{Type: entry.Command})
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) []Action {
	var out []Action

	x, _ := ev.Position()
	if m.haveMouse && x != m.mouseX {
		out = append(out, Action{
			Type:  ActionTurn,
			Delta: float64(x-m.mouseX) * parameter.MouseCellUnits,
		})
	}
	m.mouseX, m.haveMouse = x, true

	down := ev.Buttons()&tcell.Button1 != 0
	return m.change(engine.IntentFire, func() { m.mouseFire = down }, out)
}

// Expire releases key holds whose last press is older than the timeout
func (m *Machine) Expire(now time.Time) []Action {
	if m.timeout <= 0 {
		return nil
	}
	var out []Action
	for i := range engine.IntentCount {
		if m.held[i] && now.Sub(m.pressed[i]) >= m.timeout {
			out = m.change(i, func() { m.held[i] = false }, out)
		}
	}
	return out
}

// Reset releases every active intent
func (m *Machine) Reset() []Action {
	var out []Action
	for i := range engine.IntentCount {
		out = m.change(i, func() {
			m.held[i] = false
			if i == engine.IntentFire {
				m.mouseFire = false
			}
		}, out)
	}
	return out
}

// Held reports whether intent i is active from any device
func (m *Machine) Held(i engine.Intent) bool {
	if i >= engine.IntentCount {
		return false
	}
	return m.held[i] || (i == engine.IntentFire && m.mouseFire)
}

// change applies fn and appends a press or release if the combined state flipped
func (m *Machine) change(i engine.Intent, fn func(), out []Action) []Action {
	before := m.Held(i)
	fn()
	after := m.Held(i)
	switch {
	case !before && after:
		out = append(out, Action{Type: ActionPress, Intent: i})
	case before && !after:
		out = append(out, Action{Type: ActionRelease, Intent: i})
	}
	return out
}
