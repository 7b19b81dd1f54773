package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/SrWilson89/doom/engine"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone    KeyBehavior = iota
	BehaviorHold                // Sets an intent until release or timeout
	BehaviorCommand             // One-shot session command
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior KeyBehavior
	Intent   engine.Intent
	Command  ActionType
}

func hold(i engine.Intent) KeyEntry {
	return KeyEntry{Behavior: BehaviorHold, Intent: i}
}

func command(t ActionType) KeyEntry {
	return KeyEntry{Behavior: BehaviorCommand, Command: t}
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable runes, matched lower-cased
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     hold(engine.IntentUp),
			tcell.KeyDown:   hold(engine.IntentDown),
			tcell.KeyLeft:   hold(engine.IntentTurnLeft),
			tcell.KeyRight:  hold(engine.IntentTurnRight),
			tcell.KeyEscape: command(ActionQuit),
			tcell.KeyCtrlC:  command(ActionQuit),
			tcell.KeyTab:    command(ActionToggleView),
		},
		Runes: map[rune]KeyEntry{
			'w': hold(engine.IntentUp),
			's': hold(engine.IntentDown),
			'a': hold(engine.IntentLeft),
			'd': hold(engine.IntentRight),
			'j': hold(engine.IntentTurnLeft),
			'l': hold(engine.IntentTurnRight),
			' ': hold(engine.IntentFire),
			'p': command(ActionPause),
			'r': command(ActionRestart),
			'q': command(ActionQuit),
			'v': command(ActionToggleView),
		},
	}
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event to its entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[lower(ev.Rune())]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries with BehaviorNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if result.SpecialKeys == nil {
		result.SpecialKeys = make(map[tcell.Key]KeyEntry)
	}
	if result.Runes == nil {
		result.Runes = make(map[rune]KeyEntry)
	}
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.Behavior == BehaviorNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
