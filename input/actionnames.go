package input

import "github.com/SrWilson89/doom/engine"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve YAML action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	reg := map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		"pause":       command(ActionPause),
		"restart":     command(ActionRestart),
		"quit":        command(ActionQuit),
		"toggle_view": command(ActionToggleView),
	}
	// Held intents share their engine names
	for i := range engine.IntentCount {
		reg[i.String()] = hold(i)
	}
	return reg
}

// ActionEntry returns the KeyEntry for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}

// ActionNames returns all registered action names, unsorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}
