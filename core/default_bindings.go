package core

import "strings"

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"workspace"}},
		{Keys: []string{"v"}, Action: "jump", Description: "jump to pane", Scopes: []string{"workspace"}},
		{Keys: []string{"alt+left"}, Action: "focus-left", Description: "focus left", Scopes: []string{"workspace"}},
		{Keys: []string{"alt+right"}, Action: "focus-right", Description: "focus right", Scopes: []string{"workspace"}},
		{Keys: []string{"alt+up"}, Action: "focus-up", Description: "focus up", Scopes: []string{"workspace"}},
		{Keys: []string{"alt+down"}, Action: "focus-down", Description: "focus down", Scopes: []string{"workspace"}},
		{Keys: []string{"ctrl+w"}, Action: "close-pane", Description: "close pane", Scopes: []string{"workspace"}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+o"}, Action: "open-pane-picker", Description: "open pane", Scopes: []string{"workspace"}},
		{Keys: []string{"1"}, Action: "switch-tab-1", Description: "workspace 1", Scopes: []string{"workspace"}},
		{Keys: []string{"2"}, Action: "switch-tab-2", Description: "workspace 2", Scopes: []string{"workspace"}},
		{Keys: []string{"3"}, Action: "switch-tab-3", Description: "workspace 3", Scopes: []string{"workspace"}},
		{Keys: []string{"4"}, Action: "switch-tab-4", Description: "workspace 4", Scopes: []string{"workspace"}},
		{Keys: []string{"esc"}, Action: "stop-editing", Description: "done", Scopes: []string{"editing"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:picker", "screen:command", "screen:jump-picker"}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{"screen:picker", "screen:command", "screen:jump-picker"}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings overlays user-configured keys onto the defaults,
// action by action.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
