package core

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions. Bindings keep their
// registration order for footer display; lookups go through a per-key
// index so routing does not scan the whole table on every press.
type KeyRegistry struct {
	bindings []KeyBinding
	byKey    map[string][]int
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{byKey: make(map[string][]int)}
	for _, b := range bindings {
		r.Register(b)
	}
	return r
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	idx := len(r.bindings)
	r.bindings = append(r.bindings, binding)
	for _, k := range binding.Keys {
		nk := normalizeKey(k)
		r.byKey[nk] = append(r.byKey[nk], idx)
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, idx := range r.byKey[normalizeKey(msg.String())] {
		b := r.bindings[idx]
		if b.Action == action && scopeMatch(scope, b.Scopes) {
			return true
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
