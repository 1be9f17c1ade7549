package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+o"}, Action: "open-pane-picker", Scopes: []string{"workspace"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlO}, "open-pane-picker", "workspace") {
		t.Fatalf("expected ctrl+o in workspace scope")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlO}, "open-pane-picker", "editing") {
		t.Fatalf("did not expect ctrl+o while editing")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "editing") {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestKeyRegistryMultipleKeysPerAction(t *testing.T) {
	reg := NewKeyRegistry(nil)
	reg.Register(KeyBinding{Keys: []string{"alt+left", "H"}, Action: "focus-left", Scopes: []string{"workspace"}})
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyLeft, Alt: true},
		{Type: tea.KeyRunes, Runes: []rune{'H'}},
	} {
		if !reg.IsAction(msg, "focus-left", "workspace") {
			t.Fatalf("key %q should trigger focus-left", msg.String())
		}
	}
}

func TestBindingsForScopeKeepsOrder(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	bindings := reg.BindingsForScope("screen:picker")
	if len(bindings) == 0 {
		t.Fatalf("picker scope has no bindings")
	}
	for _, b := range bindings {
		if b.Action == "focus-left" {
			t.Fatalf("workspace-only binding leaked into picker scope")
		}
	}
	if bindings[len(bindings)-1].Action != "select" {
		t.Fatalf("registration order not preserved: %+v", bindings)
	}
}
