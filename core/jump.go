package core

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

type JumpMode struct {
	Active bool
}

// activateJumpPicker opens the jump modal listing the active tab's panes.
// Without a modal constructor it falls back to inline jump mode, where the
// next keypress is interpreted as a pane key.
func (m *Model) activateJumpPicker() tea.Cmd {
	provider, ok := m.ActiveTab().(JumpTargetProvider)
	if !ok {
		m.SetStatus("No jump targets here")
		return nil
	}
	targets := provider.JumpTargets()
	if len(targets) == 0 {
		m.SetStatus("No jump targets here")
		return nil
	}
	if m.OpenJumpPickerModal != nil {
		m.screens.Push(m.OpenJumpPickerModal(m, targets))
		return nil
	}
	m.jump.Active = true
	m.SetStatus("Jump: press pane key")
	return nil
}

func (m *Model) jumpHandleKey(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	if !m.jump.Active {
		return false, nil
	}
	m.jump.Active = false
	r := []rune(strings.ToLower(msg.String()))
	if len(r) != 1 || (!unicode.IsLetter(r[0]) && !unicode.IsDigit(r[0])) {
		m.SetStatus("Jump cancelled")
		return true, nil
	}
	provider, ok := m.ActiveTab().(JumpTargetProvider)
	if !ok {
		m.SetStatus("Jump cancelled")
		return true, nil
	}
	jumped, jumpCmd := provider.JumpToTarget(m, string(r[0]))
	if !jumped {
		m.SetStatus("No pane mapped to that key")
		return true, nil
	}
	return true, jumpCmd
}
