package core

import tea "github.com/charmbracelet/bubbletea"

// JumpTarget is one jumpable pane: a single key and its label.
type JumpTarget struct {
	Key   string
	Label string
}

// JumpTargetProvider is implemented by tabs whose panes can be jumped to.
type JumpTargetProvider interface {
	JumpTargets() []JumpTarget
	JumpToTarget(m *Model, key string) (bool, tea.Cmd)
}
