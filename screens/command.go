package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tteejj/supertui/core"
)

type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Binding  string
	Disabled bool
	Reason   string
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}

func (i CommandOption) Description() string {
	if i.Binding != "" {
		return i.Desc + "  [" + i.Binding + "]"
	}
	return i.Desc
}

func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// CommandScreen is the palette: a text input filtering the scoped command
// set, enter dispatching the selection. Disabled entries stay visible so
// the user learns why an action is unavailable.
type CommandScreen struct {
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
}

func NewCommandScreen(scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	s := &CommandScreen{scope: scope, search: search, onSelect: onSelect, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return "Commands" }
func (s *CommandScreen) Scope() string { return "screen:command" }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, nil, true
		case "enter":
			if it, ok := s.list.SelectedItem().(CommandOption); ok {
				if it.Disabled {
					return s, core.StatusCmd(it.Reason), true
				}
				if s.onSelect != nil {
					return s, func() tea.Msg { return s.onSelect(it.ID) }, true
				}
				return s, nil, true
			}
		}
	}
	var inputCmd tea.Cmd
	s.input, inputCmd = s.input.Update(msg)
	s.refresh()
	var listCmd tea.Cmd
	s.list, listCmd = s.list.Update(msg)
	return s, tea.Batch(inputCmd, listCmd), false
}

func (s *CommandScreen) refresh() {
	query := strings.TrimSpace(s.input.Value())
	options := s.search(query)
	items := make([]list.Item, 0, len(options))
	for _, opt := range options {
		items = append(items, opt)
	}
	_ = s.list.SetItems(items)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(6, height-4))
	header := "Commands"
	if s.scope != "" && s.scope != "*" {
		header += " (" + s.scope + ")"
	}
	return header + "\n" + s.input.View() + "\n" + s.list.View()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
