package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/tteejj/supertui/core/widgets"
)

// Screen is a modal overlay on the screen stack. The bool return from Update
// pops the screen.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Tab is one top-level surface. Workspaces implement it; so could any other
// full-body view.
type Tab interface {
	ID() string
	Title() string
	Scope() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
}

// TabInitializer lets a tab contribute startup commands.
type TabInitializer interface {
	InitTab(m *Model) tea.Cmd
}

// TabKeyHandler gets first crack at key messages before scope actions run.
type TabKeyHandler interface {
	HandleTabKey(m *Model, msg tea.KeyMsg) (bool, tea.Cmd)
}

// BackgroundUpdater receives non-key messages even while another tab is
// active, so deferred work in background workspaces still completes.
type BackgroundUpdater interface {
	UpdateBackground(m *Model, msg tea.Msg) tea.Cmd
}

type Model struct {
	width     int
	height    int
	tabs      []Tab
	activeTab int
	screens   ScreenStack
	keys      *KeyRegistry
	commands  *CommandRegistry
	status    string
	statusErr bool
	quitting  bool
	jump      JumpMode
	Log       zerolog.Logger

	OpenCommandModal    func(m *Model, scope string) Screen
	OpenPanePickerModal func(m *Model) Screen
	OpenJumpPickerModal func(m *Model, targets []JumpTarget) Screen
}

func NewModel(tabs []Tab, keys *KeyRegistry, commands *CommandRegistry, log zerolog.Logger) Model {
	return Model{
		tabs:      tabs,
		keys:      keys,
		commands:  commands,
		Log:       log.With().Str("component", "app").Logger(),
		status:    "Ready",
		activeTab: 0,
		width:     100,
		height:    32,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, t := range m.tabs {
		if initTab, ok := t.(TabInitializer); ok {
			if cmd := initTab.InitTab(&m); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.tabs) == 0 {
		return "app"
	}
	return m.tabs[m.activeTab].Scope()
}

func (m Model) ActiveTab() Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.activeTab]
}

func (m Model) ActiveTabIndex() int { return m.activeTab }

func (m Model) Tabs() []Tab { return m.tabs }

func (m *Model) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	m.activeTab = index
}

// AddTab appends a tab at runtime and activates it.
func (m *Model) AddTab(tab Tab) {
	if tab == nil {
		return
	}
	m.tabs = append(m.tabs, tab)
	m.activeTab = len(m.tabs) - 1
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m *Model) KeyRegistry() *KeyRegistry {
	return m.keys
}
