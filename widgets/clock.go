package widgets

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tteejj/supertui/core/focus"
	"github.com/tteejj/supertui/core/workspace"
)

type clockTickMsg struct {
	id string
	at time.Time
}

// Clock shows wall-clock time, refreshed once a second.
type Clock struct {
	id      string
	now     time.Time
	focused bool
	tgt     *target
}

func NewClock() *Clock {
	c := &Clock{id: uuid.NewString(), now: time.Now()}
	c.tgt = &target{
		id:      "clock:" + c.id,
		onFocus: func() { c.focused = true },
		onBlur:  func() { c.focused = false },
	}
	return c
}

func (c *Clock) Title() string { return "Clock" }
func (c *Clock) Loaded() bool  { return true }

func (c *Clock) FocusTargets() []focus.Target { return []focus.Target{c.tgt} }

func (c *Clock) Init() tea.Cmd { return c.tick() }

func (c *Clock) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg{id: c.id, at: t}
	})
}

func (c *Clock) Update(msg tea.Msg) (workspace.PaneContent, tea.Cmd) {
	if tick, ok := msg.(clockTickMsg); ok && tick.id == c.id {
		c.now = tick.at
		return c, c.tick()
	}
	return c, nil
}

func (c *Clock) View(width, height int) string {
	timeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	lines := []string{
		timeStyle.Render(c.now.Format("15:04:05")),
		c.now.Format("Monday, 02 Jan 2006"),
	}
	out := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, out)
}
