package workspace

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tteejj/supertui/core/focus"
)

// PaneContent is what lives inside a tile. Content may load asynchronously:
// Init returns the command that performs the load, and Loaded reports
// whether the content is ready to receive focus.
type PaneContent interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (PaneContent, tea.Cmd)
	View(width, height int) string
	Loaded() bool
	FocusTargets() []focus.Target
	Title() string
}

// InputCapturer marks content that is consuming raw text input, for example
// an inline editor. While captured, global single-key bindings stand down.
type InputCapturer interface {
	CapturesInput() bool
}

// ContentProvider constructs pane content from a type tag. The workspace
// never knows concrete content types.
type ContentProvider interface {
	Create(typeTag string) (PaneContent, error)
	Tags() []string
}

// FlashExpiredMsg clears the transient border highlight.
type FlashExpiredMsg struct {
	WorkspaceID string
	PaneID      string
}

// containerTarget is the fallback focus target for a pane itself, used when
// none of the content's own targets can take focus.
type containerTarget struct {
	paneID  string
	ws      *Workspace
	focused bool
}

func (c *containerTarget) ID() string     { return "pane:" + c.paneID }
func (c *containerTarget) CanFocus() bool { return c.ws.Contains(c.paneID) }
func (c *containerTarget) Loaded() bool   { return c.ws.Contains(c.paneID) }
func (c *containerTarget) Focus() error   { c.focused = true; return nil }
func (c *containerTarget) Blur()          { c.focused = false }

// rootTarget is the last-resort focus target. It always accepts focus so
// the fallback chain can never fail completely while the app runs.
type rootTarget struct{ id string }

func (r *rootTarget) ID() string     { return r.id }
func (r *rootTarget) CanFocus() bool { return true }
func (r *rootTarget) Loaded() bool   { return true }
func (r *rootTarget) Focus() error   { return nil }
func (r *rootTarget) Blur()          {}
