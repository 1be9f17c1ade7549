package tabs

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tteejj/supertui/core"
	"github.com/tteejj/supertui/core/layout"
	"github.com/tteejj/supertui/core/widgets"
	"github.com/tteejj/supertui/core/workspace"
)

// WorkspaceTab exposes one workspace as a top-level tab.
type WorkspaceTab struct {
	ws       *workspace.Workspace
	initCmds []tea.Cmd
}

func NewWorkspaceTab(ws *workspace.Workspace) *WorkspaceTab {
	return &WorkspaceTab{ws: ws}
}

func (t *WorkspaceTab) ID() string    { return t.ws.ID() }
func (t *WorkspaceTab) Title() string { return t.ws.Name() }

func (t *WorkspaceTab) Workspace() *workspace.Workspace { return t.ws }

// Scope narrows to "editing" while the focused pane consumes raw text, so
// single-key global bindings stand down.
func (t *WorkspaceTab) Scope() string {
	if c, ok := t.ws.FocusedContent().(workspace.InputCapturer); ok && c.CapturesInput() {
		return "editing"
	}
	return "workspace"
}

var focusActions = map[string]layout.Direction{
	"focus-left":  layout.DirLeft,
	"focus-right": layout.DirRight,
	"focus-up":    layout.DirUp,
	"focus-down":  layout.DirDown,
}

// HandleTabKey runs before scope actions and pane routing. It owns the
// directional focus keys and pane close.
func (t *WorkspaceTab) HandleTabKey(m *core.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	scope := t.Scope()
	for action, dir := range focusActions {
		if !m.KeyRegistry().IsAction(msg, action, scope) {
			continue
		}
		if t.ws.NavigateFocus(dir) {
			m.SetStatus("Focused: " + t.ws.PaneTitle(t.ws.FocusedPane()))
			return true, t.ws.FlashFocused()
		}
		m.SetStatus("No pane " + dir.String())
		return true, nil
	}
	if m.KeyRegistry().IsAction(msg, "close-pane", scope) {
		focused := t.ws.FocusedPane()
		if focused == "" {
			m.SetStatus("No pane to close")
			return true, nil
		}
		title := t.ws.PaneTitle(focused)
		t.ws.ClosePane(focused)
		m.SetStatus("Closed " + title)
		return true, nil
	}
	return false, nil
}

func (t *WorkspaceTab) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	if om, ok := msg.(core.OpenPaneMsg); ok {
		return t.openPane(m, om.TypeTag)
	}
	return t.ws.Update(msg)
}

// UpdateBackground keeps timers and load completions flowing while another
// tab is active. Open requests are active-tab only.
func (t *WorkspaceTab) UpdateBackground(m *core.Model, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(core.OpenPaneMsg); ok {
		return nil
	}
	return t.ws.Update(msg)
}

func (t *WorkspaceTab) openPane(m *core.Model, typeTag string) tea.Cmd {
	_, cmd, err := t.ws.OpenPane(typeTag)
	if err != nil {
		m.SetError(err)
		return nil
	}
	m.SetStatus("Opened " + typeTag)
	return cmd
}

// OpenPane is the direct form used at startup restore, outside the message
// loop. The content's load command is queued for InitTab.
func (t *WorkspaceTab) OpenPane(typeTag string) (string, error) {
	paneID, cmd, err := t.ws.OpenPane(typeTag)
	if err != nil {
		return "", err
	}
	if cmd != nil {
		t.initCmds = append(t.initCmds, cmd)
	}
	return paneID, nil
}

// InitTab drains the queued restore commands into the program's first
// batch, so deferred focus fires once restored content loads.
func (t *WorkspaceTab) InitTab(m *core.Model) tea.Cmd {
	if len(t.initCmds) == 0 {
		return nil
	}
	cmds := t.initCmds
	t.initCmds = nil
	return tea.Batch(cmds...)
}

func (t *WorkspaceTab) Build(m *core.Model) widgets.Widget {
	return workspaceWidget{ws: t.ws}
}

// JumpTargets assigns letters to panes in tile order.
func (t *WorkspaceTab) JumpTargets() []core.JumpTarget {
	ids := t.ws.Panes()
	out := make([]core.JumpTarget, 0, len(ids))
	for i, paneID := range ids {
		if i >= 26 {
			break
		}
		out = append(out, core.JumpTarget{
			Key:   string(rune('a' + i)),
			Label: t.ws.PaneTitle(paneID),
		})
	}
	return out
}

func (t *WorkspaceTab) JumpToTarget(m *core.Model, key string) (bool, tea.Cmd) {
	if len(key) != 1 || key[0] < 'a' || key[0] > 'z' {
		return false, nil
	}
	idx := int(key[0] - 'a')
	ids := t.ws.Panes()
	if idx >= len(ids) {
		return false, nil
	}
	if !t.ws.RequestFocus(ids[idx]) {
		return false, nil
	}
	m.SetStatus("Focused: " + t.ws.PaneTitle(ids[idx]))
	return true, t.ws.FlashFocused()
}

type workspaceWidget struct {
	ws *workspace.Workspace
}

func (w workspaceWidget) Render(width, height int) string {
	if w.ws.PaneCount() == 0 {
		return widgets.Pane{
			Title:   w.ws.Name(),
			Content: "No panes open.\n\nctrl+o opens a pane, ctrl+k lists commands.",
		}.Render(width, height)
	}
	return w.ws.View(width, height)
}
