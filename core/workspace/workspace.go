package workspace

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tteejj/supertui/core/focus"
	"github.com/tteejj/supertui/core/layout"
	"github.com/tteejj/supertui/core/widgets"
)

const flashDuration = 300 * time.Millisecond

// Workspace is one named tiling surface. It owns the pane lifecycle and
// wires the layout engine's adjacency queries into the focus controller.
type Workspace struct {
	id       string
	name     string
	log      zerolog.Logger
	engine   *layout.Engine
	ctrl     *focus.Controller
	provider ContentProvider

	content    map[string]PaneContent
	types      map[string]string
	containers map[string]*containerTarget
	loadedSeen map[string]bool
	root       *rootTarget
	flash      string
	flashDur   time.Duration

	OnFocusChanged      func(paneID string)
	OnNavigationBlocked func(dir layout.Direction)
	OnNoFocusTarget     func()
}

func New(id, name string, provider ContentProvider, log zerolog.Logger) *Workspace {
	ws := &Workspace{
		id:         id,
		name:       name,
		log:        log.With().Str("component", "workspace").Str("workspace", name).Logger(),
		provider:   provider,
		content:    make(map[string]PaneContent),
		types:      make(map[string]string),
		containers: make(map[string]*containerTarget),
		loadedSeen: make(map[string]bool),
		root:       &rootTarget{id: "workspace:" + id},
		flashDur:   flashDuration,
	}
	ws.engine = layout.NewEngine(ws.log)
	ws.ctrl = focus.NewController(ws, focus.NewResolver(ws, ws.log), ws.log)
	ws.ctrl.OnFocusChanged = func(paneID string) {
		if ws.OnFocusChanged != nil {
			ws.OnFocusChanged(paneID)
		}
	}
	ws.ctrl.OnNavigationBlocked = func(dir layout.Direction) {
		if ws.OnNavigationBlocked != nil {
			ws.OnNavigationBlocked(dir)
		}
	}
	ws.ctrl.OnNoFocusTarget = func() {
		if ws.OnNoFocusTarget != nil {
			ws.OnNoFocusTarget()
		}
	}
	return ws
}

func (ws *Workspace) ID() string { return ws.id }

func (ws *Workspace) Name() string { return ws.name }

// OpenPane creates content for the type tag, adds a tile for it, and
// requests focus. Focus lands immediately for synchronous content and is
// deferred until load for asynchronous content. The returned command runs
// the content's initial load.
func (ws *Workspace) OpenPane(typeTag string) (string, tea.Cmd, error) {
	content, err := ws.provider.Create(typeTag)
	if err != nil {
		return "", nil, fmt.Errorf("open pane %q: %w", typeTag, err)
	}
	paneID := uuid.NewString()
	ws.engine.AddPane(paneID)
	ws.content[paneID] = content
	ws.types[paneID] = typeTag
	ws.containers[paneID] = &containerTarget{paneID: paneID, ws: ws}
	ws.loadedSeen[paneID] = content.Loaded()
	ws.log.Info().Str("pane", paneID).Str("type", typeTag).Msg("pane opened")
	ws.ctrl.RequestFocus(paneID)
	return paneID, content.Init(), nil
}

// ClosePane removes the pane and lets the focus controller redirect focus
// if the closed pane held it.
func (ws *Workspace) ClosePane(paneID string) bool {
	if !ws.engine.Contains(paneID) {
		return false
	}
	ws.engine.RemovePane(paneID)
	delete(ws.content, paneID)
	delete(ws.types, paneID)
	delete(ws.containers, paneID)
	delete(ws.loadedSeen, paneID)
	if ws.flash == paneID {
		ws.flash = ""
	}
	ws.log.Info().Str("pane", paneID).Msg("pane closed")
	ws.ctrl.OnPaneClosed(paneID)
	return true
}

// NavigateFocus moves focus to the spatial neighbor in the given direction.
// Returns false at an edge or when fewer than two panes are open.
func (ws *Workspace) NavigateFocus(dir layout.Direction) bool {
	return ws.ctrl.NavigateDirection(dir)
}

// SetFlashDuration overrides how long the focus flash highlight stays up.
// Non-positive durations are ignored.
func (ws *Workspace) SetFlashDuration(d time.Duration) {
	if d > 0 {
		ws.flashDur = d
	}
}

// FlashFocused starts the transient border highlight on the focused pane.
func (ws *Workspace) FlashFocused() tea.Cmd {
	paneID := ws.ctrl.FocusedPane()
	if paneID == "" {
		return nil
	}
	ws.flash = paneID
	wsID := ws.id
	return tea.Tick(ws.flashDur, func(time.Time) tea.Msg {
		return FlashExpiredMsg{WorkspaceID: wsID, PaneID: paneID}
	})
}

func (ws *Workspace) SetLayoutMode(mode layout.Mode) { ws.engine.SetMode(mode) }

func (ws *Workspace) LayoutMode() layout.Mode { return ws.engine.Mode() }

func (ws *Workspace) FocusedPane() string { return ws.ctrl.FocusedPane() }

func (ws *Workspace) Panes() []string { return ws.engine.PaneIDs() }

func (ws *Workspace) PaneCount() int { return ws.engine.Len() }

// FocusedContent returns the content of the focused pane, or nil.
func (ws *Workspace) FocusedContent() PaneContent {
	if c, ok := ws.content[ws.ctrl.FocusedPane()]; ok {
		return c
	}
	return nil
}

// PaneTitle returns the content title for a pane, or "" if unknown.
func (ws *Workspace) PaneTitle(paneID string) string {
	if c, ok := ws.content[paneID]; ok {
		return c.Title()
	}
	return ""
}

// PaneType returns the content type tag the pane was opened with.
func (ws *Workspace) PaneType(paneID string) string { return ws.types[paneID] }

// Geometry exposes the tile assignment for a pane.
func (ws *Workspace) Geometry(paneID string) (layout.Geometry, error) {
	return ws.engine.Geometry(paneID)
}

// RequestFocus asks the controller to focus a specific pane.
func (ws *Workspace) RequestFocus(paneID string) bool {
	return ws.ctrl.RequestFocus(paneID)
}

// Update routes a message through pane content. Key messages go only to the
// focused pane; everything else reaches all panes. Content that finishes
// loading during the update fires any deferred focus request.
func (ws *Workspace) Update(msg tea.Msg) tea.Cmd {
	if fm, ok := msg.(FlashExpiredMsg); ok {
		if fm.WorkspaceID == ws.id && ws.flash == fm.PaneID {
			ws.flash = ""
		}
		return nil
	}
	_, keyed := msg.(tea.KeyMsg)
	var cmds []tea.Cmd
	for _, paneID := range ws.engine.PaneIDs() {
		if keyed && paneID != ws.ctrl.FocusedPane() {
			continue
		}
		content, ok := ws.content[paneID]
		if !ok {
			continue
		}
		next, cmd := content.Update(msg)
		ws.content[paneID] = next
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if !ws.loadedSeen[paneID] && next.Loaded() {
			ws.loadedSeen[paneID] = true
			ws.log.Debug().Str("pane", paneID).Msg("pane content loaded")
			ws.ctrl.ContentLoaded(paneID)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// View composes all panes onto the grid decided by the layout engine.
func (ws *Workspace) View(width, height int) string {
	ids := ws.engine.PaneIDs()
	if len(ids) == 0 {
		return ""
	}
	preset := ws.engine.Preset()
	items := make([]widgets.GridItem, 0, len(ids))
	for _, paneID := range ids {
		geo, err := ws.engine.Geometry(paneID)
		if err != nil {
			continue
		}
		content := ws.content[paneID]
		items = append(items, widgets.GridItem{
			Cell: geo.Cell,
			Widget: paneTile{
				content: content,
				focused: paneID == ws.ctrl.FocusedPane(),
				flash:   paneID == ws.flash,
			},
		})
	}
	return widgets.Grid{
		Items:     items,
		ColRatios: preset.ColRatios,
		RowRatios: preset.RowRatios,
	}.Render(width, height)
}

// paneTile adapts pane content plus chrome into a grid widget so content
// sees its final inner size.
type paneTile struct {
	content PaneContent
	focused bool
	flash   bool
}

func (p paneTile) Render(width, height int) string {
	inner := ""
	title := ""
	if p.content != nil {
		innerW := width - 4
		innerH := height - 2
		if innerW < 1 {
			innerW = 1
		}
		if innerH < 1 {
			innerH = 1
		}
		inner = p.content.View(innerW, innerH)
		title = p.content.Title()
	}
	return widgets.Pane{
		Title:   title,
		Content: inner,
		Focused: p.focused,
		Flash:   p.flash,
	}.Render(width, height)
}

// focus.PaneSet implementation.

func (ws *Workspace) Contains(paneID string) bool { return ws.engine.Contains(paneID) }

func (ws *Workspace) PaneIDs() []string { return ws.engine.PaneIDs() }

func (ws *Workspace) FindInDirection(paneID string, dir layout.Direction) (string, bool) {
	return ws.engine.FindInDirection(paneID, dir)
}

func (ws *Workspace) Loaded(paneID string) bool {
	c, ok := ws.content[paneID]
	return ok && c.Loaded()
}

// focus.Source implementation.

func (ws *Workspace) FocusTargets(paneID string) []focus.Target {
	if c, ok := ws.content[paneID]; ok {
		return c.FocusTargets()
	}
	return nil
}

func (ws *Workspace) Container(paneID string) focus.Target {
	if t, ok := ws.containers[paneID]; ok {
		return t
	}
	return nil
}

func (ws *Workspace) Root() focus.Target { return ws.root }
