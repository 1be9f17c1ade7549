package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tteejj/supertui/core"
	"github.com/tteejj/supertui/core/layout"
	"github.com/tteejj/supertui/core/workspace"
	"github.com/tteejj/supertui/internal/config"
	"github.com/tteejj/supertui/internal/store"
	"github.com/tteejj/supertui/tabs"
)

// Runtime carries the wired dependencies from main into tab construction
// and command registration.
type Runtime struct {
	Ctx        context.Context
	Cfg        config.Config
	Log        zerolog.Logger
	Provider   workspace.ContentProvider
	Workspaces *store.WorkspaceRepo
}

// BuildTabs restores persisted workspaces, or seeds the default set on
// first run. Restored panes queue their load commands on the tab, which
// releases them through InitTab.
func BuildTabs(rt Runtime) ([]core.Tab, error) {
	var records []store.WorkspaceRecord
	if rt.Workspaces != nil {
		var err error
		records, err = rt.Workspaces.List(rt.Ctx)
		if err != nil {
			return nil, err
		}
	}
	if len(records) == 0 {
		records = defaultWorkspaces(rt.Cfg)
	}

	out := make([]core.Tab, 0, len(records))
	for _, rec := range records {
		ws := newWorkspace(rt, rec.ID, rec.Name)
		ws.SetLayoutMode(layout.ModeFromString(rec.LayoutMode))
		tab := tabs.NewWorkspaceTab(ws)
		restored := make(map[string]string, len(rec.Panes))
		for _, pane := range rec.Panes {
			newID, err := tab.OpenPane(pane.TypeTag)
			if err != nil {
				rt.Log.Warn().Err(err).Str("type", pane.TypeTag).Msg("skipping unrestorable pane")
				continue
			}
			restored[pane.ID] = newID
		}
		if rec.FocusedPaneID != nil {
			if newID, ok := restored[*rec.FocusedPaneID]; ok {
				ws.RequestFocus(newID)
			}
		}
		out = append(out, tab)
	}
	return out, nil
}

// newWorkspace builds a workspace with the configured flash duration.
func newWorkspace(rt Runtime, id, name string) *workspace.Workspace {
	ws := workspace.New(id, name, rt.Provider, rt.Log)
	ws.SetFlashDuration(time.Duration(rt.Cfg.UI.FlashMs) * time.Millisecond)
	return ws
}

// SaveLayouts persists every workspace tab's current arrangement.
func SaveLayouts(rt Runtime, allTabs []core.Tab) error {
	if rt.Workspaces == nil {
		return nil
	}
	for i, tab := range allTabs {
		wt, ok := tab.(*tabs.WorkspaceTab)
		if !ok {
			continue
		}
		ws := wt.Workspace()
		rec := store.WorkspaceRecord{
			ID:         ws.ID(),
			Name:       ws.Name(),
			LayoutMode: ws.LayoutMode().String(),
			Position:   i,
		}
		if focused := ws.FocusedPane(); focused != "" {
			rec.FocusedPaneID = &focused
		}
		for pos, paneID := range ws.Panes() {
			rec.Panes = append(rec.Panes, store.PaneRecord{
				ID:          paneID,
				WorkspaceID: ws.ID(),
				TypeTag:     ws.PaneType(paneID),
				Position:    pos,
			})
		}
		if err := rt.Workspaces.Save(rt.Ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func defaultWorkspaces(cfg config.Config) []store.WorkspaceRecord {
	mode := cfg.Layout.DefaultMode
	if mode == "" {
		mode = "auto"
	}
	mk := func(name string, pos int, tags ...string) store.WorkspaceRecord {
		rec := store.WorkspaceRecord{
			ID:         uuid.NewString(),
			Name:       name,
			LayoutMode: mode,
			Position:   pos,
		}
		for i, tag := range tags {
			rec.Panes = append(rec.Panes, store.PaneRecord{
				ID:          uuid.NewString(),
				WorkspaceID: rec.ID,
				TypeTag:     tag,
				Position:    i,
			})
		}
		return rec
	}
	return []store.WorkspaceRecord{
		mk("Main", 0, "clock", "sysinfo"),
		mk("Notes", 1, "notes"),
		mk("Todo", 2, "todo"),
		mk("Scratch", 3),
	}
}
