package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/tteejj/supertui/core"
	"github.com/tteejj/supertui/core/layout"
	"github.com/tteejj/supertui/core/workspace"
	"github.com/tteejj/supertui/internal/config"
	"github.com/tteejj/supertui/screens"
	"github.com/tteejj/supertui/tabs"
	"github.com/tteejj/supertui/widgets"
)

// ConfigureModel installs the modal hooks and registers the command set.
func ConfigureModel(m *core.Model, rt Runtime, allTabs []core.Tab) {
	if m == nil {
		return
	}

	m.OpenPanePickerModal = func(model *core.Model) core.Screen {
		tags := rt.Provider.Tags()
		items := make([]screens.PickerItem, 0, len(tags))
		for _, tag := range tags {
			items = append(items, screens.PickerItem{
				ID:    tag,
				Label: titleCase(tag),
				Desc:  widgets.Describe(tag),
			})
		}
		return screens.NewPanePicker(items)
	}

	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		bindings := bindingsByAction(model, scope)
		return screens.NewCommandScreen(scope,
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{
						ID:       r.CommandID,
						Name:     r.Name,
						Desc:     r.Desc,
						Binding:  bindings[r.CommandID],
						Disabled: r.Disabled,
						Reason:   r.Reason,
					})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}

	m.OpenJumpPickerModal = func(model *core.Model, targets []core.JumpTarget) core.Screen {
		return screens.NewJumpPickerScreen(targets)
	}

	RegisterCommands(m.CommandRegistry(), rt, allTabs)
}

func RegisterCommands(reg *core.CommandRegistry, rt Runtime, allTabs []core.Tab) {
	for _, tag := range rt.Provider.Tags() {
		tag := tag
		reg.Register(core.Command{
			ID:          "open-" + tag,
			Name:        "Open " + titleCase(tag) + " pane",
			Description: widgets.Describe(tag),
			Scopes:      []string{"workspace"},
			Execute: func(m *core.Model) tea.Cmd {
				return func() tea.Msg { return core.OpenPaneMsg{TypeTag: tag} }
			},
		})
	}

	reg.Register(core.Command{
		ID:          "close-pane",
		Name:        "Close focused pane",
		Description: "Remove the focused pane; focus falls back to a neighbor",
		Scopes:      []string{"workspace"},
		Disabled: func(m *core.Model) (bool, string) {
			ws := activeWorkspace(m)
			if ws == nil || ws.FocusedPane() == "" {
				return true, "no pane focused"
			}
			return false, ""
		},
		Execute: func(m *core.Model) tea.Cmd {
			ws := activeWorkspace(m)
			if ws == nil {
				return nil
			}
			title := ws.PaneTitle(ws.FocusedPane())
			ws.ClosePane(ws.FocusedPane())
			return core.StatusCmd("Closed " + title)
		},
	})

	for _, mode := range []layout.Mode{layout.ModeAuto, layout.ModeStacking, layout.ModeWide, layout.ModeTall, layout.ModeGrid} {
		mode := mode
		reg.Register(core.Command{
			ID:          "layout-" + mode.String(),
			Name:        "Layout: " + mode.String(),
			Description: "Switch the workspace layout mode",
			Scopes:      []string{"workspace"},
			Execute: func(m *core.Model) tea.Cmd {
				ws := activeWorkspace(m)
				if ws == nil {
					return nil
				}
				ws.SetLayoutMode(mode)
				rt.Cfg.Layout.DefaultMode = mode.String()
				if err := persistConfig(&rt); err != nil {
					return core.ErrorCmd(err)
				}
				return core.StatusCmd("Layout: " + mode.String())
			},
		})
	}

	reg.Register(core.Command{
		ID:          "save-layout",
		Name:        "Save layout",
		Description: "Persist all workspaces so they restore on next start",
		Scopes:      []string{"*"},
		Disabled: func(m *core.Model) (bool, string) {
			if rt.Workspaces == nil {
				return true, "no database"
			}
			return false, ""
		},
		Execute: func(m *core.Model) tea.Cmd {
			if err := SaveLayouts(rt, m.Tabs()); err != nil {
				return core.ErrorCmd(err)
			}
			return core.StatusCmd("Layout saved")
		},
	})

	for i, tab := range allTabs {
		i, tab := i, tab
		reg.Register(core.Command{
			ID:          "switch-workspace-" + tab.ID(),
			Name:        "Switch to " + tab.Title(),
			Description: "Activate the " + tab.Title() + " workspace",
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				m.SwitchTab(i)
				return core.StatusCmd(tab.Title())
			},
		})
	}

	reg.Register(core.Command{
		ID:          "workspace-next",
		Name:        "Next workspace",
		Description: "Activate the workspace to the right",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			n := len(m.Tabs())
			if n == 0 {
				return nil
			}
			m.SwitchTab((m.ActiveTabIndex() + 1) % n)
			return core.StatusCmd(m.ActiveTab().Title())
		},
	})
	reg.Register(core.Command{
		ID:          "workspace-prev",
		Name:        "Previous workspace",
		Description: "Activate the workspace to the left",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			n := len(m.Tabs())
			if n == 0 {
				return nil
			}
			m.SwitchTab((m.ActiveTabIndex() + n - 1) % n)
			return core.StatusCmd(m.ActiveTab().Title())
		},
	})

	reg.Register(core.Command{
		ID:          "new-workspace",
		Name:        "New workspace",
		Description: "Add an empty workspace tab",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			name := fmt.Sprintf("Workspace %d", len(m.Tabs())+1)
			ws := newWorkspace(rt, uuid.NewString(), name)
			ws.SetLayoutMode(layout.ModeFromString(rt.Cfg.Layout.DefaultMode))
			m.AddTab(tabs.NewWorkspaceTab(ws))
			return core.StatusCmd(name)
		},
	})

	accents := []string{"#cba6f7", "#89b4fa", "#a6e3a1", "#fab387"}
	accentIdx := 0
	reg.Register(core.Command{
		ID:          "cycle-accent",
		Name:        "Cycle accent color",
		Description: "Rotate the theme accent through the palette",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			accentIdx = (accentIdx + 1) % len(accents)
			core.ApplyAccent(accents[accentIdx])
			rt.Cfg.UI.Accent = accents[accentIdx]
			if err := persistConfig(&rt); err != nil {
				return core.ErrorCmd(err)
			}
			return core.StatusCmd("Accent " + accents[accentIdx])
		},
	})
}

// persistConfig writes the runtime config back to disk so layout and
// accent choices survive restarts. A config written for the first time
// also gets the effective keybindings, so users have a map to edit.
func persistConfig(rt *Runtime) error {
	if len(rt.Cfg.Keys) == 0 {
		rt.Cfg.Keys = core.DefaultKeybindingsByAction(core.DefaultKeyBindings())
	}
	return config.Save(rt.Cfg)
}

// activeWorkspace returns the active tab's workspace, or nil when the
// active tab is not a workspace.
func activeWorkspace(m *core.Model) *workspace.Workspace {
	wt, ok := m.ActiveTab().(*tabs.WorkspaceTab)
	if !ok {
		return nil
	}
	return wt.Workspace()
}

// bindingsByAction maps command IDs to the key that triggers the same
// action directly, for display in the palette.
func bindingsByAction(m *core.Model, scope string) map[string]string {
	out := make(map[string]string)
	for _, b := range m.KeyRegistry().BindingsForScope(scope) {
		if len(b.Keys) == 0 {
			continue
		}
		if _, ok := out[b.Action]; !ok {
			out[b.Action] = b.Keys[0]
		}
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
