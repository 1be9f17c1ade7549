package focus

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/tteejj/supertui/core/layout"
)

// fakePanes implements both PaneSet and Source over a fixed pane list with
// explicit adjacency so controller tests need no layout engine.
type fakePanes struct {
	ids       []string
	loaded    map[string]bool
	targets   map[string][]Target
	neighbors map[string]map[layout.Direction]string
	root      Target
}

func newFakePanes(ids ...string) *fakePanes {
	p := &fakePanes{
		ids:       ids,
		loaded:    make(map[string]bool),
		targets:   make(map[string][]Target),
		neighbors: make(map[string]map[layout.Direction]string),
		root:      viable("root"),
	}
	for _, id := range ids {
		p.loaded[id] = true
		p.targets[id] = []Target{viable(id + "-widget")}
	}
	return p
}

func (p *fakePanes) Contains(id string) bool {
	for _, v := range p.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (p *fakePanes) PaneIDs() []string { return p.ids }

func (p *fakePanes) FindInDirection(id string, dir layout.Direction) (string, bool) {
	if m, ok := p.neighbors[id]; ok {
		if to, ok := m[dir]; ok {
			return to, true
		}
	}
	return "", false
}

func (p *fakePanes) Loaded(id string) bool { return p.loaded[id] }

func (p *fakePanes) FocusTargets(paneID string) []Target { return p.targets[paneID] }
func (p *fakePanes) Container(paneID string) Target      { return nil }
func (p *fakePanes) Root() Target                        { return p.root }

func (p *fakePanes) remove(id string) {
	out := p.ids[:0]
	for _, v := range p.ids {
		if v != id {
			out = append(out, v)
		}
	}
	p.ids = out
}

func newTestController(p *fakePanes) *Controller {
	return NewController(p, NewResolver(p, zerolog.Nop()), zerolog.Nop())
}

func TestRequestFocusImmediate(t *testing.T) {
	panes := newFakePanes("a", "b")
	c := newTestController(panes)
	var changed []string
	c.OnFocusChanged = func(id string) { changed = append(changed, id) }

	if !c.RequestFocus("a") {
		t.Fatalf("expected focus to land")
	}
	if c.FocusedPane() != "a" {
		t.Fatalf("focused = %q, want a", c.FocusedPane())
	}
	if len(changed) != 1 || changed[0] != "a" {
		t.Fatalf("changed = %v, want [a]", changed)
	}
}

func TestRequestFocusUnknownPane(t *testing.T) {
	c := newTestController(newFakePanes("a"))
	if c.RequestFocus("nope") {
		t.Fatalf("unknown pane must not take focus")
	}
	if c.FocusedPane() != "" {
		t.Fatalf("focus state should be unchanged")
	}
}

func TestDeferredFocusFiresOnLoad(t *testing.T) {
	panes := newFakePanes("a")
	panes.loaded["a"] = false
	c := newTestController(panes)

	if !c.RequestFocus("a") {
		t.Fatalf("deferred request should be accepted")
	}
	if c.FocusedPane() != "" {
		t.Fatalf("focus must not land before load")
	}

	panes.loaded["a"] = true
	c.ContentLoaded("a")
	if c.FocusedPane() != "a" {
		t.Fatalf("focused = %q, want a after load", c.FocusedPane())
	}
}

func TestDeferredFocusSuperseded(t *testing.T) {
	panes := newFakePanes("a", "b")
	panes.loaded["a"] = false
	c := newTestController(panes)

	c.RequestFocus("a")
	c.RequestFocus("b")
	if c.FocusedPane() != "b" {
		t.Fatalf("focused = %q, want b", c.FocusedPane())
	}

	// The stale continuation for a must be discarded silently.
	panes.loaded["a"] = true
	c.ContentLoaded("a")
	if c.FocusedPane() != "b" {
		t.Fatalf("stale load callback moved focus to %q", c.FocusedPane())
	}
}

func TestDeferredFocusCancelledByClose(t *testing.T) {
	panes := newFakePanes("a", "b")
	panes.loaded["a"] = false
	c := newTestController(panes)

	c.RequestFocus("a")
	panes.remove("a")
	c.OnPaneClosed("a")

	panes.loaded["a"] = true
	c.ContentLoaded("a")
	if c.FocusedPane() == "a" {
		t.Fatalf("closed pane must not receive deferred focus")
	}
}

func TestNavigateMovesFocus(t *testing.T) {
	panes := newFakePanes("a", "b")
	panes.neighbors["a"] = map[layout.Direction]string{layout.DirRight: "b"}
	c := newTestController(panes)
	c.RequestFocus("a")

	if !c.NavigateDirection(layout.DirRight) {
		t.Fatalf("expected move right to succeed")
	}
	if c.FocusedPane() != "b" {
		t.Fatalf("focused = %q, want b", c.FocusedPane())
	}
}

func TestNavigateBlockedAtEdge(t *testing.T) {
	panes := newFakePanes("a", "b")
	c := newTestController(panes)
	c.RequestFocus("a")

	var blocked []layout.Direction
	c.OnNavigationBlocked = func(dir layout.Direction) { blocked = append(blocked, dir) }

	if c.NavigateDirection(layout.DirLeft) {
		t.Fatalf("edge navigation should fail")
	}
	if c.FocusedPane() != "a" {
		t.Fatalf("focus must stay on a")
	}
	if len(blocked) != 1 || blocked[0] != layout.DirLeft {
		t.Fatalf("blocked = %v, want [left]", blocked)
	}
}

func TestNavigateNoOpWithSinglePane(t *testing.T) {
	panes := newFakePanes("a")
	c := newTestController(panes)
	c.RequestFocus("a")
	if c.NavigateDirection(layout.DirRight) {
		t.Fatalf("single pane navigation should be a no-op")
	}
}

func TestCloseFocusedPrefersPrevious(t *testing.T) {
	panes := newFakePanes("a", "b", "c")
	c := newTestController(panes)
	c.RequestFocus("b")
	c.RequestFocus("c")

	panes.remove("c")
	c.OnPaneClosed("c")
	if c.FocusedPane() != "b" {
		t.Fatalf("focused = %q, want previously focused b", c.FocusedPane())
	}
}

func TestCloseFocusedFallsToFirstRemaining(t *testing.T) {
	panes := newFakePanes("a", "b")
	c := newTestController(panes)
	c.RequestFocus("b")

	// No prior focus history besides b itself.
	panes.remove("b")
	c.OnPaneClosed("b")
	if c.FocusedPane() != "a" {
		t.Fatalf("focused = %q, want a", c.FocusedPane())
	}
}

func TestCloseLastPaneReachesNoFocus(t *testing.T) {
	panes := newFakePanes("a")
	c := newTestController(panes)
	c.RequestFocus("a")

	fired := false
	c.OnNoFocusTarget = func() { fired = true }

	panes.remove("a")
	c.OnPaneClosed("a")
	if c.FocusedPane() != "" {
		t.Fatalf("focused = %q, want none", c.FocusedPane())
	}
	if !fired {
		t.Fatalf("expected OnNoFocusTarget")
	}
}

func TestCloseUnfocusedPaneKeepsFocus(t *testing.T) {
	panes := newFakePanes("a", "b")
	c := newTestController(panes)
	c.RequestFocus("a")

	panes.remove("b")
	c.OnPaneClosed("b")
	if c.FocusedPane() != "a" {
		t.Fatalf("focused = %q, want a", c.FocusedPane())
	}
}

func TestRefocusSamePaneBlursNothing(t *testing.T) {
	panes := newFakePanes("a")
	c := newTestController(panes)
	c.RequestFocus("a")
	target := panes.targets["a"][0].(*fakeTarget)
	c.RequestFocus("a")
	if target.blurs != 0 {
		t.Fatalf("refocusing the held target must not blur it")
	}
}
