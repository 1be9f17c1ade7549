package focus

import (
	"github.com/rs/zerolog"

	"github.com/tteejj/supertui/core/layout"
)

// PaneSet is the controller's view of the open panes. The workspace
// implements it by delegating to the layout engine and its content map.
type PaneSet interface {
	Contains(id string) bool
	PaneIDs() []string
	FindInDirection(id string, dir layout.Direction) (string, bool)
	// Loaded reports whether the pane's content is constructed and
	// attachable. Focus on an unloaded pane is deferred, not failed.
	Loaded(id string) bool
}

// pendingFocus is a single registered continuation for a pane whose content
// had not loaded when focus was requested. At most one exists; a newer
// request supersedes it via the sequence counter.
type pendingFocus struct {
	paneID string
	seq    uint64
}

// Controller owns the "currently focused pane" pointer. It is a two-state
// machine (NoFocus / Focused) whose every transition goes through the
// fallback resolver, so focus can never dangle on a dead element.
type Controller struct {
	log      zerolog.Logger
	resolver *Resolver
	set      PaneSet

	focusedID string
	prevID    string
	current   Target
	lastKnown map[string]Handle
	gens      map[string]uint64
	pending   *pendingFocus
	seq       uint64

	OnFocusChanged      func(paneID string)
	OnNavigationBlocked func(dir layout.Direction)
	// OnNoFocusTarget fires when the last pane closes; a collaborator may
	// use it to focus the application root.
	OnNoFocusTarget func()
}

func NewController(set PaneSet, resolver *Resolver, log zerolog.Logger) *Controller {
	return &Controller{
		log:       log.With().Str("component", "focus").Logger(),
		resolver:  resolver,
		set:       set,
		lastKnown: make(map[string]Handle),
		gens:      make(map[string]uint64),
	}
}

// FocusedPane returns the focused pane id, or "" in the NoFocus state.
func (c *Controller) FocusedPane() string { return c.focusedID }

// RequestFocus moves focus to the given pane. If the pane's content has not
// loaded yet the attempt is deferred: a one-shot continuation runs when
// ContentLoaded fires, and any newer request supersedes it. Returns false
// only when the pane is unknown or every fallback level failed; on failure
// the prior focus state is kept.
func (c *Controller) RequestFocus(paneID string) bool {
	if !c.set.Contains(paneID) {
		c.log.Warn().Str("pane", paneID).Msg("focus request for unknown pane")
		return false
	}
	c.seq++
	if !c.set.Loaded(paneID) {
		c.pending = &pendingFocus{paneID: paneID, seq: c.seq}
		c.log.Debug().Str("pane", paneID).Msg("focus deferred until content loads")
		return true
	}
	c.pending = nil
	return c.resolveNow(paneID)
}

// ContentLoaded re-attempts a deferred focus request. Callbacks that fire
// after their request was superseded or their pane closed are discarded
// without logging; that is normal operation, not an error.
func (c *Controller) ContentLoaded(paneID string) {
	p := c.pending
	if p == nil || p.paneID != paneID || p.seq != c.seq {
		return
	}
	c.pending = nil
	if !c.set.Contains(paneID) {
		return
	}
	c.resolveNow(paneID)
}

// NavigateDirection moves focus spatially. Returns false when there is no
// pane in that direction; edges are dead ends, reported through
// OnNavigationBlocked so a collaborator can give feedback.
func (c *Controller) NavigateDirection(dir layout.Direction) bool {
	if c.focusedID == "" || len(c.set.PaneIDs()) <= 1 {
		return false
	}
	if !c.set.Contains(c.focusedID) {
		// Focus went dangling (pane closed without notice); recover before
		// navigating so adjacency queries have a live origin.
		c.recoverFrom(c.focusedID)
		return false
	}
	target, ok := c.set.FindInDirection(c.focusedID, dir)
	if !ok {
		c.log.Debug().Str("dir", dir.String()).Str("pane", c.focusedID).Msg("navigation blocked at edge")
		if c.OnNavigationBlocked != nil {
			c.OnNavigationBlocked(dir)
		}
		return false
	}
	return c.RequestFocus(target)
}

// OnPaneClosed redirects focus when the focused pane leaves the open set.
// Fallback priority: previously focused pane if still open, then the first
// remaining open pane, then NoFocus.
func (c *Controller) OnPaneClosed(paneID string) {
	c.gens[paneID]++
	delete(c.lastKnown, paneID)
	if c.pending != nil && c.pending.paneID == paneID {
		c.pending = nil
	}
	if paneID != c.focusedID {
		return
	}
	c.recoverFrom(paneID)
}

// OnPaneBecameUnavailable handles a pane destroyed by an external rebuild
// mid-operation; the recovery path is identical to a close.
func (c *Controller) OnPaneBecameUnavailable(paneID string) {
	c.OnPaneClosed(paneID)
}

// InvalidatePane bumps the pane's content generation so stale last-known
// handles stop being offered as rank-1 candidates.
func (c *Controller) InvalidatePane(paneID string) {
	c.gens[paneID]++
	delete(c.lastKnown, paneID)
}

func (c *Controller) recoverFrom(closedID string) {
	c.current = nil
	c.focusedID = ""
	if c.prevID != "" && c.prevID != closedID && c.set.Contains(c.prevID) {
		if c.RequestFocus(c.prevID) {
			return
		}
	}
	for _, id := range c.set.PaneIDs() {
		if id == closedID {
			continue
		}
		if c.RequestFocus(id) {
			return
		}
	}
	c.log.Debug().Msg("no focus target available")
	if c.OnNoFocusTarget != nil {
		c.OnNoFocusTarget()
	}
}

func (c *Controller) resolveNow(paneID string) bool {
	gen := c.gens[paneID]
	var requested Target
	if h, ok := c.lastKnown[paneID]; ok && h.Valid(gen) {
		requested = h.Target
	}
	target, _, err := c.resolver.Resolve(requested, paneID)
	if err != nil {
		c.log.Error().Str("pane", paneID).Err(err).Msg("focus request failed")
		return false
	}
	if c.current != nil && c.current != target {
		c.current.Blur()
	}
	c.current = target
	c.lastKnown[paneID] = Handle{Target: target, Gen: gen}
	if c.focusedID != paneID {
		c.prevID = c.focusedID
		c.focusedID = paneID
	}
	if c.OnFocusChanged != nil {
		c.OnFocusChanged(paneID)
	}
	return true
}
