package focus

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrFocusUnreachable means every fallback level failed. In practice this only
// happens while the application is tearing down and even the root is gone.
var ErrFocusUnreachable = errors.New("focus: no reachable focus target")

// Fallback ranks, reported for observability only.
const (
	RankRequested = 1 + iota
	RankDescendant
	RankContainer
	RankRoot
)

// Resolver walks the deterministic fallback chain:
//
//	requested element -> first focusable descendant -> pane container -> root
//
// Each level is attempted only if the previous failed, every failure is
// converted into "try next level", and Resolve itself never panics even when
// a target's Focus implementation does.
type Resolver struct {
	log    zerolog.Logger
	source Source
}

func NewResolver(source Source, log zerolog.Logger) *Resolver {
	return &Resolver{
		log:    log.With().Str("component", "focus-resolver").Logger(),
		source: source,
	}
}

// Resolve returns the first target in the chain that accepted focus, along
// with the rank (1-4) that succeeded. Only total exhaustion is an error.
func (r *Resolver) Resolve(requested Target, paneID string) (Target, int, error) {
	if target, ok := r.attempt(requested, RankRequested, paneID); ok {
		return target, RankRequested, nil
	}
	for _, desc := range r.source.FocusTargets(paneID) {
		if target, ok := r.attempt(desc, RankDescendant, paneID); ok {
			return target, RankDescendant, nil
		}
	}
	if target, ok := r.attempt(r.source.Container(paneID), RankContainer, paneID); ok {
		return target, RankContainer, nil
	}
	if target, ok := r.attempt(r.source.Root(), RankRoot, paneID); ok {
		return target, RankRoot, nil
	}
	r.log.Error().Str("pane", paneID).Msg("focus chain exhausted")
	return nil, 0, ErrFocusUnreachable
}

// attempt tries one candidate. A nil target, an unloaded or unfocusable one,
// an error return, or a panic all count as failure for this level.
func (r *Resolver) attempt(t Target, rank int, paneID string) (target Target, ok bool) {
	ev := r.log.Debug().Int("rank", rank).Str("pane", paneID)
	if t == nil {
		ev.Str("reason", "nil").Msg("focus level skipped")
		return nil, false
	}
	if !t.Loaded() {
		ev.Str("target", t.ID()).Str("reason", "unloaded").Msg("focus level failed")
		return nil, false
	}
	if !t.CanFocus() {
		ev.Str("target", t.ID()).Str("reason", "unfocusable").Msg("focus level failed")
		return nil, false
	}
	if err := r.tryFocus(t); err != nil {
		ev.Str("target", t.ID()).Str("reason", err.Error()).Msg("focus level failed")
		return nil, false
	}
	r.log.Debug().Int("rank", rank).Str("pane", paneID).Str("target", t.ID()).Msg("focus resolved")
	return t, true
}

func (r *Resolver) tryFocus(t Target) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("focus target panicked: %v", rec)
		}
	}()
	return t.Focus()
}
