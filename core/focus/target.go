package focus

// Target is anything that can receive keyboard focus: a concrete widget
// inside a pane, the pane's own container, or the application root.
type Target interface {
	ID() string
	// CanFocus reports whether the target accepts focus at all.
	CanFocus() bool
	// Loaded reports whether the target's content is constructed and
	// attachable. Focusing an unloaded target is deferred, not failed.
	Loaded() bool
	Focus() error
	Blur()
}

// Handle is a generation-tagged reference to a target. Pane content can be
// torn down and rebuilt at any time; a handle whose generation no longer
// matches the pane's current generation is treated as invalid instead of
// relying on GC weak-reference semantics.
type Handle struct {
	Target Target
	Gen    uint64
}

// Valid reports whether the handle still points at live content.
func (h Handle) Valid(currentGen uint64) bool {
	return h.Target != nil && h.Gen == currentGen
}

// Source supplies the resolver's fallback candidates for a pane.
type Source interface {
	// FocusTargets returns the pane's focusable descendants in breadth-first,
	// left-to-right registration order.
	FocusTargets(paneID string) []Target
	// Container returns the pane's own container target, or nil if the pane
	// is gone.
	Container(paneID string) Target
	// Root returns the application root target. It is the absolute last
	// resort and is assumed to always accept focus.
	Root() Target
}
