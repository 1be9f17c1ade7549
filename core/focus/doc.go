// Package focus owns keyboard-focus state for the tiling dashboard.
//
// Allowed here:
// - the focus controller state machine (which pane holds focus)
// - the fallback resolver that guarantees focus never becomes unrecoverable
// - deferred focus for content that has not finished loading
//
// Not allowed here:
// - pane geometry (core/layout answers adjacency queries)
// - widget rendering or key routing
package focus
