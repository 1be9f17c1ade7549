// Package widgets contains the built-in pane contents: clock, system
// info, notes, todos, and a file browser. Each satisfies
// workspace.PaneContent and registers its focusable parts as
// focus.Targets.
//
// Not allowed here:
// - layout geometry, focus policy, or app-wide key routing
package widgets
