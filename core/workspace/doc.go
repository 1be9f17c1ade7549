// Package workspace ties the layout engine and the focus controller to
// live pane content.
//
// Allowed here:
// - pane lifecycle (open, close, content loading), workspace-level focus
//   wiring, grid composition of pane views
//
// Not allowed here:
// - preset geometry math, focus fallback policy, persistence, key bindings
package workspace
