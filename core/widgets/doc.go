// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, the cell
//   grid compositor, popup overlay)
//
// Not allowed here:
// - key handling, focus state, layout preset policy, or workspace logic
package widgets
