// Package layout owns pane geometry for the tiling dashboard.
//
// Allowed here:
// - preset selection (pane count + mode -> grid cells and track ratios)
// - the tiling engine's pane list and derived geometry
// - directional adjacency queries over that geometry
//
// Not allowed here:
// - focus state (core/focus owns it)
// - rendering (core/widgets turns cells into screen regions)
package layout
