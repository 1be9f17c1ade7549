// Package tabs adapts workspaces to the app's tab contract.
//
// Allowed here:
// - per-tab key policy (directional focus, pane close, jump keys)
// - translation between app messages and workspace operations
//
// Not allowed here:
// - shared app routing logic (core) or low-level drawing primitives (core/widgets)
package tabs
