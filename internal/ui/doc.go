// Package ui is the AgriPredict terminal dashboard, built on Bubble Tea.
//
// Core abstractions:
//   - AppModel: the session; owns tabs, charts, notices and modals
//   - View: a page or modal with its own init, update and view (Elm-style)
//   - Regions: the named render areas handlers read from and write into
//   - ChartSet: one chart per dashboard tab, created at startup
//   - OverlayStack: modals drawn over the current section
//   - KeybindRegistry: typed command bindings with an SPC leader
//   - Debouncer: cancel-and-replace timers for resize and redraw
package ui
