// Package retroui is a responder-chain terminal UI toolkit.
//
// It models a desktop-style widget hierarchy (views, controls, panels)
// on a character grid: keyboard events bubble through a tree of views
// until consumed, focus moves between controls with Ctrl-modified keys,
// and a double-buffered cell grid turns each frame into minimal
// terminal writes.
package retroui
