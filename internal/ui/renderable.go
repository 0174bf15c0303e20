// Package ui holds the rendering contract shared by Wisp components and the
// Bubble Tea models that host them.
package ui

// Renderable is anything that can render itself to a terminal string.
type Renderable interface {
	View() string
}
