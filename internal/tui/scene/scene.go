// Package scene flattens positioned lipgloss layers into a frame.
package scene

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render composes layers by z-index and returns the frame with plain "\n"
// line breaks, so the result can be nested inside other lipgloss styles.
func Render(layers ...*lipgloss.Layer) string {
	return Flatten(lipgloss.NewCanvas(layers...))
}

func Flatten(c *lipgloss.Canvas) string {
	return strings.ReplaceAll(c.Render(), "\r\n", "\n")
}

// Center returns the offset that centers inner within outer.
func Center(outer, inner int) int {
	return max((outer-inner)/2, 0)
}

// Clamp keeps a span of size starting at pos inside [0, limit).
func Clamp(pos, size, limit int) int {
	return max(min(pos, limit-size), 0)
}

// Stacking order, bottom to top.
const (
	ZBackground = iota
	ZFloaters
	ZPanel
	ZControl
	ZBackdrop
	ZBurst
	ZCard
	ZClose
)

// Interactive layer IDs.
const (
	IDButton   = "button"
	IDBackdrop = "backdrop"
	IDCard     = "card"
	IDClose    = "close"
	IDPanel    = "panel"
)
