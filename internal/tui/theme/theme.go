package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

type Theme struct {
	background color.Color
	foreground color.Color
}

func New() Theme {
	var t Theme

	t.background = ColorWhite
	t.foreground = ColorInk

	return t
}

func (t Theme) Background() color.Color {
	return t.background
}

// Card is the white rounded panel every screen centers its content in.
func (t Theme) Card(border color.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.background).
		Foreground(t.foreground).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		BorderBackground(t.background).
		Padding(1, 4).
		Align(lipgloss.Center)
}

func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorDim).
		Background(t.background)
}

func (t Theme) Button() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(ColorPurple).
		Padding(1, 4).
		Bold(true)
}

// Gradient returns one color per row, top to bottom.
func Gradient(rows int, from, to color.Color) []color.Color {
	if rows <= 0 {
		return nil
	}
	if rows == 1 {
		return []color.Color{from}
	}
	return lipgloss.Blend1D(rows, from, to)
}

// Mix blends from a toward b by t in [0, 1]. Terminals have no alpha, so
// fades and opacity are drawn as a mix with whatever sits underneath.
func Mix(a, b color.Color, t float64) color.Color {
	ca, okA := colorful.MakeColor(a)
	cb, okB := colorful.MakeColor(b)
	switch {
	case !okA && !okB:
		return a
	case !okA:
		return b
	case !okB:
		return a
	}
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return ca.BlendLab(cb, t).Clamped()
}
