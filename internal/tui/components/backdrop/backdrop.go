// Package backdrop draws the page behind every screen: a solid or vertical
// gradient fill and the drifting background emojis.
package backdrop

import (
	"image/color"
	"math"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/bday/internal/tui/anim"
	"github.com/garrettladley/bday/internal/tui/content"
	"github.com/garrettladley/bday/internal/tui/scene"
	"github.com/garrettladley/bday/internal/tui/theme"
)

// Anchor positions a floater along one axis: Frac of the extent plus Offset
// cells, measured from the far edge when FromEnd is set.
type Anchor struct {
	Frac    float64
	Offset  int
	FromEnd bool
}

func (a Anchor) Resolve(extent, size int) int {
	p := int(math.Round(a.Frac*float64(extent))) + a.Offset
	if a.FromEnd {
		p = extent - p - size
	}
	return p
}

type Motion struct {
	Period    time.Duration
	Direction anim.Direction
	Ease      anim.Easing
}

var (
	drift1 = Motion{Period: 15 * time.Second, Direction: anim.Alternate, Ease: anim.EaseInOut}
	drift2 = Motion{Period: 18 * time.Second, Direction: anim.AlternateReverse, Ease: anim.EaseInOut}
	drift3 = Motion{Period: 12 * time.Second, Direction: anim.Alternate, Ease: anim.Linear}
)

// drift is a fraction of the viewport per axis.
var drift = []anim.Stop{
	{At: 0, Value: 0},
	{At: 0.33, Value: 0.15},
	{At: 0.66, Value: -0.10},
	{At: 1, Value: 0},
}

type Floater struct {
	Glyph  string
	X, Y   Anchor
	Motion Motion
}

// Offset is the floater's displacement from its anchor, as fractions of
// the viewport.
func (f Floater) Offset(elapsed time.Duration) (dx, dy float64) {
	p := anim.Loop(elapsed, f.Motion.Period, f.Motion.Direction)
	tr := anim.Track{Stops: drift, Ease: f.Motion.Ease}
	v := tr.Sample(p)
	return v, v
}

// Position is the floater's top-left cell, kept inside the viewport.
func (f Floater) Position(width, height int, elapsed time.Duration) (x, y int) {
	size := lipgloss.Width(f.Glyph)
	dx, dy := f.Offset(elapsed)
	x = f.X.Resolve(width, size) + int(math.Round(dx*float64(width)))
	y = f.Y.Resolve(height, 1) + int(math.Round(dy*float64(height)))
	return scene.Clamp(x, size, width), scene.Clamp(y, 1, height)
}

// Floaters are the five background emojis shared by every screen.
var Floaters = []Floater{
	{Glyph: content.Star, X: Anchor{Frac: 0.25}, Y: Anchor{Frac: 0.25}, Motion: drift1},
	{Glyph: content.Gift, X: Anchor{Frac: 0.25, FromEnd: true}, Y: Anchor{Frac: 0.75}, Motion: drift2},
	{Glyph: content.Party, X: Anchor{Offset: 4, FromEnd: true}, Y: Anchor{Frac: 0.2}, Motion: drift3},
	{Glyph: content.Sparkle, X: Anchor{Offset: 2}, Y: Anchor{Offset: 2, FromEnd: true}, Motion: drift1},
	{Glyph: content.Partier, X: Anchor{Offset: 4}, Y: Anchor{Frac: 0.5}, Motion: drift2},
}

type Backdrop struct {
	Width   int
	Height  int
	Elapsed time.Duration
	rows    []color.Color
}

func Solid(width, height int, c color.Color, elapsed time.Duration) Backdrop {
	rows := make([]color.Color, max(height, 0))
	for i := range rows {
		rows[i] = c
	}
	return Backdrop{Width: width, Height: height, Elapsed: elapsed, rows: rows}
}

func Gradient(width, height int, from, to color.Color, elapsed time.Duration) Backdrop {
	return Backdrop{
		Width:   width,
		Height:  height,
		Elapsed: elapsed,
		rows:    theme.Gradient(height, from, to),
	}
}

// RowColor is the fill at row y. Out of range rows take the nearest edge.
func (b Backdrop) RowColor(y int) color.Color {
	if len(b.rows) == 0 {
		return theme.ColorWhite
	}
	return b.rows[min(max(y, 0), len(b.rows)-1)]
}

func (b Backdrop) Layers() []*lipgloss.Layer {
	if b.Width <= 0 || b.Height <= 0 {
		return nil
	}

	blank := strings.Repeat(" ", b.Width)
	lines := make([]string, b.Height)
	for y := range lines {
		lines[y] = lipgloss.NewStyle().Background(b.RowColor(y)).Render(blank)
	}

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(strings.Join(lines, "\n")).Z(scene.ZBackground),
	}
	for _, f := range Floaters {
		x, y := f.Position(b.Width, b.Height, b.Elapsed)
		glyph := lipgloss.NewStyle().Background(b.RowColor(y)).Render(f.Glyph)
		layers = append(layers, lipgloss.NewLayer(glyph).X(x).Y(y).Z(scene.ZFloaters))
	}
	return layers
}
