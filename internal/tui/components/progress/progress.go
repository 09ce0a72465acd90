// Package progress draws the loading screen's pulsing bar.
package progress

import (
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/bday/internal/tui/anim"
	"github.com/garrettladley/bday/internal/tui/theme"
)

// Period of one pulse. It runs on its own clock and does not track the
// loading deadline.
const Period = 5 * time.Second

var pulse = anim.Track{
	Stops: []anim.Stop{
		{At: 0, Value: 1},
		{At: 0.5, Value: 0.5},
		{At: 1, Value: 1},
	},
	Ease: anim.CubicBezier(0.4, 0, 0.6, 1),
}

type Bar struct {
	Width   int
	Elapsed time.Duration
	Color   color.Color
	Track   color.Color
	Paper   color.Color
}

func New(width int, elapsed time.Duration) Bar {
	return Bar{
		Width:   width,
		Elapsed: elapsed,
		Color:   theme.ColorPink,
		Track:   theme.ColorPinkTrack,
		Paper:   theme.ColorWhite,
	}
}

// Opacity of the bar over its track, in [0.5, 1].
func (b Bar) Opacity() float64 {
	return pulse.Sample(anim.Loop(b.Elapsed, Period, anim.Normal))
}

func (b Bar) Render() string {
	if b.Width <= 0 {
		return ""
	}
	fill := theme.Mix(b.Track, b.Color, b.Opacity())
	return lipgloss.NewStyle().
		Foreground(fill).
		Background(b.Paper).
		Render(strings.Repeat("━", b.Width))
}
