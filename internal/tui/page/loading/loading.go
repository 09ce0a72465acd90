package loading

import (
	"image/color"
	"math"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/bday/internal/tui/anim"
	"github.com/garrettladley/bday/internal/tui/components/progress"
	"github.com/garrettladley/bday/internal/tui/content"
	"github.com/garrettladley/bday/internal/tui/scene"
	"github.com/garrettladley/bday/internal/tui/theme"
)

const (
	FloatPeriod = 2500 * time.Millisecond

	maxTextWidth = 30
)

var float = anim.Track{
	Stops: []anim.Stop{
		{At: 0, Value: 0},
		{At: 0.5, Value: -1},
		{At: 1, Value: 0},
	},
	Ease: anim.EaseInOut,
}

type Props struct {
	Width   int
	Height  int
	Elapsed time.Duration // since mount
	Paper   color.Color   // page background
}

// Lift is the balloon's offset in rows, 0 or negative.
func Lift(elapsed time.Duration) int {
	return int(math.Round(float.Sample(anim.Loop(elapsed, FloatPeriod, anim.Normal))))
}

func Panel(t theme.Theme, p Props) string {
	var (
		w     = max(min(maxTextWidth, p.Width-12), 10)
		paper = t.Background()
		block = lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Background(paper)
	)

	title := block.
		Foreground(theme.ColorPinkDeep).
		Bold(true).
		Render(content.LoadingTitle)
	icons := block.Render(content.Heart + "   " + content.Party + "   " + content.Cake)
	bar := progress.New(w, p.Elapsed).Render()
	gap := block.Render("")

	return t.Card(theme.ColorPink).Render(
		lipgloss.JoinVertical(lipgloss.Center, gap, title, gap, icons, gap, bar),
	)
}

func Layers(t theme.Theme, p Props) []*lipgloss.Layer {
	panel := Panel(t, p)
	var (
		pw = lipgloss.Width(panel)
		ph = lipgloss.Height(panel)
		px = scene.Center(p.Width, pw)
		py = scene.Center(p.Height, ph)
	)

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(panel).ID(scene.IDPanel).X(px).Y(py).Z(scene.ZPanel),
	}

	// the balloon hovers over the card's top edge
	bw := lipgloss.Width(content.Balloon)
	by := py - 1 + Lift(p.Elapsed)
	if by >= 0 {
		balloon := lipgloss.NewStyle().Background(p.Paper).Render(content.Balloon)
		layers = append(layers, lipgloss.NewLayer(balloon).
			X(scene.Center(p.Width, bw)).
			Y(by).
			Z(scene.ZControl))
	}
	return layers
}
