package countdown

import (
	"image/color"
	"math"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/bday/internal/tui/anim"
	"github.com/garrettladley/bday/internal/tui/components/ring"
	"github.com/garrettladley/bday/internal/tui/content"
	"github.com/garrettladley/bday/internal/tui/scene"
	"github.com/garrettladley/bday/internal/tui/theme"
)

const PopDuration = 500 * time.Millisecond

var (
	popEase = anim.CubicBezier(0.175, 0.885, 0.32, 1.275)

	popScale = anim.Track{
		Stops: []anim.Stop{{At: 0, Value: 0.5}, {At: 0.8, Value: 1.05}, {At: 1, Value: 1}},
		Ease:  popEase,
	}
	popOpacity = anim.Track{
		Stops: []anim.Stop{{At: 0, Value: 0}, {At: 0.8, Value: 1}, {At: 1, Value: 1}},
		Ease:  popEase,
	}
)

type Props struct {
	Width     int
	Height    int
	Remaining int
	Total     int
	Elapsed   time.Duration // since the countdown began
	Paper     color.Color
}

// Pop returns the pop-in's scale and opacity. Opacity is clamped since the
// overshooting curve can carry it past the ends.
func Pop(elapsed time.Duration) (scale, opacity float64) {
	p := anim.Progress(elapsed, PopDuration)
	return popScale.Sample(p), min(max(popOpacity.Sample(p), 0), 1)
}

func Panel(t theme.Theme, p Props) string {
	scale, opacity := Pop(p.Elapsed)

	var (
		paper  = theme.Mix(p.Paper, t.Background(), opacity)
		fade   = func(c color.Color) color.Color { return theme.Mix(p.Paper, c, opacity) }
		border = fade(theme.ColorPurple)
		pad    = min(max(int(math.Round(4*scale)), 1), 5)
	)

	heading := lipgloss.NewStyle().
		Foreground(fade(theme.ColorPurpleDeep)).
		Background(paper).
		Bold(true).
		Render(content.CountdownTitle)

	r := ring.New(p.Remaining, p.Total)
	r.Color = fade(theme.ColorPurple)
	r.Track = fade(theme.ColorShadow)
	r.Text = fade(theme.ColorPurpleInk)
	r.Paper = paper

	clock := "  "
	if opacity >= 0.5 {
		clock = content.Clock
	}
	dial := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Background(paper).Render(clock+"  "),
		r.Render(),
	)

	hint := lipgloss.NewStyle().
		Foreground(fade(theme.ColorDim)).
		Background(paper).
		Render(content.CountdownHint)
	gap := lipgloss.NewStyle().Background(paper).Render("")

	return t.Card(border).
		Background(paper).
		BorderBackground(paper).
		Padding(1, pad).
		Render(lipgloss.JoinVertical(lipgloss.Center, heading, gap, dial, gap, hint))
}

func Layers(t theme.Theme, p Props) []*lipgloss.Layer {
	panel := Panel(t, p)
	return []*lipgloss.Layer{
		lipgloss.NewLayer(panel).
			ID(scene.IDPanel).
			X(scene.Center(p.Width, lipgloss.Width(panel))).
			Y(scene.Center(p.Height, lipgloss.Height(panel))).
			Z(scene.ZPanel),
	}
}
