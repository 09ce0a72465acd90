package celebrate

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/bday/internal/tui/components/footer"
	"github.com/garrettladley/bday/internal/tui/content"
	"github.com/garrettladley/bday/internal/tui/scene"
	"github.com/garrettladley/bday/internal/tui/theme"
)

const (
	maxTextWidth = 44
	hints        = "enter open · esc close · q quit"
)

type Props struct {
	Width  int
	Height int
	// Paper is the page color at row y.
	Paper func(y int) color.Color
}

func (p Props) paper(y int) color.Color {
	if p.Paper == nil {
		return theme.ColorWhite
	}
	return p.Paper(y)
}

func Button(t theme.Theme, width int) string {
	label := content.OpenButton
	style := t.Button().Align(lipgloss.Center)
	if full := lipgloss.Width(style.Render(label)); full > width {
		style = style.Width(width)
	}
	return style.Render(label)
}

// Panel renders the main card with a blank slot where the button goes. The
// button is drawn as its own layer so clicks on it can be told apart.
func Panel(t theme.Theme, width int) (panel string, slot int) {
	var (
		w     = max(min(maxTextWidth, width-12), 12)
		paper = t.Background()
		block = lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Background(paper)
	)

	headline := block.
		Foreground(theme.ColorPinkDeep).
		Bold(true).
		Render(content.Headline)
	// pad the art to a rectangle first so centering keeps its lines aligned
	cake := block.Render(lipgloss.NewStyle().
		Foreground(theme.ColorPink).
		Background(paper).
		Render(content.CakeArt))
	hint := block.
		Foreground(theme.ColorDim).
		Render(hints)
	gap := block.Render("")

	button := Button(t, w)
	placeholder := block.Render(strings.TrimSuffix(strings.Repeat("\n", lipgloss.Height(button)), "\n"))

	body := lipgloss.JoinVertical(lipgloss.Center, headline, gap, cake, gap)
	// top border plus top padding
	slot = 2 + lipgloss.Height(body)

	return t.Card(theme.ColorPink).Render(
		lipgloss.JoinVertical(lipgloss.Center, body, placeholder, gap, hint),
	), slot
}

func Layers(t theme.Theme, p Props) []*lipgloss.Layer {
	panel, slot := Panel(t, p.Width)
	var (
		pw = lipgloss.Width(panel)
		ph = lipgloss.Height(panel)
		px = scene.Center(p.Width, pw)
		py = scene.Center(p.Height-1, ph)
	)

	button := Button(t, max(min(maxTextWidth, p.Width-12), 12))
	bx := px + scene.Center(pw, lipgloss.Width(button))

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(panel).ID(scene.IDPanel).X(px).Y(py).Z(scene.ZPanel),
		lipgloss.NewLayer(button).ID(scene.IDButton).X(bx).Y(py + slot).Z(scene.ZControl),
	}

	if p.Height > 0 {
		bottom := p.Height - 1
		f := footer.New(content.Footer, p.Width, p.paper(bottom), theme.ColorWhite).Render()
		layers = append(layers, lipgloss.NewLayer(f).Y(bottom).Z(scene.ZControl))
	}
	return layers
}
