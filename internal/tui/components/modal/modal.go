// Package modal draws the greeting card overlay: a full-screen backdrop, the
// card, and its close button, each as a named layer for hit testing.
package modal

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/bday/internal/tui/content"
	"github.com/garrettladley/bday/internal/tui/scene"
	"github.com/garrettladley/bday/internal/tui/theme"
)

const (
	maxTextWidth = 40
	minTextWidth = 12
	// border plus horizontal padding on each side
	chrome = 1 + 4
)

type Modal struct {
	Width  int
	Height int
	theme  theme.Theme
}

func New(t theme.Theme, width, height int) Modal {
	return Modal{Width: width, Height: height, theme: t}
}

func (m Modal) textWidth() int {
	return max(min(maxTextWidth, m.Width-2*chrome-2), minTextWidth)
}

// Card renders the greeting card itself.
func (m Modal) Card() string {
	var (
		w     = m.textWidth()
		paper = m.theme.Background()
		block = lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Background(paper)
	)

	icon := block.Render(content.CardIcon)
	heading := block.
		Foreground(theme.ColorPinkDeep).
		Bold(true).
		Render(content.CardHeading)
	body := block.
		Foreground(theme.ColorInk).
		Italic(true).
		Render(content.CardBody)
	closing := block.
		Foreground(theme.ColorGold).
		Bold(true).
		Render(content.CardClosing + "\n\n" + content.CardSignOff)
	gap := block.Render("")

	return m.theme.Card(theme.ColorPink).Render(
		lipgloss.JoinVertical(lipgloss.Center, icon, gap, heading, gap, body, gap, closing),
	)
}

func (m Modal) Layers() []*lipgloss.Layer {
	if m.Width <= 0 || m.Height <= 0 {
		return nil
	}

	blank := strings.Repeat(" ", m.Width)
	rows := make([]string, m.Height)
	for i := range rows {
		rows[i] = blank
	}
	backdrop := lipgloss.NewStyle().
		Background(theme.ColorBackdrop).
		Render(strings.Join(rows, "\n"))

	card := m.Card()
	var (
		cw = lipgloss.Width(card)
		ch = lipgloss.Height(card)
		cx = scene.Center(m.Width, cw)
		cy = scene.Center(m.Height, ch)
	)

	closeGlyph := m.theme.Muted().Bold(true).Render(content.CloseGlyph)

	return []*lipgloss.Layer{
		lipgloss.NewLayer(backdrop).ID(scene.IDBackdrop).Z(scene.ZBackdrop),
		lipgloss.NewLayer(card).ID(scene.IDCard).X(cx).Y(cy).Z(scene.ZCard),
		// inside the top-right corner, clear of the border
		lipgloss.NewLayer(closeGlyph).
			ID(scene.IDClose).
			X(cx + cw - 3).
			Y(cy + 1).
			Z(scene.ZClose),
	}
}
