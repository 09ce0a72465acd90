// Package footer draws the bottom line of the main screen.
package footer

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

type Footer struct {
	rightContent string
	width        int
	padding      int
	paper        color.Color
	ink          color.Color
}

func New(rightContent string, width int, paper, ink color.Color) Footer {
	return Footer{
		rightContent: rightContent,
		width:        width,
		padding:      2,
		paper:        paper,
		ink:          ink,
	}
}

func (f Footer) Render() string {
	base := lipgloss.NewStyle().Background(f.paper).Foreground(f.ink)

	leftContent := f.leftContent(base)
	right := base.Render(f.rightContent)

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(right)
	spacerWidth := max(f.width-leftWidth-rightWidth-(f.padding*2), 0)

	return base.
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(leftContent + base.Render(strings.Repeat(" ", spacerWidth)) + right)
}
