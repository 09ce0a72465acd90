//go:build !release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/bday/internal/tui/theme"
	"github.com/garrettladley/bday/internal/version"
)

func (f Footer) leftContent(base lipgloss.Style) string {
	return base.Foreground(theme.ColorPurpleInk).Render(version.Label(version.Get()))
}
