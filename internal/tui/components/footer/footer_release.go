//go:build release

package footer

import "charm.land/lipgloss/v2"

func (Footer) leftContent(lipgloss.Style) string {
	return ""
}
