// Package ring draws the countdown as a draining braille ring.
package ring

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/bday/internal/tui/scene"
	"github.com/garrettladley/bday/internal/tui/theme"
)

const (
	// braille is 2x4 dots per cell
	dotsWidth  = 32 // 16 cells
	dotsHeight = 32 // 8 rows
	thickness  = 3.0

	// 0° is 3 o'clock and angles grow clockwise in screen space
	startAngle = 270.0
)

type Ring struct {
	Remaining int
	Total     int
	Color     color.Color // remaining portion
	Track     color.Color // elapsed portion
	Text      color.Color
	Paper     color.Color // cell background
}

func New(remaining, total int) Ring {
	return Ring{
		Remaining: remaining,
		Total:     total,
		Color:     theme.ColorPurple,
		Track:     theme.ColorShadow,
		Text:      theme.ColorPurpleInk,
		Paper:     theme.ColorWhite,
	}
}

func (r Ring) Fraction() float64 {
	if r.Total <= 0 {
		return 0
	}
	return math.Min(math.Max(float64(r.Remaining)/float64(r.Total), 0), 1)
}

func (r Ring) Render() string {
	track := rasterize(1)
	fill := rasterize(r.Fraction())

	arc := paint(track, fill,
		lipgloss.NewStyle().Foreground(r.Track).Background(r.Paper),
		lipgloss.NewStyle().Foreground(r.Color).Background(r.Paper),
	)

	value := lipgloss.NewStyle().
		Foreground(r.Text).
		Background(r.Paper).
		Bold(true).
		Render(fmt.Sprintf("%ds", r.Remaining))

	var (
		w = lipgloss.Width(arc)
		h = lipgloss.Height(arc)
	)
	center := lipgloss.NewLayer(value).
		X((w - lipgloss.Width(value)) / 2).
		Y(h / 2).
		Z(1)

	return scene.Render(lipgloss.NewLayer(arc), center)
}

// rasterize returns one rune row per cell row of an annulus sector that
// starts at 12 o'clock and sweeps clockwise through fraction of a turn.
func rasterize(fraction float64) [][]rune {
	canvas := drawille.NewCanvas()

	var (
		cx    = float64(dotsWidth-1) / 2
		cy    = float64(dotsHeight-1) / 2
		outer = float64(dotsWidth)/2 - 0.5
		inner = outer - thickness
		sweep = fraction * 360
	)

	if sweep > 0 {
		for y := range dotsHeight {
			for x := range dotsWidth {
				dx, dy := float64(x)-cx, float64(y)-cy
				dist := math.Hypot(dx, dy)
				if dist > outer || dist < inner {
					continue
				}
				if inSweep(math.Atan2(dy, dx)*180/math.Pi, sweep) {
					canvas.Set(x, y)
				}
			}
		}
	}

	var (
		cols = dotsWidth / 2
		rows = canvas.Rows(0, 0, dotsWidth, dotsHeight)
		grid = make([][]rune, dotsHeight/4)
	)
	for i := range grid {
		line := make([]rune, cols)
		for j := range line {
			line[j] = emptyBraille
		}
		if i < len(rows) {
			for j, r := range []rune(rows[i]) {
				if j < cols && isBraille(r) {
					line[j] = r
				}
			}
		}
		grid[i] = line
	}
	return grid
}

// inSweep reports whether angle (degrees, -180..180) lies within sweep
// degrees clockwise of startAngle.
func inSweep(angle, sweep float64) bool {
	if sweep >= 360 {
		return true
	}
	offset := math.Mod(angle-startAngle+720, 360)
	return offset <= sweep
}

const emptyBraille rune = '⠀'

func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// paint colors each cell: cells with remaining dots take the fill style and
// carry the union of both layers' dots, the rest show the track.
func paint(track, fill [][]rune, trackStyle, fillStyle lipgloss.Style) string {
	lines := make([]string, len(track))
	for i, row := range track {
		var b strings.Builder
		for j, t := range row {
			f := emptyBraille
			if i < len(fill) && j < len(fill[i]) {
				f = fill[i][j]
			}
			if f != emptyBraille {
				b.WriteString(fillStyle.Render(string(t | f)))
				continue
			}
			if t == emptyBraille {
				b.WriteString(trackStyle.Render(" "))
				continue
			}
			b.WriteString(trackStyle.Render(string(t)))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}
