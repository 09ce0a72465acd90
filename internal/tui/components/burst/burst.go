// Package burst draws the celebration that plays when the card opens:
// a balloon and a party face rising from the middle of the screen with a
// spray of braille confetti.
package burst

import (
	"image/color"
	"math"
	"time"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/bday/internal/tui/anim"
	"github.com/garrettladley/bday/internal/tui/content"
	"github.com/garrettladley/bday/internal/tui/scene"
	"github.com/garrettladley/bday/internal/tui/theme"
)

const (
	Rise = 1500 * time.Millisecond

	riseRows  = 10
	startDrop = 2 // rows below center where the sprites start

	confettiCols = 30
	confettiRows = 10
	particles    = 40
)

type Sprite struct {
	Glyph string
	Delay time.Duration
}

var Sprites = []Sprite{
	{Glyph: content.Balloon},
	{Glyph: content.Partier, Delay: 200 * time.Millisecond},
}

// Lift is how many rows the sprite has risen. A sprite waiting out its
// delay sits at the start line; one that finished is gone.
func (s Sprite) Lift(elapsed time.Duration) (rows float64, visible bool) {
	p := anim.Progress(anim.Delayed(elapsed, s.Delay), Rise)
	if p >= 1 {
		return riseRows, false
	}
	return anim.EaseOut(p) * riseRows, true
}

// Paper reports the color underneath a cell, so the burst's cells blend
// into whatever they are drawn over.
type Paper func(x, y int) color.Color

type Burst struct {
	Width   int
	Height  int
	Elapsed time.Duration
	Paper   Paper
}

func New(width, height int, elapsed time.Duration, paper Paper) Burst {
	if paper == nil {
		paper = func(int, int) color.Color { return theme.ColorWhite }
	}
	return Burst{Width: width, Height: height, Elapsed: elapsed, Paper: paper}
}

func (b Burst) origin() (x, y int) {
	return b.Width / 2, b.Height/2 + startDrop
}

func (b Burst) Layers() []*lipgloss.Layer {
	if b.Width <= 0 || b.Height <= 0 {
		return nil
	}

	var layers []*lipgloss.Layer
	layers = append(layers, b.confettiLayers()...)

	ox, oy := b.origin()
	x := ox - spritesWidth()/2
	for _, s := range Sprites {
		w := lipgloss.Width(s.Glyph)
		lift, ok := s.Lift(b.Elapsed)
		if ok {
			y := oy - int(math.Round(lift))
			if y >= 0 && y < b.Height && x >= 0 && x+w <= b.Width {
				glyph := lipgloss.NewStyle().Background(b.Paper(x, y)).Render(s.Glyph)
				layers = append(layers, lipgloss.NewLayer(glyph).X(x).Y(y).Z(scene.ZBurst))
			}
		}
		x += w
	}
	return layers
}

func spritesWidth() int {
	var w int
	for _, s := range Sprites {
		w += lipgloss.Width(s.Glyph)
	}
	return w
}

var confettiColors = []color.Color{
	theme.ColorPink,
	theme.ColorGold,
	theme.ColorPurple,
	theme.ColorLavender,
}

// confettiLayers emits one layer per non-empty cell. Layers clear the area
// they cover, so blank cells are never drawn.
func (b Burst) confettiLayers() []*lipgloss.Layer {
	grid := Confetti(anim.Progress(b.Elapsed, Rise))
	if grid == nil {
		return nil
	}

	ox, oy := b.origin()
	left := ox - confettiCols/2
	top := oy - confettiRows*3/4

	var layers []*lipgloss.Layer
	for r, row := range grid {
		for c, cell := range row {
			if cell == emptyBraille {
				continue
			}
			x, y := left+c, top+r
			if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
				continue
			}
			glyph := lipgloss.NewStyle().
				Foreground(confettiColors[(r+c)%len(confettiColors)]).
				Background(b.Paper(x, y)).
				Render(string(cell))
			layers = append(layers, lipgloss.NewLayer(glyph).X(x).Y(y).Z(scene.ZBurst))
		}
	}
	return layers
}

const emptyBraille rune = '⠀'

// Confetti rasterizes the particle spray at progress p of the rise. It
// returns nil once the rise is over.
func Confetti(p float64) [][]rune {
	if p >= 1 {
		return nil
	}

	var (
		canvas = drawille.NewCanvas()
		w      = confettiCols * 2
		h      = confettiRows * 4
		ox     = float64(w) / 2
		oy     = float64(h) * 3 / 4
		reach  = float64(h) * 0.7
		eased  = anim.EaseOut(p)
	)

	for i := range particles {
		// golden-ratio spacing keeps the spray even without randomness
		spread := frac(float64(i)*0.618034) - 0.5
		speed := 0.55 + 0.45*frac(float64(i)*0.381966)
		angle := -math.Pi/2 + spread*math.Pi*0.8

		r := speed * eased * reach
		x := ox + math.Cos(angle)*r*1.5
		y := oy + math.Sin(angle)*r + p*p*reach*0.5

		xi, yi := int(math.Round(x)), int(math.Round(y))
		if xi < 0 || xi >= w || yi < 0 || yi >= h {
			continue
		}
		canvas.Set(xi, yi)
	}

	rows := canvas.Rows(0, 0, w, h)
	grid := make([][]rune, confettiRows)
	for i := range grid {
		line := make([]rune, confettiCols)
		for j := range line {
			line[j] = emptyBraille
		}
		if i < len(rows) {
			for j, r := range []rune(rows[i]) {
				if j < confettiCols && r > emptyBraille && r <= 0x28FF {
					line[j] = r
				}
			}
		}
		grid[i] = line
	}
	return grid
}

func frac(v float64) float64 {
	return v - math.Floor(v)
}
