package ring

import (
	"math/bits"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func dots(grid [][]rune) int {
	var n int
	for _, row := range grid {
		for _, r := range row {
			n += bits.OnesCount32(uint32(r - emptyBraille))
		}
	}
	return n
}

func TestFraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		remaining int
		total     int
		want      float64
	}{
		{name: "full", remaining: 10, total: 10, want: 1},
		{name: "half", remaining: 5, total: 10, want: 0.5},
		{name: "empty", remaining: 0, total: 10, want: 0},
		{name: "clamped high", remaining: 12, total: 10, want: 1},
		{name: "zero total", remaining: 3, total: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := New(tt.remaining, tt.total).Fraction(); got != tt.want {
				t.Errorf("Fraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInSweep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		angle float64
		sweep float64
		want  bool
	}{
		{name: "twelve o'clock starts the sweep", angle: -90, sweep: 1, want: true},
		{name: "three o'clock in a quarter", angle: 0, sweep: 90, want: true},
		{name: "six o'clock outside a quarter", angle: 90, sweep: 90, want: false},
		{name: "nine o'clock inside three quarters", angle: 180, sweep: 270, want: true},
		{name: "just left of twelve outside three quarters", angle: -100, sweep: 270, want: false},
		{name: "full turn", angle: -100, sweep: 360, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := inSweep(tt.angle, tt.sweep); got != tt.want {
				t.Errorf("inSweep(%v, %v) = %v, want %v", tt.angle, tt.sweep, got, tt.want)
			}
		})
	}
}

func TestRasterizeDrains(t *testing.T) {
	t.Parallel()

	full := dots(rasterize(1))
	half := dots(rasterize(0.5))
	empty := dots(rasterize(0))

	if full == 0 {
		t.Fatal("full ring has no dots")
	}
	if empty != 0 {
		t.Errorf("empty ring has %d dots, want 0", empty)
	}
	if half <= full/3 || half >= full*2/3 {
		t.Errorf("half ring has %d of %d dots, want roughly half", half, full)
	}
}

func TestRenderShape(t *testing.T) {
	t.Parallel()

	out := New(7, 10).Render()
	lines := strings.Split(ansi.Strip(out), "\n")

	if len(lines) != dotsHeight/4 {
		t.Fatalf("Render() has %d lines, want %d", len(lines), dotsHeight/4)
	}
	if w := lipgloss.Width(out); w != dotsWidth/2 {
		t.Errorf("Render() width = %d, want %d", w, dotsWidth/2)
	}
	if !strings.Contains(lines[dotsHeight/8], "7s") {
		t.Errorf("middle line %q does not show the remaining seconds", lines[dotsHeight/8])
	}
}
