package loading

import (
	"strings"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/garrettladley/bday/internal/tui/content"
	"github.com/garrettladley/bday/internal/tui/scene"
	"github.com/garrettladley/bday/internal/tui/theme"
)

func TestLift(t *testing.T) {
	t.Parallel()

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{elapsed: 0, want: 0},
		{elapsed: FloatPeriod / 2, want: -1},
		{elapsed: FloatPeriod, want: 0},
		{elapsed: FloatPeriod * 3 / 2, want: -1},
	}

	for _, tt := range tests {
		if got := Lift(tt.elapsed); got != tt.want {
			t.Errorf("Lift(%v) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestLayers(t *testing.T) {
	t.Parallel()

	props := Props{Width: 80, Height: 24, Elapsed: time.Second, Paper: theme.ColorPinkWash}
	layers := Layers(theme.New(), props)
	if len(layers) != 2 {
		t.Fatalf("len(Layers()) = %d, want panel and balloon", len(layers))
	}

	out := ansi.Strip(scene.Render(layers...))
	flat := strings.Join(strings.Fields(strings.ReplaceAll(out, "│", " ")), " ")
	for _, want := range []string{content.LoadingTitle, content.Balloon, content.Cake} {
		if !strings.Contains(flat, want) {
			t.Errorf("loading screen does not show %q", want)
		}
	}
}

func TestBalloonHiddenWithoutRoom(t *testing.T) {
	t.Parallel()

	t0 := theme.New()
	h := lipgloss.Height(Panel(t0, Props{Width: 40}))

	// the panel fills the screen, so there is no row above it
	layers := Layers(t0, Props{Width: 40, Height: h, Elapsed: FloatPeriod / 2, Paper: theme.ColorPinkWash})
	if len(layers) != 1 {
		t.Errorf("len(Layers()) = %d, want only the panel", len(layers))
	}
}
