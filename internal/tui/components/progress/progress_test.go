package progress

import (
	"math"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
)

func TestOpacity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{name: "start", elapsed: 0, want: 1},
		{name: "trough", elapsed: Period / 2, want: 0.5},
		{name: "wraps", elapsed: Period, want: 1},
		{name: "second trough", elapsed: Period + Period/2, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := New(10, tt.elapsed).Opacity(); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Opacity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOpacityStaysInRange(t *testing.T) {
	t.Parallel()

	for ms := 0; ms <= 10000; ms += 125 {
		got := New(10, time.Duration(ms)*time.Millisecond).Opacity()
		if got < 0.5-1e-9 || got > 1+1e-9 {
			t.Fatalf("Opacity() at %dms = %v, want within [0.5, 1]", ms, got)
		}
	}
}

func TestRenderWidth(t *testing.T) {
	t.Parallel()

	for _, w := range []int{0, 1, 24} {
		if got := lipgloss.Width(New(w, time.Second).Render()); got != w {
			t.Errorf("Render() width = %d, want %d", got, w)
		}
	}
}
