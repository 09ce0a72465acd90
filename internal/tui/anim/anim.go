// Package anim samples CSS-style keyframe animations at a point in time.
package anim

import (
	"math"
	"time"
)

// Easing maps linear progress in [0, 1] to eased progress. Overshooting
// curves may leave [0, 1] between the endpoints.
type Easing func(t float64) float64

var (
	Linear    Easing = func(t float64) float64 { return t }
	Ease             = CubicBezier(0.25, 0.1, 0.25, 1)
	EaseOut          = CubicBezier(0, 0, 0.58, 1)
	EaseInOut        = CubicBezier(0.42, 0, 0.58, 1)
)

// CubicBezier builds the easing for cubic-bezier(x1, y1, x2, y2). x1 and x2
// must be within [0, 1].
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	bezier := func(s, p1, p2 float64) float64 {
		u := 1 - s
		return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
	}
	slope := func(s, p1, p2 float64) float64 {
		u := 1 - s
		return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
	}

	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}

		// newton first, bisection when the slope flattens out
		s := t
		for range 8 {
			x := bezier(s, x1, x2) - t
			if math.Abs(x) < 1e-7 {
				return bezier(s, y1, y2)
			}
			d := slope(s, x1, x2)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= x / d
		}

		lo, hi := 0.0, 1.0
		s = t
		for range 50 {
			x := bezier(s, x1, x2)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return bezier(s, y1, y2)
	}
}

// Progress is elapsed/duration clamped to [0, 1].
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(duration)
}

// Delayed shifts elapsed by an animation-delay.
func Delayed(elapsed, delay time.Duration) time.Duration {
	return max(elapsed-delay, 0)
}

type Direction uint8

const (
	Normal Direction = iota
	Alternate
	AlternateReverse
)

// Loop returns progress within the current iteration of an infinite
// animation, honoring animation-direction.
func Loop(elapsed, period time.Duration, dir Direction) float64 {
	if period <= 0 {
		return 0
	}
	elapsed = max(elapsed, 0)

	iteration := elapsed / period
	p := float64(elapsed%period) / float64(period)

	reversed := false
	switch dir {
	case Alternate:
		reversed = iteration%2 == 1
	case AlternateReverse:
		reversed = iteration%2 == 0
	}
	if reversed {
		return 1 - p
	}
	return p
}

// Stop is a keyframe: Value at offset At in [0, 1].
type Stop struct {
	At    float64
	Value float64
}

// Track is one animated property. Ease applies to each segment between
// stops, like animation-timing-function.
type Track struct {
	Stops []Stop
	Ease  Easing
}

func (tr Track) Sample(p float64) float64 {
	if len(tr.Stops) == 0 {
		return 0
	}
	first, last := tr.Stops[0], tr.Stops[len(tr.Stops)-1]
	if p <= first.At {
		return first.Value
	}
	if p >= last.At {
		return last.Value
	}

	ease := tr.Ease
	if ease == nil {
		ease = Linear
	}

	for i := 1; i < len(tr.Stops); i++ {
		a, b := tr.Stops[i-1], tr.Stops[i]
		if p > b.At {
			continue
		}
		span := b.At - a.At
		if span <= 0 {
			return b.Value
		}
		t := ease((p - a.At) / span)
		return a.Value + (b.Value-a.Value)*t
	}
	return last.Value
}

