package card

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jonboulle/clockwork"
)

// simEpoch anchors simulated runs so their output is reproducible.
var simEpoch = time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

var (
	ErrInvalidStep     = errors.New("step must be positive")
	ErrInvalidDuration = errors.New("duration must not be negative")
)

// Offset is a duration that encodes as "1.5s" rather than nanoseconds.
type Offset time.Duration

func (o Offset) MarshalText() ([]byte, error) {
	return []byte(time.Duration(o).String()), nil
}

func (o *Offset) UnmarshalText(text []byte) error {
	d, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("failed to parse offset: %w", err)
	}
	*o = Offset(d)
	return nil
}

// Script drives a simulated run. OpenAt and CloseAt are offsets from mount.
type Script struct {
	SkipLoading bool
	Duration    time.Duration
	Step        time.Duration
	OpenAt      []time.Duration
	CloseAt     []time.Duration
}

// Sample is the machine's state at one offset of a simulated run.
type Sample struct {
	Offset    Offset `json:"offset" yaml:"offset"`
	Phase     Phase  `json:"phase" yaml:"phase"`
	Countdown int    `json:"countdown" yaml:"countdown"`
	CardOpen  bool   `json:"card_open" yaml:"card_open"`
	Bursting  bool   `json:"bursting" yaml:"bursting"`
}

type action struct {
	at   time.Duration
	open bool
}

// Simulate runs a fresh machine on a fake clock and samples it every Step,
// from mount through Duration inclusive. Scripted opens and closes are
// applied at their exact offsets, before the sample taken at that offset.
func Simulate(sc Script) ([]Sample, error) {
	if sc.Step <= 0 {
		return nil, ErrInvalidStep
	}
	if sc.Duration < 0 {
		return nil, ErrInvalidDuration
	}

	actions := make([]action, 0, len(sc.OpenAt)+len(sc.CloseAt))
	for _, at := range sc.OpenAt {
		actions = append(actions, action{at: at, open: true})
	}
	for _, at := range sc.CloseAt {
		actions = append(actions, action{at: at})
	}
	slices.SortStableFunc(actions, func(a, b action) int {
		return cmp.Compare(a.at, b.at)
	})

	var (
		clock   = clockwork.NewFakeClockAt(simEpoch)
		m       = New(clock)
		elapsed time.Duration
		samples []Sample
		next    int
	)

	advanceTo := func(d time.Duration) {
		if d > elapsed {
			clock.Advance(d - elapsed)
			elapsed = d
		}
		m.Sync()
	}

	m.Mount(sc.SkipLoading)
	defer m.Unmount()

	for off := time.Duration(0); off <= sc.Duration; off += sc.Step {
		for next < len(actions) && actions[next].at <= off {
			a := actions[next]
			advanceTo(a.at)
			if a.open {
				m.Open()
			} else {
				m.Close()
			}
			next++
		}

		advanceTo(off)
		s := m.State()
		samples = append(samples, Sample{
			Offset:    Offset(off),
			Phase:     s.Phase,
			Countdown: s.Countdown,
			CardOpen:  s.CardOpen,
			Bursting:  s.Bursting,
		})
	}

	return samples, nil
}
