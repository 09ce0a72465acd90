package card

import (
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/garrettladley/bday/internal/schedule"
	"github.com/garrettladley/bday/internal/xslog"
)

const (
	LoadingDuration = 5000 * time.Millisecond
	TickInterval    = 1000 * time.Millisecond
	CountdownStart  = 10
	BurstDuration   = 1800 * time.Millisecond
)

const (
	timerLoading   schedule.Key = "loading"
	timerCountdown schedule.Key = "countdown"
	timerBurst     schedule.Key = "burst"
)

// Transition records one phase change.
type Transition struct {
	From Phase
	To   Phase
	At   time.Time
}

// Machine owns the card's state and every deadline that mutates it.
//
// Deadlines only fire from Sync or Advance, which the owner calls from its
// single update loop. Leaving a phase disarms that phase's deadline, and
// Unmount disarms everything, so a stale timer can never touch the state.
type Machine struct {
	clock  clockwork.Clock
	logger *slog.Logger
	timers *schedule.Set

	state     State
	mounted   bool
	unmounted bool

	mountedAt time.Time
	enteredAt time.Time
	burstAt   time.Time

	history []Transition
}

type Option func(*Machine)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

func New(clock clockwork.Clock, opts ...Option) *Machine {
	m := &Machine{
		clock:  clock,
		logger: slog.New(slog.DiscardHandler),
		timers: schedule.New(),
		state: State{
			Phase:     PhaseLoading,
			Countdown: CountdownStart,
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mount starts the phase chain. With skipLoading the machine enters the
// countdown immediately and the loading phase is never entered. Only the
// first call has any effect.
func (m *Machine) Mount(skipLoading bool) {
	if m.mounted || m.unmounted {
		return
	}
	now := m.clock.Now()
	m.mounted = true
	m.mountedAt = now
	m.enteredAt = now

	if skipLoading {
		m.state.Phase = PhaseCountdown
		m.timers.Arm(timerCountdown, now.Add(TickInterval))
		m.logger.Info("loading bypassed", xslog.Phase(m.state.Phase))
		return
	}

	m.timers.Arm(timerLoading, now.Add(LoadingDuration))
	m.logger.Debug("mounted", xslog.Phase(m.state.Phase))
}

// Unmount disarms every pending deadline and freezes the state.
func (m *Machine) Unmount() {
	if m.unmounted {
		return
	}
	m.unmounted = true
	m.timers.Clear()
	m.logger.Debug("unmounted", xslog.Phase(m.state.Phase), xslog.Elapsed(m.SinceMount()))
}

// Sync fires every deadline due at the clock's current time.
func (m *Machine) Sync() {
	m.Advance(m.clock.Now())
}

// Advance fires every deadline at or before now, oldest first. Each one is
// applied at its own deadline, so one late call produces the same state as
// many punctual ones.
func (m *Machine) Advance(now time.Time) {
	if !m.mounted || m.unmounted {
		return
	}
	for {
		t, ok := m.timers.PopDue(now)
		if !ok {
			return
		}
		m.fire(t)
	}
}

// Open shows the greeting card and starts a burst. It only applies on the
// main screen while the card is closed. A new burst restarts the clearing
// window.
func (m *Machine) Open() bool {
	now := m.clock.Now()
	m.Advance(now)

	if !m.mounted || m.unmounted || m.state.Phase != PhaseMain || m.state.CardOpen {
		return false
	}

	m.state.CardOpen = true
	m.state.Bursting = true
	m.burstAt = now
	m.timers.Arm(timerBurst, now.Add(BurstDuration))

	m.logger.Info("card opened")
	return true
}

// Close hides the greeting card. A pending burst keeps its own deadline.
func (m *Machine) Close() bool {
	m.Advance(m.clock.Now())

	if m.unmounted || !m.state.CardOpen {
		return false
	}

	m.state.CardOpen = false
	m.logger.Info("card closed", xslog.Bursting(m.state.Bursting))
	return true
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Phase() Phase {
	return m.state.Phase
}

func (m *Machine) Mounted() bool {
	return m.mounted && !m.unmounted
}

// Pending reports how many deadlines are armed.
func (m *Machine) Pending() int {
	return m.timers.Len()
}

// NextDeadline returns the earliest armed deadline.
func (m *Machine) NextDeadline() (time.Time, bool) {
	t, ok := m.timers.Next()
	return t.At, ok
}

func (m *Machine) SinceMount() time.Duration {
	if !m.mounted {
		return 0
	}
	return m.clock.Since(m.mountedAt)
}

// PhaseElapsed is the time spent in the current phase, measured from the
// deadline that entered it.
func (m *Machine) PhaseElapsed() time.Duration {
	if !m.mounted {
		return 0
	}
	return m.clock.Since(m.enteredAt)
}

// BurstElapsed is the time since the active burst started. It reports false
// when no burst is active.
func (m *Machine) BurstElapsed() (time.Duration, bool) {
	if !m.state.Bursting {
		return 0, false
	}
	return m.clock.Since(m.burstAt), true
}

func (m *Machine) History() []Transition {
	out := make([]Transition, len(m.history))
	copy(out, m.history)
	return out
}

func (m *Machine) fire(t schedule.Timer) {
	switch t.Key {
	case timerLoading:
		if m.state.Phase == PhaseLoading {
			m.enter(PhaseCountdown, t.At)
		}
	case timerCountdown:
		m.tick(t.At)
	case timerBurst:
		m.state.Bursting = false
		m.logger.Debug("burst cleared")
	}
}

func (m *Machine) tick(at time.Time) {
	if m.state.Phase != PhaseCountdown || m.state.Countdown <= 0 {
		return
	}

	m.state.Countdown--
	m.logger.Debug("countdown tick", xslog.Countdown(m.state.Countdown))

	if m.state.Countdown == 0 {
		m.enter(PhaseMain, at)
		return
	}
	m.timers.Arm(timerCountdown, at.Add(TickInterval))
}

func (m *Machine) enter(to Phase, at time.Time) {
	from := m.state.Phase
	if to <= from {
		return
	}

	switch from {
	case PhaseLoading:
		m.timers.Disarm(timerLoading)
	case PhaseCountdown:
		m.timers.Disarm(timerCountdown)
	}

	m.state.Phase = to
	m.enteredAt = at
	m.history = append(m.history, Transition{From: from, To: to, At: at})

	if to == PhaseCountdown {
		m.timers.Arm(timerCountdown, at.Add(TickInterval))
	}

	m.logger.Info("phase changed",
		xslog.FromPhase(from),
		xslog.Phase(to),
		xslog.Elapsed(at.Sub(m.mountedAt)),
	)
}
