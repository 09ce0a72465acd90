package tui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/jonboulle/clockwork"
	"go.uber.org/goleak"

	"github.com/garrettladley/bday/internal/card"
	"github.com/garrettladley/bday/internal/tui/content"
	"github.com/garrettladley/bday/internal/tui/scene"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

func newModel(t *testing.T, skipLoading bool) (*Model, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClockAt(epoch)
	m := New(Deps{Clock: clock, SkipLoading: skipLoading})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return &m, clock
}

func frame(m *Model, clock *clockwork.FakeClock, d time.Duration) {
	clock.Advance(d)
	m.Update(FrameMsg{At: clock.Now()})
}

func atMain(t *testing.T) (*Model, *clockwork.FakeClock) {
	t.Helper()

	m, clock := newModel(t, true)
	frame(m, clock, 10*time.Second)
	if got := m.Card().Phase(); got != card.PhaseMain {
		t.Fatalf("Phase() = %v, want %v", got, card.PhaseMain)
	}
	return m, clock
}

func screen(m *Model) string {
	return ansi.Strip(m.Render())
}

func press(m *Model, key tea.KeyPressMsg) tea.Cmd {
	_, cmd := m.Update(key)
	return cmd
}

var (
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyQuit  = tea.KeyPressMsg{Code: 'q', Text: "q"}
)

func clickOn(t *testing.T, m *Model, id string) {
	t.Helper()

	l := m.hitCanvas().Get(id)
	if l == nil {
		t.Fatalf("no %q layer on screen", id)
	}
	b := l.Bounds()
	clickAt(m, b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)
}

func clickAt(m *Model, x, y int) {
	m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
}

func TestScreensFollowTheClock(t *testing.T) {
	t.Parallel()

	m, clock := newModel(t, false)
	if out := screen(m); !strings.Contains(out, "Loading positivity") {
		t.Fatalf("loading screen missing its title:\n%s", out)
	}

	frame(m, clock, card.LoadingDuration)
	if out := screen(m); !strings.Contains(out, content.CountdownTitle) || !strings.Contains(out, "10s") {
		t.Fatalf("countdown screen missing its title or seconds:\n%s", out)
	}

	frame(m, clock, 3*time.Second)
	if out := screen(m); !strings.Contains(out, "7s") {
		t.Fatalf("countdown screen does not show 7s:\n%s", out)
	}

	frame(m, clock, 7*time.Second)
	if out := screen(m); !strings.Contains(out, content.OpenButton) {
		t.Fatalf("main screen missing its button:\n%s", out)
	}
}

func TestSkipLoadingStartsOnCountdown(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, true)
	if got := m.Card().Phase(); got != card.PhaseCountdown {
		t.Errorf("Phase() = %v, want %v", got, card.PhaseCountdown)
	}
}

func TestRenderBeforeResize(t *testing.T) {
	t.Parallel()

	m := New(Deps{Clock: clockwork.NewFakeClockAt(epoch)})
	m.Init()
	if got := m.Render(); got != "" {
		t.Errorf("Render() before the first resize = %q, want empty", got)
	}
}

func TestRenderFillsViewport(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, false)
	lines := strings.Split(screen(m), "\n")
	if len(lines) != 40 {
		t.Errorf("Render() has %d lines, want 40", len(lines))
	}
}

func TestClicks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		wantOpen bool
	}{
		{name: "card content is swallowed", target: scene.IDCard, wantOpen: true},
		{name: "outside closes", target: scene.IDBackdrop, wantOpen: false},
		{name: "close button closes", target: scene.IDClose, wantOpen: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, _ := atMain(t)
			clickOn(t, m, scene.IDButton)
			if !m.Card().State().CardOpen {
				t.Fatal("button click did not open the card")
			}

			if tt.target == scene.IDBackdrop {
				clickAt(m, 0, 0)
			} else {
				clickOn(t, m, tt.target)
			}

			if got := m.Card().State().CardOpen; got != tt.wantOpen {
				t.Errorf("CardOpen = %v, want %v", got, tt.wantOpen)
			}
		})
	}
}

func TestClickOnCardEdge(t *testing.T) {
	t.Parallel()

	m, _ := atMain(t)
	press(m, keyEnter)

	b := m.hitCanvas().Get(scene.IDCard).Bounds()
	clickAt(m, b.Min.X, b.Max.Y-1)
	if !m.Card().State().CardOpen {
		t.Error("click on the card border closed the card")
	}
	clickAt(m, b.Min.X-1, b.Max.Y-1)
	if m.Card().State().CardOpen {
		t.Error("click just outside the card did not close it")
	}
}

func TestRightClickIgnored(t *testing.T) {
	t.Parallel()

	m, _ := atMain(t)
	b := m.hitCanvas().Get(scene.IDButton).Bounds()
	m.Update(tea.MouseClickMsg{X: b.Min.X + 1, Y: b.Min.Y + 1, Button: tea.MouseRight})

	if m.Card().State().CardOpen {
		t.Error("right click opened the card")
	}
}

func TestClicksBeforeMainDoNothing(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, true)
	for _, pt := range [][2]int{{0, 0}, {50, 20}, {99, 39}} {
		clickAt(m, pt[0], pt[1])
	}

	want := card.State{Phase: card.PhaseCountdown, Countdown: card.CountdownStart}
	if got := m.Card().State(); got != want {
		t.Errorf("State() = %+v, want %+v", got, want)
	}
}

func TestKeys(t *testing.T) {
	t.Parallel()

	m, clock := atMain(t)

	press(m, keyEnter)
	if st := m.Card().State(); !st.CardOpen || !st.Bursting {
		t.Fatalf("enter: State() = %+v, want open and bursting", st)
	}

	press(m, keyEsc)
	st := m.Card().State()
	if st.CardOpen {
		t.Fatal("esc did not close the card")
	}
	if !st.Bursting {
		t.Fatal("esc cut the burst short")
	}

	frame(m, clock, card.BurstDuration)
	if m.Card().State().Bursting {
		t.Error("burst still active after its window")
	}
}

func TestBurstDrawnUntilCleared(t *testing.T) {
	t.Parallel()

	m, clock := atMain(t)
	press(m, keyEnter)
	press(m, keyEsc)

	if out := screen(m); !strings.Contains(out, content.Balloon) {
		t.Fatalf("burst balloon not drawn after opening:\n%s", out)
	}

	frame(m, clock, card.BurstDuration)
	if out := screen(m); strings.Contains(out, content.Balloon) {
		t.Errorf("burst balloon still drawn after the burst cleared:\n%s", out)
	}
}

func TestQuitUnmounts(t *testing.T) {
	t.Parallel()

	m, clock := newModel(t, false)

	if cmd := press(m, keyQuit); cmd == nil {
		t.Fatal("q returned no command")
	}
	if m.Card().Mounted() {
		t.Fatal("machine still mounted after quit")
	}
	if got := m.Card().Pending(); got != 0 {
		t.Errorf("Pending() = %d after quit, want 0", got)
	}

	frame(m, clock, time.Minute)
	if got := m.Card().Phase(); got != card.PhaseLoading {
		t.Errorf("Phase() = %v after quit, want %v", got, card.PhaseLoading)
	}
}
