package tui

import (
	"image"
	"image/color"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/jonboulle/clockwork"

	"github.com/garrettladley/bday/internal/card"
	"github.com/garrettladley/bday/internal/config"
	"github.com/garrettladley/bday/internal/tui/components/backdrop"
	"github.com/garrettladley/bday/internal/tui/components/burst"
	"github.com/garrettladley/bday/internal/tui/components/modal"
	"github.com/garrettladley/bday/internal/tui/page/celebrate"
	"github.com/garrettladley/bday/internal/tui/page/countdown"
	"github.com/garrettladley/bday/internal/tui/page/loading"
	"github.com/garrettladley/bday/internal/tui/scene"
	"github.com/garrettladley/bday/internal/tui/theme"
	"github.com/garrettladley/bday/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type Model struct {
	ready          bool
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	deps           Deps
	card           *card.Machine
}

func New(deps Deps) Model {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.FPS <= 0 {
		deps.FPS = config.DefaultFPS
	}
	return Model{
		theme: theme.New(),
		deps:  deps,
		card:  card.New(deps.Clock, card.WithLogger(deps.Logger)),
	}
}

// Card exposes the state machine behind the screen.
func (m *Model) Card() *card.Machine {
	return m.card
}

func (m *Model) Init() tea.Cmd {
	m.card.Mount(m.deps.SkipLoading)
	return frameCmd(m.deps.FPS)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true
		m.deps.Logger.Debug("viewport resized", xslog.Viewport(msg.Width, msg.Height))

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.card.Unmount()
			return m, tea.Quit
		case "enter", "space", "o":
			m.card.Open()
		case "esc", "x":
			m.card.Close()
		}

	case tea.MouseClickMsg:
		if mouse := msg.Mouse(); mouse.Button == tea.MouseLeft {
			m.click(mouse.X, mouse.Y)
		}

	case FrameMsg:
		m.card.Sync()
		return m, frameCmd(m.deps.FPS)
	}

	return m, nil
}

// click routes a left click to the top-most interactive layer under it.
// Clicks on the card itself are swallowed so they never count as outside.
func (m *Model) click(x, y int) {
	if !m.ready {
		return
	}
	m.card.Sync()

	target := m.hitCanvas().Hit(x, y)
	switch target {
	case scene.IDButton:
		m.card.Open()
	case scene.IDBackdrop, scene.IDClose:
		m.card.Close()
	case scene.IDCard:
	default:
		return
	}
	m.deps.Logger.Debug("click", xslog.Target(target))
}

var interactive = map[string]bool{
	scene.IDButton:   true,
	scene.IDBackdrop: true,
	scene.IDCard:     true,
	scene.IDClose:    true,
}

// hitCanvas holds only the interactive layers. Decoration never
// intercepts a click.
func (m *Model) hitCanvas() *lipgloss.Canvas {
	var hits []*lipgloss.Layer
	for _, l := range m.Layers() {
		if interactive[l.GetID()] {
			hits = append(hits, l)
		}
	}
	return lipgloss.NewCanvas(hits...)
}

func (m *Model) background() color.Color {
	switch m.card.Phase() {
	case card.PhaseLoading:
		return theme.ColorPinkWash
	case card.PhaseCountdown:
		return theme.ColorPurpleWash
	default:
		return theme.ColorPinkLight
	}
}

// Layers is the whole frame for the current state.
func (m *Model) Layers() []*lipgloss.Layer {
	var (
		w       = m.viewportWidth
		h       = m.viewportHeight
		st      = m.card.State()
		elapsed = m.card.SinceMount()
		paper   = m.background()
		layers  []*lipgloss.Layer
	)

	switch st.Phase {
	case card.PhaseLoading:
		layers = append(layers, backdrop.Solid(w, h, paper, elapsed).Layers()...)
		layers = append(layers, loading.Layers(m.theme, loading.Props{
			Width:   w,
			Height:  h,
			Elapsed: elapsed,
			Paper:   paper,
		})...)

	case card.PhaseCountdown:
		layers = append(layers, backdrop.Solid(w, h, paper, elapsed).Layers()...)
		layers = append(layers, countdown.Layers(m.theme, countdown.Props{
			Width:     w,
			Height:    h,
			Remaining: st.Countdown,
			Total:     card.CountdownStart,
			Elapsed:   m.card.PhaseElapsed(),
			Paper:     paper,
		})...)

	case card.PhaseMain:
		bg := backdrop.Gradient(w, h, theme.ColorPinkLight, theme.ColorLavender, elapsed)
		layers = append(layers, bg.Layers()...)

		page := celebrate.Layers(m.theme, celebrate.Props{Width: w, Height: h, Paper: bg.RowColor})
		layers = append(layers, page...)

		if d, ok := m.card.BurstElapsed(); ok {
			panel := bounds(page, scene.IDPanel)
			layers = append(layers, burst.New(w, h, d, func(x, y int) color.Color {
				switch {
				case st.CardOpen:
					return theme.ColorBackdrop
				case image.Pt(x, y).In(panel):
					return m.theme.Background()
				default:
					return bg.RowColor(y)
				}
			}).Layers()...)
		}

		if st.CardOpen {
			layers = append(layers, modal.New(m.theme, w, h).Layers()...)
		}
	}

	return layers
}

func bounds(layers []*lipgloss.Layer, id string) image.Rectangle {
	for _, l := range layers {
		if l.GetID() == id {
			return l.Bounds()
		}
	}
	return image.Rectangle{}
}

// Render flattens the current frame to text.
func (m *Model) Render() string {
	if !m.ready {
		return ""
	}
	return scene.Flatten(m.canvas())
}

// canvas always spans the viewport, even where no layer draws.
func (m *Model) canvas() *lipgloss.Canvas {
	frame := lipgloss.NewLayer("").
		Width(m.viewportWidth).
		Height(m.viewportHeight).
		Z(-1)
	return lipgloss.NewCanvas(append([]*lipgloss.Layer{frame}, m.Layers()...)...)
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = m.background()

	if !m.ready {
		return view
	}

	view.SetContent(m.canvas())
	return view
}
