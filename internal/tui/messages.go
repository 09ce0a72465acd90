package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// FrameMsg redraws the animation and lets due deadlines fire.
type FrameMsg struct {
	At time.Time
}

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}
