//go:build !release

package main

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/garrettladley/bday/internal/card"
	"github.com/garrettladley/bday/internal/tui"
)

type frameOptions struct {
	phase  card.Phase
	width  int
	height int
	at     time.Duration
	open   bool
	burst  bool
}

func frameCmd() *cobra.Command {
	var (
		opts  frameOptions
		phase string
	)

	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Print one rendered frame",
		Long: "Renders a single frame of the given screen on a fake clock. --at is the time into the screen. " +
			"--open and --burst apply on the main screen: --burst alone opens and closes the card so only the burst shows.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := card.ParsePhase(phase)
			if err != nil {
				return err
			}
			opts.phase = p

			out, err := renderFrame(opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&phase, "phase", card.PhaseLoading.String(), "screen to render: loading, countdown or main")
	flags.IntVar(&opts.width, "width", 80, "frame width in cells")
	flags.IntVar(&opts.height, "height", 24, "frame height in cells")
	flags.DurationVar(&opts.at, "at", 0, "time into the screen")
	flags.BoolVar(&opts.open, "open", false, "open the greeting card")
	flags.BoolVar(&opts.burst, "burst", false, "show the opening burst")

	return cmd
}

var frameEpoch = time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

func renderFrame(opts frameOptions) (string, error) {
	if opts.width <= 0 || opts.height <= 0 {
		return "", fmt.Errorf("invalid frame size %dx%d", opts.width, opts.height)
	}
	if opts.at < 0 {
		return "", fmt.Errorf("invalid offset %v", opts.at)
	}

	clock := clockwork.NewFakeClockAt(frameEpoch)
	model := tui.New(tui.Deps{
		Clock:       clock,
		SkipLoading: opts.phase != card.PhaseLoading,
	})
	model.Init()
	defer model.Card().Unmount()
	model.Update(tea.WindowSizeMsg{Width: opts.width, Height: opts.height})

	sync := func(d time.Duration) {
		clock.Advance(d)
		model.Update(tui.FrameMsg{At: clock.Now()})
	}

	if opts.phase == card.PhaseMain {
		sync(time.Duration(card.CountdownStart) * card.TickInterval)
		if opts.open || opts.burst {
			model.Card().Open()
		}
		if opts.burst && !opts.open {
			model.Card().Close()
		}
	}

	sync(opts.at)
	return model.Render(), nil
}
