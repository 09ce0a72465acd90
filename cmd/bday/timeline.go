//go:build !release

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/garrettladley/bday/internal/card"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func timelineCmd() *cobra.Command {
	var (
		sc     card.Script
		format string
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the card's state over simulated time",
		Long:  "Runs the card on a fake clock and prints its state at every step, without opening a terminal UI.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := card.Simulate(sc)
			if err != nil {
				return fmt.Errorf("failed to simulate: %w", err)
			}
			return writeSamples(cmd.OutOrStdout(), format, samples)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&sc.SkipLoading, flagSkipLoading, false, "start on the countdown")
	flags.DurationVar(&sc.Duration, "duration", 20*time.Second, "how long to simulate")
	flags.DurationVar(&sc.Step, "step", time.Second, "time between samples")
	flags.DurationSliceVar(&sc.OpenAt, "open-at", nil, "offsets at which to open the card")
	flags.DurationSliceVar(&sc.CloseAt, "close-at", nil, "offsets at which to close the card")
	flags.StringVar(&format, "format", formatJSON, "output format: json or yaml")

	return cmd
}

func writeSamples(w io.Writer, format string, samples []card.Sample) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(samples); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(samples); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q: want %s or %s", format, formatJSON, formatYAML)
	}
	return nil
}
