package main

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/garrettladley/bday/internal/config"
	"github.com/garrettladley/bday/internal/paths"
	"github.com/garrettladley/bday/internal/tui"
	"github.com/garrettladley/bday/internal/xslog"
)

const flagSkipLoading = "skip-loading"

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	skip, err := cmd.Flags().GetBool(flagSkipLoading)
	if err != nil {
		return err
	}
	cfg.SkipLoading = cfg.SkipLoading || skip

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	logFile, err := paths.OpenLog(logPath)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	ctx := xslog.WithLogger(cmd.Context(), xslog.NewLogger(logFile, cfg.LogLevel, cfg.Env))
	ctx = xslog.WithAttrs(ctx,
		xslog.SessionID(uuid.NewString()),
		xslog.Version(),
	)
	logger := xslog.FromContext(ctx)

	logger.InfoContext(ctx, "starting",
		slog.Bool("skip_loading", cfg.SkipLoading),
		slog.Int("fps", cfg.FPS),
	)

	model := tui.New(tui.Deps{
		Clock:       clockwork.NewRealClock(),
		Logger:      logger,
		SkipLoading: cfg.SkipLoading,
		FPS:         cfg.FPS,
	})

	p := tea.NewProgram(&model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.ErrorContext(ctx, "program exited", xslog.Error(err))
		return fmt.Errorf("failed to run tui: %w", err)
	}

	logger.InfoContext(ctx, "exited", xslog.Elapsed(model.Card().SinceMount()))
	return nil
}
