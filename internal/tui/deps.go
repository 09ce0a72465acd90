package tui

import (
	"log/slog"

	"github.com/jonboulle/clockwork"
)

type Deps struct {
	Clock       clockwork.Clock
	Logger      *slog.Logger
	SkipLoading bool
	FPS         int
}
