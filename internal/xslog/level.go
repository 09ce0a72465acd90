package xslog

import (
	"encoding"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/garrettladley/bday/internal/env"
)

type Level string

var (
	_ fmt.Stringer             = (*Level)(nil)
	_ encoding.TextUnmarshaler = (*Level)(nil)
)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

const Default = LevelInfo

func Parse(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelDebug:
		return LevelDebug, nil
	case LevelInfo:
		return LevelInfo, nil
	case LevelWarn, "warning":
		return LevelWarn, nil
	case LevelError:
		return LevelError, nil
	default:
		return "", fmt.Errorf("invalid log level: %q (valid: debug, info, warn, error)", s)
	}
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l Level) ToSlog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l Level) String() string {
	return string(l)
}

// NewLogger writes JSON in production and plain text in development, where
// the log file is usually tailed by hand.
func NewLogger(w io.Writer, level Level, e env.Environment) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level.ToSlog()}
	if e.IsDevelopment() {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
