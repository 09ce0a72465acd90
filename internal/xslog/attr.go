package xslog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/garrettladley/bday/internal/version"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func SessionID(id string) slog.Attr {
	const sessionIDKey = "session_id"
	return slog.String(sessionIDKey, id)
}

func Phase(p fmt.Stringer) slog.Attr {
	const phaseKey = "phase"
	return slog.String(phaseKey, p.String())
}

func FromPhase(p fmt.Stringer) slog.Attr {
	const fromPhaseKey = "from_phase"
	return slog.String(fromPhaseKey, p.String())
}

func Countdown(seconds int) slog.Attr {
	const countdownKey = "countdown"
	return slog.Int(countdownKey, seconds)
}

func Bursting(active bool) slog.Attr {
	const burstingKey = "bursting"
	return slog.Bool(burstingKey, active)
}

func Elapsed(d time.Duration) slog.Attr {
	const elapsedKey = "elapsed"
	return slog.Duration(elapsedKey, d)
}

func Viewport(width, height int) slog.Attr {
	const (
		groupViewport = "viewport"
		keyWidth      = "width"
		keyHeight     = "height"
	)
	return slog.Group(groupViewport,
		slog.Int(keyWidth, width),
		slog.Int(keyHeight, height),
	)
}

func Target(id string) slog.Attr {
	const targetKey = "target"
	return slog.String(targetKey, id)
}
