package card

import (
	"encoding"
	"fmt"
	"strings"
)

// Phase is the top-level screen. Phases only ever advance.
type Phase uint8

var (
	_ fmt.Stringer             = Phase(0)
	_ encoding.TextMarshaler   = Phase(0)
	_ encoding.TextUnmarshaler = (*Phase)(nil)
)

const (
	PhaseLoading Phase = iota
	PhaseCountdown
	PhaseMain
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseCountdown:
		return "countdown"
	case PhaseMain:
		return "main"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(s) {
	case "loading":
		return PhaseLoading, nil
	case "countdown":
		return PhaseCountdown, nil
	case "main":
		return PhaseMain, nil
	default:
		return 0, fmt.Errorf("invalid phase: %q (valid: loading, countdown, main)", s)
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// State is everything the view renders from.
type State struct {
	Phase     Phase
	Countdown int
	CardOpen  bool
	Bursting  bool
}
