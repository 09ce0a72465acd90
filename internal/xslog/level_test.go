package xslog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/garrettladley/bday/internal/env"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: " warn ", want: LevelWarn},
		{input: "warning", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "trace", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLoggerHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		env      env.Environment
		wantJSON bool
	}{
		{name: "production writes json", env: env.Production, wantJSON: true},
		{name: "development writes text", env: env.Development, wantJSON: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, LevelInfo, tt.env)
			logger.Info("phase changed", Countdown(3))

			out := buf.String()
			if got := strings.HasPrefix(out, "{"); got != tt.wantJSON {
				t.Errorf("json output = %v, want %v: %q", got, tt.wantJSON, out)
			}
			if !strings.Contains(out, "countdown") {
				t.Errorf("output missing countdown attr: %q", out)
			}
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarn, env.Production)
	logger.Info("dropped")
	logger.Log(t.Context(), slog.LevelWarn, "kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestFromContextWithoutLoggerDiscards(t *testing.T) {
	t.Parallel()

	logger := FromContext(t.Context())
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("fallback logger is enabled, want discard")
	}
}

func TestWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := WithLogger(t.Context(), NewLogger(&buf, LevelInfo, env.Production))
	ctx = WithAttrs(ctx, SessionID("abc"))
	FromContext(ctx).Info("hello")

	if !strings.Contains(buf.String(), `"session_id":"abc"`) {
		t.Errorf("output missing session id: %q", buf.String())
	}
}
