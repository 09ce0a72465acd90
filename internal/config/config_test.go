package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	appenv "github.com/garrettladley/bday/internal/env"
	"github.com/garrettladley/bday/internal/xslog"
)

func TestReadDefaults(t *testing.T) {
	for _, key := range []string{"BDAY_SKIP_LOADING", "BDAY_ENV", "BDAY_FPS", "BDAY_LOG_FILE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	got, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := Config{
		Env:      appenv.Production,
		FPS:      DefaultFPS,
		LogLevel: xslog.LevelInfo,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadOverrides(t *testing.T) {
	t.Setenv("BDAY_SKIP_LOADING", "true")
	t.Setenv("BDAY_ENV", "dev")
	t.Setenv("BDAY_FPS", "240")
	t.Setenv("BDAY_LOG_FILE", "/tmp/bday.log")
	t.Setenv("LOG_LEVEL", "debug")

	got, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := Config{
		SkipLoading: true,
		Env:         appenv.Development,
		FPS:         60,
		LogFile:     "/tmp/bday.log",
		LogLevel:    xslog.LevelDebug,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}

	path, err := got.LogPath()
	if err != nil {
		t.Fatalf("LogPath() error = %v", err)
	}
	if path != "/tmp/bday.log" {
		t.Errorf("LogPath() = %q, want /tmp/bday.log", path)
	}
}

func TestReadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "log level", key: "LOG_LEVEL", value: "loud"},
		{name: "environment", key: "BDAY_ENV", value: "staging"},
		{name: "fps", key: "BDAY_FPS", value: "fast"},
		{name: "skip loading", key: "BDAY_SKIP_LOADING", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Read(); err == nil {
				t.Errorf("Read() with %s=%q succeeded, want error", tt.key, tt.value)
			}
		})
	}
}
