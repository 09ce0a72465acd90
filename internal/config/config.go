package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	appenv "github.com/garrettladley/bday/internal/env"
	"github.com/garrettladley/bday/internal/paths"
	"github.com/garrettladley/bday/internal/xslog"
)

const (
	DefaultFPS = 12
	minFPS     = 1
	maxFPS     = 60
)

type Config struct {
	// SkipLoading jumps straight to the countdown. Meant for development.
	SkipLoading bool               `env:"BDAY_SKIP_LOADING" envDefault:"false"`
	Env         appenv.Environment `env:"BDAY_ENV" envDefault:"production"`
	FPS         int                `env:"BDAY_FPS" envDefault:"12"`
	LogFile     string             `env:"BDAY_LOG_FILE"`
	LogLevel    xslog.Level        `env:"LOG_LEVEL" envDefault:"info"`
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.FPS = min(max(cfg.FPS, minFPS), maxFPS)
	return cfg, nil
}

// LogPath is LogFile, or the default location under the config directory.
func (c Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return paths.Log()
}
