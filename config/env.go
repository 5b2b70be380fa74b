package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Env holds the process-level overrides read from the environment.
type Env struct {
	Seed      *uint64 `env:"LVBFM_SEED"`
	Output    string  `env:"LVBFM_OUTPUT"`
	LogLevel  string  `env:"LVBFM_LOG_LEVEL"  envDefault:"info"`
	LogFormat string  `env:"LVBFM_LOG_FORMAT" envDefault:"text"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w: %w", ErrParameter, err)
	}

	return e, nil
}

// ApplyEnv overrides the seed and the output path when they are set.
func (c *Config) ApplyEnv(e Env) {
	if e.Seed != nil {
		seed := *e.Seed
		c.Seed = &seed
	}
	if e.Output != "" {
		c.Output.Path = e.Output
	}
}

// NewLogger builds a slog logger writing to w. LogFormat "json" selects the
// JSON handler, anything else the text handler; unknown levels mean info.
func NewLogger(e Env, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(e.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(e.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
