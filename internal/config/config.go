// Package config loads command configuration from the environment and builds
// the commands' loggers.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrNilPointer   = errors.New("config: nil pointer")
	ErrParsing      = errors.New("config: failed to parse environment")
	ErrInvalidLevel = errors.New("config: invalid log level")
)

var dotenvLoaded sync.Once

// Log is the logging configuration shared by all commands
type Log struct {
	Level string `env:"MODE_LOG_LEVEL" envDefault:"info"`
}

// Load parses environment variables into v according to its env tags. A
// .env file in the working directory is loaded first, once, if present.
func Load[T any](v *T) error {
	dotenvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsing, err)
	}
	return nil
}

// ParseLevel maps a level name to its slog level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
}

// NewLogger builds a text logger on stderr at the configured level
func NewLogger(cfg Log) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}
