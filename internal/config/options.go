package config

import (
	"log/slog"
	"strings"

	"ender-sword/internal/errors"
)

// Options are the run-time knobs a host passes to the game.
type Options struct {
	Seed         int64
	PowerUpsPath string // optional JSON catalog, empty means built-in
	LogLevel     string
	Scale        float64
}

func DefaultOptions() Options {
	return Options{
		LogLevel: "info",
		Scale:    1,
	}
}

func (o Options) Validate() error {
	if o.Scale <= 0 || o.Scale > 4 {
		return errors.InvalidArgumentf("scale must be in (0, 4], got %g", o.Scale)
	}
	if _, err := ParseLevel(o.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a flag value onto a slog level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", s)
}
