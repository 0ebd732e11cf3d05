// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// INTERFACE
	// ------------------------------------------------------------

	if strings.TrimSpace(cfg.Interface) == "" {
		return fmt.Errorf("no interface specified")
	}

	// ------------------------------------------------------------
	// TIMING
	// ------------------------------------------------------------

	if cfg.Interval <= 0 {
		return fmt.Errorf("invalid interval: %s", cfg.Interval.Std())
	}
	if cfg.Count < 0 {
		return fmt.Errorf("invalid count: %d", cfg.Count)
	}

	// ------------------------------------------------------------
	// OUTPUT + LOGGING
	// ------------------------------------------------------------

	if cfg.HeaderEvery <= 0 {
		return fmt.Errorf("invalid header_every: %d", cfg.HeaderEvery)
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}

	return nil
}
