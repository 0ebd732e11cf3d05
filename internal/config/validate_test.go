// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
	"time"
)

// helper to build a valid config quickly
func valid(iface string) *Config {
	cfg := Default()
	cfg.Interface = iface
	return cfg
}

// ---- tests ----

func TestValidate_Defaults(t *testing.T) {
	if err := Validate(valid("eth0")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NoInterface(t *testing.T) {
	if err := Validate(valid("")); err == nil {
		t.Fatalf("expected error for empty interface, got nil")
	}
	if err := Validate(valid("   ")); err == nil {
		t.Fatalf("expected error for blank interface, got nil")
	}
}

func TestValidate_BadInterval(t *testing.T) {
	cfg := valid("eth0")
	cfg.Interval = 0

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected interval error, got nil")
	}

	cfg.Interval = Duration(-time.Second)
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected interval error, got nil")
	}
}

func TestValidate_NegativeCount(t *testing.T) {
	cfg := valid("eth0")
	cfg.Count = -1

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected count error, got nil")
	}
}

func TestValidate_ZeroCountMeansUnlimited(t *testing.T) {
	cfg := valid("eth0")
	cfg.Count = 0

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_HeaderEvery(t *testing.T) {
	cfg := valid("eth0")
	cfg.HeaderEvery = 0

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected header_every error, got nil")
	}
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := valid("eth0")
	cfg.LogLevel = "loud"

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected log_level error, got nil")
	}

	cfg.LogLevel = "debug"
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	long := strings.Repeat("x", 80)
	cfg := valid(long)

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Interface != long {
		t.Fatalf("validate mutated interface")
	}
}

func TestNormalize_TruncatesInterface(t *testing.T) {
	cfg := valid(strings.Repeat("x", 80))
	cfg.SourcePath = ""

	Normalize(cfg)

	if len(cfg.Interface) != MaxInterfaceLen {
		t.Fatalf("expected %d chars, got %d", MaxInterfaceLen, len(cfg.Interface))
	}
	if cfg.SourcePath != DefaultSourcePath {
		t.Fatalf("expected default source path, got %q", cfg.SourcePath)
	}
}
