// internal/config/config.go
package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// ---- DEFAULTS ----

const (
	DefaultInterval    = 2 * time.Second
	DefaultHeaderEvery = 20
	DefaultSourcePath  = "/proc/net/dev"
	DefaultLogLevel    = "info"

	// MaxInterfaceLen matches the longest name kept on a snapshot.
	MaxInterfaceLen = 63
)

type Config struct {
	Interface   string   `yaml:"interface"`
	Interval    Duration `yaml:"interval"`
	Count       int      `yaml:"count"` // 0 = unlimited
	HeaderEvery int      `yaml:"header_every"`
	SourcePath  string   `yaml:"source_path"`
	LogLevel    string   `yaml:"log_level"`
}

// Default returns a config with every optional field filled.
func Default() *Config {
	return &Config{
		Interval:    Duration(DefaultInterval),
		HeaderEvery: DefaultHeaderEvery,
		SourcePath:  DefaultSourcePath,
		LogLevel:    DefaultLogLevel,
	}
}

// ---- INTERVAL ----

// Duration accepts plain seconds ("2", 2) or duration strings ("1m30s", "1d").
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseInterval(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
