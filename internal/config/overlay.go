// internal/config/overlay.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. NETMON_INTERVAL.
const EnvPrefix = "NETMON"

// Keys shared by flags, env and the overlay.
const (
	KeyInterface   = "interface"
	KeyInterval    = "interval"
	KeyCount       = "count"
	KeyHeaderEvery = "header-every"
	KeySourcePath  = "source-path"
	KeyLogLevel    = "log-level"
)

// NewViper binds flags and NETMON_* environment variables.
// Flags win over env; only explicitly set values are reported by IsSet.
func NewViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}
	return v, nil
}

// Overlay applies flag and env values on top of a loaded config.
func Overlay(cfg *Config, v *viper.Viper) error {
	if v.IsSet(KeyInterface) {
		cfg.Interface = v.GetString(KeyInterface)
	}

	if v.IsSet(KeyInterval) {
		d, err := ParseInterval(v.GetString(KeyInterval))
		if err != nil {
			return err
		}
		cfg.Interval = Duration(d)
	}

	if v.IsSet(KeyCount) {
		n := v.GetInt(KeyCount)
		if n <= 0 {
			return fmt.Errorf("invalid count: %s", v.GetString(KeyCount))
		}
		cfg.Count = n
	}

	if v.IsSet(KeyHeaderEvery) {
		cfg.HeaderEvery = v.GetInt(KeyHeaderEvery)
	}
	if v.IsSet(KeySourcePath) {
		cfg.SourcePath = v.GetString(KeySourcePath)
	}
	if v.IsSet(KeyLogLevel) {
		cfg.LogLevel = v.GetString(KeyLogLevel)
	}

	return nil
}
