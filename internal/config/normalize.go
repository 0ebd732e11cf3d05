// internal/config/normalize.go
package config

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// Interface names past the kernel-side limit are truncated, not rejected.
	if len(cfg.Interface) > MaxInterfaceLen {
		cfg.Interface = cfg.Interface[:MaxInterfaceLen]
	}

	if cfg.SourcePath == "" {
		cfg.SourcePath = DefaultSourcePath
	}
}
