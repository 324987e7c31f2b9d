// Package config loads agentscout configuration from config files and
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds the agentscout settings.
type Configuration struct {
	// ProbeTimeout is the per-agent version probe timeout in seconds.
	ProbeTimeout int `koanf:"probe_timeout" validate:"min=1,max=300"`
	// InstallTimeout is the installer command timeout in seconds.
	InstallTimeout int `koanf:"install_timeout" validate:"min=1,max=7200"`
	// SkipVersion disables version probing; detection reports presence only.
	SkipVersion bool `koanf:"skip_version"`
	// Plain disables spinners and other interactive output.
	Plain bool `koanf:"plain"`
	// NoColor disables ANSI colors (can also be set via NO_COLOR).
	NoColor bool `koanf:"no_color"`
}

// ProbeTimeoutDuration returns ProbeTimeout as a time.Duration.
func (c *Configuration) ProbeTimeoutDuration() time.Duration {
	return time.Duration(c.ProbeTimeout) * time.Second
}

// InstallTimeoutDuration returns InstallTimeout as a time.Duration.
func (c *Configuration) InstallTimeoutDuration() time.Duration {
	return time.Duration(c.InstallTimeout) * time.Second
}

// Load loads configuration from global, local, and environment sources.
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".agentscout", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	k.Load(env.Provider("AGENTSCOUT_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// NO_COLOR is the conventional cross-tool opt-out.
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: AGENTSCOUT_PROBE_TIMEOUT -> probe_timeout
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "AGENTSCOUT_"))
}
