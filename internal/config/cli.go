package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultAPIURL     = "http://localhost:8080"
	DefaultAPITimeout = 10 * time.Second
)

// CLIConfig represents the catalogctl TOML configuration file.
type CLIConfig struct {
	API APIConfig `toml:"api"`
}

// APIConfig maps the catalog API connection settings.
type APIConfig struct {
	BaseURL *string `toml:"base_url"`
	Timeout *string `toml:"timeout"`
}

// LoadCLIConfig reads a TOML config from the given path. Missing file is not an error.
func LoadCLIConfig(path string) (CLIConfig, error) {
	if path == "" {
		return CLIConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return CLIConfig{}, nil
		}
		return CLIConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg CLIConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ResolveAPI returns the base URL and timeout, preferring the given overrides,
// then the file values, then the defaults. Empty overrides are ignored.
func (c CLIConfig) ResolveAPI(urlOverride string, timeoutOverride time.Duration) (string, time.Duration, error) {
	baseURL := DefaultAPIURL
	if c.API.BaseURL != nil && *c.API.BaseURL != "" {
		baseURL = *c.API.BaseURL
	}
	if urlOverride != "" {
		baseURL = urlOverride
	}

	timeout := DefaultAPITimeout
	if c.API.Timeout != nil && *c.API.Timeout != "" {
		d, err := time.ParseDuration(*c.API.Timeout)
		if err != nil {
			return "", 0, fmt.Errorf("invalid api.timeout %q: %w", *c.API.Timeout, err)
		}
		timeout = d
	}
	if timeoutOverride > 0 {
		timeout = timeoutOverride
	}
	return baseURL, timeout, nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultCLIConfigPath returns the default catalogctl TOML config path.
func DefaultCLIConfigPath() string {
	return filepath.Join(XDGConfigHome(), "catalogctl", "config.toml")
}
