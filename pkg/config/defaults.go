package config

import (
	"os"

	"github.com/ccollicutt/fixtures/pkg/resolver"
)

// Default values for configuration.
const (
	DefaultBaseDir   = "inputs"
	DefaultExtension = resolver.DefaultExt
	DefaultTimeout   = resolver.DefaultTimeout
	DefaultRetries   = resolver.DefaultRetries
)

// Environment variable names.
const (
	EnvBaseDir = "FIXTURES_BASE_DIR"
	EnvSession = "FIXTURES_SESSION"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source:    SourceDir,
		BaseDir:   DefaultBaseDir,
		Extension: DefaultExtension,
		Remote: RemoteConfig{
			Timeout: DefaultTimeout,
			Retries: DefaultRetries,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if dir := os.Getenv(EnvBaseDir); dir != "" {
		c.BaseDir = dir
	}
	if session := os.Getenv(EnvSession); session != "" {
		c.Remote.Session = session
	}
}
