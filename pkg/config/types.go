// Package config provides configuration loading and validation for fixtures.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Source selects where fixtures are read from.
	Source SourceType `yaml:"source"`

	// BaseDir is the directory holding <name><extension> files.
	BaseDir string `yaml:"base_dir"`

	// Extension is appended to fixture names (including the dot).
	Extension string `yaml:"extension"`

	// Remote configures the http source.
	Remote RemoteConfig `yaml:"remote,omitempty"`
}

// SourceType represents where fixtures are resolved from.
type SourceType string

const (
	// SourceDir reads fixtures from BaseDir.
	SourceDir SourceType = "dir"
	// SourceHTTP downloads fixtures from Remote.URL.
	SourceHTTP SourceType = "http"
	// SourceChain tries BaseDir first and falls back to Remote.URL.
	SourceChain SourceType = "chain"
)

// RemoteConfig defines an HTTP endpoint serving fixtures.
type RemoteConfig struct {
	// URL is the base address; fixtures are fetched from <url>/<name><extension>.
	URL string `yaml:"url"`

	// Token is an optional bearer token. Supports $VAR and ${VAR}.
	Token string `yaml:"token,omitempty"`

	// Session is an optional session cookie value. Supports $VAR and ${VAR}.
	Session string `yaml:"session,omitempty"`

	// Timeout is the per-attempt HTTP timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Retries is how many times a failed fetch is retried.
	Retries int `yaml:"retries"`
}
