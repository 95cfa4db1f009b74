package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/fixtures/pkg/resolver"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// FromEnvironment returns the default configuration with environment
// overrides applied, for use when no config file is given.
func FromEnvironment() (*Config, error) {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors and fills in defaults.
func Validate(cfg *Config) error {
	if cfg.Source == "" {
		cfg.Source = SourceDir
	}

	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		return fmt.Errorf("extension: %q must start with a dot", cfg.Extension)
	}

	switch cfg.Source {
	case SourceDir:
		return validateBaseDir(cfg)
	case SourceHTTP:
		if err := validateRemote(&cfg.Remote); err != nil {
			return fmt.Errorf("remote: %w", err)
		}
	case SourceChain:
		if err := validateBaseDir(cfg); err != nil {
			return err
		}
		if err := validateRemote(&cfg.Remote); err != nil {
			return fmt.Errorf("remote: %w", err)
		}
	default:
		return fmt.Errorf("source: invalid type %q (must be dir, http, or chain)", cfg.Source)
	}

	return nil
}

func validateBaseDir(cfg *Config) error {
	if cfg.BaseDir == "" {
		return errors.New("base_dir: required for dir sources")
	}
	return nil
}

func validateRemote(rc *RemoteConfig) error {
	if rc.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(rc.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("url must have a host")
	}

	rc.Token = expandEnvVar(rc.Token)
	rc.Session = expandEnvVar(rc.Session)

	if rc.Timeout <= 0 {
		rc.Timeout = DefaultTimeout
	}

	if rc.Retries < 0 {
		return fmt.Errorf("retries must be >= 0, got %d", rc.Retries)
	}

	return nil
}

// Resolver builds the fixture resolver described by the configuration.
// The configuration must have passed Validate.
func (c *Config) Resolver() (resolver.Resolver, error) {
	switch c.Source {
	case SourceDir, "":
		return c.dirResolver(), nil
	case SourceHTTP:
		return c.httpResolver(), nil
	case SourceChain:
		return resolver.Chain{c.dirResolver(), c.httpResolver()}, nil
	default:
		return nil, fmt.Errorf("unknown source %q", c.Source)
	}
}

// Dir returns the directory resolver, or nil for the http source.
func (c *Config) Dir() *resolver.Dir {
	if c.Source == SourceHTTP {
		return nil
	}
	return c.dirResolver()
}

func (c *Config) dirResolver() *resolver.Dir {
	return &resolver.Dir{Base: c.BaseDir, Ext: c.Extension}
}

func (c *Config) httpResolver() *resolver.HTTP {
	h := resolver.NewHTTP(c.Remote.URL)
	h.Ext = c.Extension
	h.Token = c.Remote.Token
	h.Session = c.Remote.Session
	h.Timeout = c.Remote.Timeout
	h.Retries = c.Remote.Retries
	return h
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	// Handle ${VAR} format
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		varName := s[2 : len(s)-1]
		return os.Getenv(varName)
	}

	// Handle $VAR format (no braces)
	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		varName := s[1:]
		return os.Getenv(varName)
	}

	return s
}
