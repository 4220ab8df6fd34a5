// Package config loads tokendash configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	DefaultAPIURL          = "http://127.0.0.1:8000"
	DefaultRefreshInterval = 30 * time.Second
	DefaultRequestTimeout  = 10 * time.Second
)

// Config holds the dashboard configuration.
type Config struct {
	APIURL          string
	RefreshInterval time.Duration
	RequestTimeout  time.Duration
	AutoRefresh     bool
	LogPath         string
	SessionDir      string
}

// Load reads TOKENDASH_* variables, applies defaults and validates the result.
// Optional variables with defaults: TOKENDASH_API_URL (http://127.0.0.1:8000),
// TOKENDASH_REFRESH_INTERVAL (30s), TOKENDASH_REQUEST_TIMEOUT (10s),
// TOKENDASH_AUTO_REFRESH (false), TOKENDASH_LOG_PATH (in-memory only),
// TOKENDASH_SESSION_DIR (per-login runtime directory).
func Load() (*Config, error) {
	cfg := &Config{
		APIURL:          DefaultAPIURL,
		RefreshInterval: DefaultRefreshInterval,
		RequestTimeout:  DefaultRequestTimeout,
		SessionDir:      DefaultSessionDir(),
	}

	if v, ok := os.LookupEnv("TOKENDASH_API_URL"); ok && v != "" {
		cfg.APIURL = v
	}

	if v, ok := os.LookupEnv("TOKENDASH_REFRESH_INTERVAL"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("TOKENDASH_REFRESH_INTERVAL has invalid duration %q: %w", v, err)
		}
		cfg.RefreshInterval = parsed
	}

	if v, ok := os.LookupEnv("TOKENDASH_REQUEST_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("TOKENDASH_REQUEST_TIMEOUT has invalid duration %q: %w", v, err)
		}
		cfg.RequestTimeout = parsed
	}

	if v, ok := os.LookupEnv("TOKENDASH_AUTO_REFRESH"); ok && v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("TOKENDASH_AUTO_REFRESH has invalid boolean %q: %w", v, err)
		}
		cfg.AutoRefresh = parsed
	}

	if v, ok := os.LookupEnv("TOKENDASH_LOG_PATH"); ok {
		cfg.LogPath = v
	}

	if v, ok := os.LookupEnv("TOKENDASH_SESSION_DIR"); ok && v != "" {
		cfg.SessionDir = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate is also run after command-line overrides are applied.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("API URL %q is not valid: %w", c.APIURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("API URL %q must be an absolute http(s) URL", c.APIURL)
	}
	if c.RefreshInterval <= 0 {
		return errors.New("refresh interval must be positive")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.SessionDir == "" {
		return errors.New("session directory must not be empty")
	}
	return nil
}

// DefaultSessionDir is scoped to the current login session where the
// platform offers one, so a stored credential does not outlive it.
func DefaultSessionDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "tokendash")
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("tokendash-%d", os.Getuid()))
}
