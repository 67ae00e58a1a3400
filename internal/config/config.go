// Package config loads runtime settings from a .env file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/h0rv/ghra/internal/auth"
	"github.com/joho/godotenv"
)

// Environment variables recognized besides GITHUB_TOKEN.
const (
	EnvTimeout = "GHRA_TIMEOUT"
	EnvProbe   = "GHRA_PROBE"
	EnvLogFile = "GHRA_LOG_FILE"
)

// Defaults applied when neither the environment nor flags set a value.
const (
	DefaultTimeout = 10 * time.Second
	DefaultProbe   = "auto"
	DefaultRepo    = "facebook/react"
)

type Config struct {
	// GitHubToken is optional; empty means unauthenticated access.
	GitHubToken string

	// Timeout bounds every outbound API call.
	Timeout time.Duration

	// Probe selects the file existence check backend: auto, rest or graphql.
	Probe string

	// LogFile receives structured logs. Empty disables logging.
	LogFile string
}

// Load reads .env files (a missing file is fine) and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	token, err := auth.Resolve(&auth.EnvProvider{})
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		GitHubToken: token,
		Timeout:     DefaultTimeout,
		Probe:       strings.ToLower(strings.TrimSpace(os.Getenv(EnvProbe))),
		LogFile:     os.Getenv(EnvLogFile),
	}

	if raw := strings.TrimSpace(os.Getenv(EnvTimeout)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvTimeout, raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be positive", EnvTimeout, raw)
		}
		cfg.Timeout = d
	}

	if cfg.Probe == "" {
		cfg.Probe = DefaultProbe
	}

	return cfg, nil
}
