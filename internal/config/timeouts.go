package config

import (
	"os"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	Connectivity  time.Duration // Timeout for the preflight reachability probe
	Download      time.Duration // Timeout for fetching a single artifact
	FirstRun      time.Duration // Timeout for the initial generation run
	RefreshMaxAge time.Duration // Package index age below which apt update is skipped
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - DECO_BOOTSTRAP_TIMEOUT_CONNECTIVITY (default: 10s)
//   - DECO_BOOTSTRAP_TIMEOUT_DOWNLOAD (default: 30s)
//   - DECO_BOOTSTRAP_TIMEOUT_FIRST_RUN (default: 60s)
//   - DECO_BOOTSTRAP_REFRESH_MAX_AGE (default: 1h)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Connectivity:  parseDuration("DECO_BOOTSTRAP_TIMEOUT_CONNECTIVITY", 10*time.Second),
		Download:      parseDuration("DECO_BOOTSTRAP_TIMEOUT_DOWNLOAD", 30*time.Second),
		FirstRun:      parseDuration("DECO_BOOTSTRAP_TIMEOUT_FIRST_RUN", 60*time.Second),
		RefreshMaxAge: parseDuration("DECO_BOOTSTRAP_REFRESH_MAX_AGE", time.Hour),
	}
}

// DefaultTimeouts returns the built-in timeout values, ignoring the
// environment.
func DefaultTimeouts() *Timeouts {
	return &Timeouts{
		Connectivity:  10 * time.Second,
		Download:      30 * time.Second,
		FirstRun:      60 * time.Second,
		RefreshMaxAge: time.Hour,
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}
