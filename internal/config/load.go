package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load builds the effective configuration: built-in defaults, then the
// optional config file, then environment variable overrides. The
// default config file may be absent; a file named explicitly via
// DECO_BOOTSTRAP_CONFIG must exist.
func Load() (*Config, error) {
	cfg := Default()

	path, explicit := configPath()
	// #nosec G304
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := applyFile(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No override file, defaults stand.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyEnv(cfg)
	cfg.Timeouts = LoadTimeouts()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// configPath returns the config file location and whether it was named
// explicitly through the environment.
func configPath() (string, bool) {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path, true
	}
	return DefaultConfigFile, false
}

// applyFile merges a YAML document over the configuration. Keys absent
// from the document leave the existing values untouched.
func applyFile(data []byte, cfg *Config) error {
	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if err := mapstructure.Decode(rawConfig, cfg); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	return nil
}

// applyEnv applies the environment variable overrides. They win over
// both defaults and the config file.
func applyEnv(cfg *Config) {
	if repo := os.Getenv(EnvRepo); repo != "" {
		cfg.Repo = repo
	}
	if branch := os.Getenv(EnvBranch); branch != "" {
		cfg.Branch = branch
	}
	if baseDir := os.Getenv(EnvBaseDir); baseDir != "" {
		cfg.BaseDir = baseDir
	}
}
