package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// placeholderRepo is the value shipped in forked copies of the poller
// before the owner fills in their own repository.
const placeholderRepo = "your-username/tplink-deco-poller"

// Validate checks the configuration for errors that would otherwise
// surface halfway through provisioning.
func (c *Config) Validate() error {
	if err := c.validateRepo(); err != nil {
		return err
	}
	if c.Branch == "" {
		return fmt.Errorf("branch is required")
	}

	if c.BaseDir == "" {
		return fmt.Errorf("base_dir is required")
	}
	if !filepath.IsAbs(c.BaseDir) {
		return fmt.Errorf("base_dir %q must be an absolute path", c.BaseDir)
	}

	if c.ProbeURL == "" {
		return fmt.Errorf("probe_url is required")
	}

	if err := c.validateSchedule(); err != nil {
		return err
	}

	if len(c.Artifacts) == 0 {
		return fmt.Errorf("at least one artifact is required")
	}
	for _, name := range c.Artifacts {
		// Artifacts are installed directly under base_dir; a name with
		// a separator would escape it.
		if name == "" || name != filepath.Base(name) {
			return fmt.Errorf("invalid artifact name %q: must be a bare filename", name)
		}
	}

	for _, pkg := range c.Packages {
		if pkg == "" {
			return fmt.Errorf("package names must not be empty")
		}
	}

	return nil
}

// validateRepo checks the repository reference, including the
// placeholder left in unconfigured forks.
func (c *Config) validateRepo() error {
	if c.Repo == "" {
		return fmt.Errorf("repo is required")
	}
	if c.Repo == placeholderRepo {
		return fmt.Errorf("repo is still set to the placeholder %q: set your repository first", placeholderRepo)
	}
	parts := strings.Split(c.Repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("invalid repo %q: must be in owner/name form", c.Repo)
	}
	return nil
}

// validateSchedule checks the cron time spec has the expected five
// fields. Field contents are left to cron itself.
func (c *Config) validateSchedule() error {
	if c.Schedule == "" {
		return fmt.Errorf("schedule is required")
	}
	if len(strings.Fields(c.Schedule)) != 5 {
		return fmt.Errorf("invalid schedule %q: expected five cron fields", c.Schedule)
	}
	return nil
}
