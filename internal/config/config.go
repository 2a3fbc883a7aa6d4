// Package config defines the settings for a bootstrap run.
//
// The built-in defaults describe the standard installation: files are
// fetched from the public poller repository and installed under
// /srv/tplink-deco. An optional YAML file and a handful of environment
// variables can override individual values, which is mainly useful for
// forks and test rigs.
package config

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

const (
	// DefaultConfigFile is consulted when DECO_BOOTSTRAP_CONFIG is unset.
	// The file is optional; built-in defaults apply when it is absent.
	DefaultConfigFile = "/etc/deco-bootstrap.yaml"

	// EnvConfigFile points Load at an alternative config file.
	EnvConfigFile = "DECO_BOOTSTRAP_CONFIG"

	// EnvRepo and EnvBranch override the source repository after any
	// config file has been applied.
	EnvRepo    = "DECO_BOOTSTRAP_REPO"
	EnvBranch  = "DECO_BOOTSTRAP_BRANCH"
	EnvBaseDir = "DECO_BOOTSTRAP_BASE_DIR"
)

const (
	// EnvFileName is the credentials file created inside the base directory.
	EnvFileName = "tplink.env"

	// EnvFileMode keeps the credentials file readable by root only.
	// The file holds the router admin password in plaintext.
	EnvFileMode fs.FileMode = 0o600

	// DirMode is applied to the base directory tree.
	DirMode fs.FileMode = 0o755
)

// Config holds all settings for a bootstrap run. Construct it with
// Default or Load; the zero value is not usable.
type Config struct {
	// Repo is the GitHub repository the poller files are fetched from,
	// in "owner/name" form.
	Repo string `mapstructure:"repo" yaml:"repo"`

	// Branch selects the ref the raw files are served from.
	Branch string `mapstructure:"branch" yaml:"branch"`

	// BaseDir is the installation root. Everything the bootstrap
	// creates lives underneath it.
	BaseDir string `mapstructure:"base_dir" yaml:"base_dir"`

	// ProbeURL is fetched once before any mutation to verify that the
	// artifact host is reachable.
	ProbeURL string `mapstructure:"probe_url" yaml:"probe_url"`

	// Schedule is the cron time spec for the periodic generation run.
	Schedule string `mapstructure:"schedule" yaml:"schedule"`

	// Packages are the system packages required by the poller scripts.
	Packages []string `mapstructure:"packages" yaml:"packages"`

	// Artifacts are the files downloaded from the repository root and
	// installed into BaseDir, by bare filename.
	Artifacts []string `mapstructure:"artifacts" yaml:"artifacts"`

	// FallbackRequirement is installed into the virtual environment
	// when the repository ships no requirements.txt.
	FallbackRequirement string `mapstructure:"fallback_requirement" yaml:"fallback_requirement"`

	// AptCacheMarker is the file whose modification time tells us when
	// the package index was last refreshed.
	AptCacheMarker string `mapstructure:"apt_cache_marker" yaml:"apt_cache_marker"`

	// Timeouts come from environment variables, not the config file.
	Timeouts *Timeouts `mapstructure:"-" yaml:"-"`
}

// Default returns the standard configuration for the public poller
// repository.
func Default() *Config {
	return &Config{
		Repo:     "visvarb/tplink-deco-poller",
		Branch:   "main",
		BaseDir:  "/srv/tplink-deco",
		ProbeURL: "https://github.com",
		Schedule: "0 * * * *",
		Packages: []string{
			"python3",
			"python3-venv",
			"python3-dev",
			"python3-pip",
			"curl",
			"wget",
			"pip",
		},
		Artifacts: []string{
			"generate_hosts.py",
			"run_generate_hosts.sh",
			"requirements.txt",
		},
		FallbackRequirement: "tplinkrouterc6u>=5.4.0",
		AptCacheMarker:      "/var/cache/apt/pkgcache.bin",
		Timeouts:            DefaultTimeouts(),
	}
}

// RawBase returns the base URL artifacts are fetched from.
func (c *Config) RawBase() string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s", c.Repo, c.Branch)
}

// VenvDir returns the virtual environment directory.
func (c *Config) VenvDir() string {
	return filepath.Join(c.BaseDir, "venv")
}

// LogDir returns the directory the generation script logs into.
func (c *Config) LogDir() string {
	return filepath.Join(c.BaseDir, "log")
}

// OutputLog returns the log file written by the generation script.
func (c *Config) OutputLog() string {
	return filepath.Join(c.LogDir(), "output.log")
}

// EnvFile returns the path of the credentials file.
func (c *Config) EnvFile() string {
	return filepath.Join(c.BaseDir, EnvFileName)
}

// RequirementsFile returns the installed requirements manifest.
func (c *Config) RequirementsFile() string {
	return filepath.Join(c.BaseDir, "requirements.txt")
}

// GenerationScript returns the installed entry point script that the
// cron job invokes.
func (c *Config) GenerationScript() string {
	return filepath.Join(c.BaseDir, "run_generate_hosts.sh")
}

// CronEntry returns the full crontab line for the periodic run.
func (c *Config) CronEntry() string {
	return c.Schedule + " " + c.GenerationScript()
}

// ArtifactMode returns the permission mode an installed artifact gets.
// Shell scripts must stay executable for cron; everything else is
// plain read-only for non-root.
func ArtifactMode(name string) fs.FileMode {
	if filepath.Ext(name) == ".sh" {
		return 0o755
	}
	return 0o644
}
