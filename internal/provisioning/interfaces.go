// Package provisioning implements the bootstrap sequence that turns a
// bare Debian host into a working poller installation.
//
// The sequence is an ordered list of steps, each an idempotent
// reconciliation: it inspects the host, does only the work that is
// still missing, and reports what it found. Steps run strictly in
// order and the first failure aborts the run.
//
// The OS-facing operations (package tooling, the artifact host, the
// virtual environment, the crontab) sit behind small interfaces so the
// steps can be tested against fakes.
package provisioning

import (
	"context"
	"time"
)

// Step is one gated operation in the bootstrap sequence.
type Step interface {
	// Name returns the human-readable name of this step.
	Name() string

	// Provision executes the step against the host.
	Provision(ctx *Context) error
}

// PackageManager abstracts the system package tooling.
// Implemented by internal/platform/apt.Manager.
type PackageManager interface {
	// LastRefresh returns when the package index was last refreshed;
	// ok is false when that has never happened.
	LastRefresh() (when time.Time, ok bool)

	// Refresh updates the package index.
	Refresh(ctx context.Context) error

	// Missing returns the subset of names that is not installed.
	Missing(ctx context.Context, names []string) ([]string, error)

	// Install installs the named packages in one transaction.
	Install(ctx context.Context, names []string) error
}

// ArtifactSource retrieves named files from the remote repository.
// Implemented by internal/platform/github.Client.
type ArtifactSource interface {
	// BaseURL returns the location artifacts are fetched from, for
	// reporting.
	BaseURL() string

	// Fetch downloads a single file and returns its contents.
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// RuntimeEnv manages the isolated Python environment.
// Implemented by internal/platform/pyenv.Env.
type RuntimeEnv interface {
	// Dir returns the environment root.
	Dir() string

	// Python returns the interpreter path inside the environment.
	Python() string

	// Exists reports whether the environment is already present.
	Exists() bool

	// Create builds the environment.
	Create(ctx context.Context) error

	// UpgradePip upgrades the environment's own pip.
	UpgradePip(ctx context.Context) error

	// InstallRequirements installs every entry of a requirements manifest.
	InstallRequirements(ctx context.Context, manifest string) error

	// InstallPackage installs a single requirement specifier.
	InstallPackage(ctx context.Context, spec string) error
}

// JobTable abstracts the periodic job registry.
// Implemented by internal/platform/cron.Table.
type JobTable interface {
	// Current returns the present table, empty when none exists.
	Current(ctx context.Context) (string, error)

	// Replace atomically installs a complete new table.
	Replace(ctx context.Context, table string) error
}

// Reporter emits the leveled status lines shown to the operator.
// Implemented by internal/ui.Console.
type Reporter interface {
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
}
