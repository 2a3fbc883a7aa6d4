package provisioning

import (
	"fmt"
	"strings"
	"time"
)

// PackageRefreshStep updates the package index unless it was refreshed
// recently enough. Running apt update on every invocation makes
// repeated bootstraps needlessly slow.
type PackageRefreshStep struct{}

// Name implements Step.
func (s *PackageRefreshStep) Name() string { return "Update packages" }

// Provision implements Step.
func (s *PackageRefreshStep) Provision(ctx *Context) error {
	ctx.Reporter.Info("Checking if package update is needed...")

	if when, ok := ctx.Packages.LastRefresh(); ok {
		if time.Since(when) < ctx.Config.Timeouts.RefreshMaxAge {
			ctx.Reporter.Info("Package list was updated recently, skipping apt update")
			ctx.State.RefreshSkipped = true
			return nil
		}
	}

	ctx.Reporter.Info("Updating package lists...")
	if err := ctx.Packages.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to update packages: %w", err)
	}

	ctx.Reporter.Success("Package lists updated")
	return nil
}

// PackageInstallStep installs the required system packages that are
// missing, in a single batch.
type PackageInstallStep struct{}

// Name implements Step.
func (s *PackageInstallStep) Name() string { return "Install system dependencies" }

// Provision implements Step.
func (s *PackageInstallStep) Provision(ctx *Context) error {
	ctx.Reporter.Info("Checking system dependencies...")

	missing, err := ctx.Packages.Missing(ctx, ctx.Config.Packages)
	if err != nil {
		return fmt.Errorf("failed to check installed packages: %w", err)
	}

	missingSet := make(map[string]bool, len(missing))
	for _, name := range missing {
		missingSet[name] = true
	}
	for _, name := range ctx.Config.Packages {
		if !missingSet[name] {
			ctx.Reporter.Info("%s is already installed", name)
		}
	}

	if len(missing) == 0 {
		ctx.Reporter.Success("All required system packages are already installed")
		return nil
	}

	ctx.Reporter.Info("Installing packages: %s", strings.Join(missing, ", "))
	if err := ctx.Packages.Install(ctx, missing); err != nil {
		return fmt.Errorf("failed to install system dependencies: %w", err)
	}

	ctx.State.PackagesInstalled = missing
	ctx.Reporter.Success("System dependencies installed successfully")
	return nil
}
