package provisioning

import (
	"fmt"
	"os"
)

// RuntimeStep creates the Python virtual environment and installs the
// poller's dependencies into it. The environment is created once; the
// dependency install runs on every invocation so a changed
// requirements.txt is picked up without recreating the environment.
type RuntimeStep struct{}

// Name implements Step.
func (s *RuntimeStep) Name() string { return "Setup virtual environment" }

// Provision implements Step.
func (s *RuntimeStep) Provision(ctx *Context) error {
	ctx.Reporter.Info("Setting up Python virtual environment...")

	if ctx.Runtime.Exists() {
		ctx.Reporter.Info("Virtual environment already exists at %s", ctx.Runtime.Dir())
	} else {
		ctx.Reporter.Info("Creating virtual environment at %s", ctx.Runtime.Dir())
		if err := ctx.Runtime.Create(ctx); err != nil {
			return fmt.Errorf("failed to set up virtual environment: %w", err)
		}
		ctx.State.VenvCreated = true
		ctx.Reporter.Success("Virtual environment created")
	}

	if err := ctx.Runtime.UpgradePip(ctx); err != nil {
		return fmt.Errorf("failed to set up virtual environment: %w", err)
	}

	manifest := ctx.Config.RequirementsFile()
	if _, err := os.Stat(manifest); err == nil {
		ctx.Reporter.Info("Installing packages from requirements.txt...")
		if err := ctx.Runtime.InstallRequirements(ctx, manifest); err != nil {
			return fmt.Errorf("failed to set up virtual environment: %w", err)
		}
		ctx.Reporter.Success("Packages installed successfully")
		return nil
	}

	fallback := ctx.Config.FallbackRequirement
	ctx.Reporter.Warning("Requirements file not found, installing %s directly", fallback)
	if err := ctx.Runtime.InstallPackage(ctx, fallback); err != nil {
		return fmt.Errorf("failed to set up virtual environment: %w", err)
	}
	ctx.Reporter.Success("%s installed successfully", fallback)
	return nil
}
