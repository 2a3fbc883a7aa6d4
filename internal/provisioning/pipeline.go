package provisioning

import (
	"fmt"
	"time"
)

// Steps returns the bootstrap sequence in execution order. Order
// matters: packages must exist before the virtual environment, files
// before permissions, everything before the cron entry goes live.
func Steps() []Step {
	return []Step{
		&PrivilegesStep{},
		&ConnectivityStep{},
		&PackageRefreshStep{},
		&PackageInstallStep{},
		&DirectoriesStep{},
		&ArtifactsStep{},
		&RuntimeStep{},
		&CredentialsStep{},
		&PermissionsStep{},
		&ScheduleStep{},
	}
}

// Run executes all bootstrap steps sequentially, stopping at the first
// failure.
func Run(ctx *Context, steps []Step) error {
	start := time.Now()
	ctx.Reporter.Info("Starting bootstrap with %d steps...", len(steps))

	for i, step := range steps {
		stepStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", step.Name(), i+1, len(steps))

		ctx.Reporter.Info("[%s] starting", name)

		if err := step.Provision(ctx); err != nil {
			ctx.Reporter.Error("[%s] failed: %v", name, err)
			return fmt.Errorf("%s step failed: %w", step.Name(), err)
		}

		ctx.Reporter.Info("[%s] completed in %v", name, time.Since(stepStart).Round(time.Millisecond))
	}

	ctx.Reporter.Success("Bootstrap completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
