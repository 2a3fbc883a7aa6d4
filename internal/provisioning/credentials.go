package provisioning

import (
	"fmt"
	"os"

	"github.com/visvarb/tplink-deco-poller/internal/config"
	"github.com/visvarb/tplink-deco-poller/internal/envfile"
)

// CredentialsStep writes the credentials template on a fresh install.
// An existing file is never touched, whether the operator has filled it
// in or not: the step is write-once so re-running the bootstrap cannot
// wipe configured credentials.
type CredentialsStep struct{}

// Name implements Step.
func (s *CredentialsStep) Name() string { return "Create environment file" }

// Provision implements Step.
func (s *CredentialsStep) Provision(ctx *Context) error {
	path := ctx.Config.EnvFile()

	if _, err := os.Stat(path); err == nil {
		ctx.Reporter.Info("Environment file already exists: %s", path)
		return nil
	}

	ctx.Reporter.Info("Creating environment file template...")
	if err := envfile.WriteTemplate(path, config.EnvFileMode); err != nil {
		return fmt.Errorf("failed to create environment file: %w", err)
	}

	ctx.State.CredentialsCreated = true
	ctx.Reporter.Success("Created environment file template: %s", path)
	ctx.Reporter.Warning("Please edit %s and set your actual router credentials", path)
	return nil
}
