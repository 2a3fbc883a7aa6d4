package provisioning

import (
	"fmt"
	"os"

	"github.com/visvarb/tplink-deco-poller/internal/config"
)

// DirectoriesStep creates the installation root and the log directory.
type DirectoriesStep struct{}

// Name implements Step.
func (s *DirectoriesStep) Name() string { return "Create directories" }

// Provision implements Step.
func (s *DirectoriesStep) Provision(ctx *Context) error {
	ctx.Reporter.Info("Creating required directories...")

	for _, dir := range []string{ctx.Config.BaseDir, ctx.Config.LogDir()} {
		if _, err := os.Stat(dir); err == nil {
			ctx.Reporter.Info("Directory already exists: %s", dir)
			continue
		}
		if err := os.MkdirAll(dir, config.DirMode); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
		ctx.Reporter.Success("Created directory: %s", dir)
	}

	return nil
}
