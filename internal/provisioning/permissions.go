package provisioning

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/visvarb/tplink-deco-poller/internal/config"
)

// chown is swapped in tests, which do not run as root.
var chown = os.Chown

// Everything under the base directory belongs to root.
const (
	rootUID = 0
	rootGID = 0
)

// PermissionsStep reconciles ownership and permissions across the
// installation tree: root:root everywhere, directories traversable,
// the shell script executable, and the credentials file readable by
// root only. It runs on every bootstrap so a drifted tree is healed.
type PermissionsStep struct{}

// Name implements Step.
func (s *PermissionsStep) Name() string { return "Set permissions" }

// Provision implements Step.
func (s *PermissionsStep) Provision(ctx *Context) error {
	ctx.Reporter.Info("Setting proper permissions...")

	if err := chownTree(ctx.Config.BaseDir); err != nil {
		return fmt.Errorf("failed to set ownership: %w", err)
	}

	for _, dir := range []string{ctx.Config.BaseDir, ctx.Config.LogDir()} {
		if err := os.Chmod(dir, config.DirMode); err != nil {
			return fmt.Errorf("failed to set mode on %s: %w", dir, err)
		}
	}

	// The virtual environment and its interpreter may not exist yet;
	// applyMode skips missing paths.
	if err := applyMode(ctx.Runtime.Dir(), config.DirMode); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", ctx.Runtime.Dir(), err)
	}
	if err := applyMode(ctx.Runtime.Python(), 0o755); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", ctx.Runtime.Python(), err)
	}

	for _, name := range ctx.Config.Artifacts {
		path := filepath.Join(ctx.Config.BaseDir, name)
		if err := applyMode(path, config.ArtifactMode(name)); err != nil {
			return fmt.Errorf("failed to set mode on %s: %w", path, err)
		}
	}
	if err := applyMode(ctx.Config.EnvFile(), config.EnvFileMode); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", ctx.Config.EnvFile(), err)
	}

	ctx.Reporter.Success("Permissions set correctly")
	return nil
}

// chownTree assigns the whole installation tree to root.
func chownTree(root string) error {
	return filepath.WalkDir(root, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return chown(path, rootUID, rootGID)
	})
}

// applyMode sets the mode on path, skipping paths that do not exist.
func applyMode(path string, mode fs.FileMode) error {
	if err := os.Chmod(path, mode); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
