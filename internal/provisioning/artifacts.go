package provisioning

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Staging directory creation and the backup timestamp are replaced in
// tests.
var (
	mkdirTemp = os.MkdirTemp
	now       = time.Now
)

// backupTimestamp is the suffix layout for backups of replaced
// artifacts, e.g. generate_hosts.py.backup.20250314_150926.
const backupTimestamp = "20060102_150405"

// ArtifactsStep downloads the poller files into a private staging
// directory and installs them under the base directory. The batch is
// all-or-nothing: one failed download installs nothing. When an
// installed file would be overwritten with different content, the old
// file is first copied aside to a timestamped backup; backups are never
// cleaned up by the bootstrap.
type ArtifactsStep struct{}

// Name implements Step.
func (s *ArtifactsStep) Name() string { return "Download files from GitHub" }

// Provision implements Step.
func (s *ArtifactsStep) Provision(ctx *Context) error {
	ctx.Reporter.Info("Downloading files from GitHub...")

	staging, err := mkdirTemp("", "deco-bootstrap-")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	// The staging directory never outlives the step, success or failure.
	defer func() { _ = os.RemoveAll(staging) }()

	for _, name := range ctx.Config.Artifacts {
		ctx.Reporter.Info("Downloading %s from %s/%s", name, ctx.Source.BaseURL(), name)

		body, err := ctx.Source.Fetch(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to download %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(staging, name), body, 0o644); err != nil {
			return fmt.Errorf("failed to stage %s: %w", name, err)
		}

		ctx.Reporter.Success("Downloaded %s", name)
	}

	// Everything is staged; install in descriptor order.
	for _, name := range ctx.Config.Artifacts {
		if err := installArtifact(ctx, staging, name); err != nil {
			return err
		}
	}

	return nil
}

// installArtifact moves one staged file to its destination, copying an
// existing different file aside first. Identical content is reinstalled
// without a backup.
func installArtifact(ctx *Context, staging, name string) error {
	src := filepath.Join(staging, name)
	dst := filepath.Join(ctx.Config.BaseDir, name)

	fetched, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read staged %s: %w", name, err)
	}

	existing, err := os.ReadFile(dst)
	switch {
	case err == nil:
		if !bytes.Equal(existing, fetched) {
			backup := dst + ".backup." + now().Format(backupTimestamp)
			if err := copyFile(dst, backup); err != nil {
				return fmt.Errorf("failed to back up %s: %w", name, err)
			}
			ctx.State.BackupsCreated = append(ctx.State.BackupsCreated, backup)
			ctx.Reporter.Info("Created backup of existing %s", name)
		}
	case os.IsNotExist(err):
		// Fresh install, nothing to back up.
	default:
		return fmt.Errorf("failed to read existing %s: %w", name, err)
	}

	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("failed to install %s: %w", name, err)
	}

	ctx.State.ArtifactsInstalled = append(ctx.State.ArtifactsInstalled, name)
	ctx.Reporter.Success("Installed %s", name)
	return nil
}

// copyFile copies src to dst, carrying over the source's permission
// bits and modification time.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return err
	}
	// WriteFile applies the mode only on creation.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
