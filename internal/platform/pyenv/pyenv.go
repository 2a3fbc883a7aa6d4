// Package pyenv manages the Python virtual environment the poller
// scripts run in.
package pyenv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// runCommand executes a command and returns its combined output.
// Tests replace it.
var runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	// #nosec G204
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Env is a virtual environment rooted at a fixed directory.
type Env struct {
	dir string
}

// New returns an Env rooted at dir. Nothing is created until Create is
// called.
func New(dir string) *Env {
	return &Env{dir: dir}
}

// Dir returns the environment root.
func (e *Env) Dir() string {
	return e.dir
}

// Python returns the interpreter inside the environment.
func (e *Env) Python() string {
	return filepath.Join(e.dir, "bin", "python")
}

func (e *Env) pip() string {
	return filepath.Join(e.dir, "bin", "pip")
}

// Exists reports whether the environment directory is present.
func (e *Env) Exists() bool {
	_, err := os.Stat(e.dir)
	return err == nil
}

// Create builds the environment with pip included.
func (e *Env) Create(ctx context.Context) error {
	if out, err := runCommand(ctx, "python3", "-m", "venv", e.dir); err != nil {
		return fmt.Errorf("failed to create virtual environment: %w: %s", err, trimOutput(out))
	}
	return nil
}

// UpgradePip upgrades pip inside the environment. Debian ships venvs
// with a pip old enough to choke on current wheels.
func (e *Env) UpgradePip(ctx context.Context) error {
	if out, err := runCommand(ctx, e.pip(), "install", "--upgrade", "pip"); err != nil {
		return fmt.Errorf("failed to upgrade pip: %w: %s", err, trimOutput(out))
	}
	return nil
}

// InstallRequirements installs every entry of a requirements manifest.
func (e *Env) InstallRequirements(ctx context.Context, manifest string) error {
	if out, err := runCommand(ctx, e.pip(), "install", "-r", manifest); err != nil {
		return fmt.Errorf("failed to install requirements: %w: %s", err, trimOutput(out))
	}
	return nil
}

// InstallPackage installs a single requirement specifier, e.g.
// "tplinkrouterc6u>=5.4.0".
func (e *Env) InstallPackage(ctx context.Context, spec string) error {
	if out, err := runCommand(ctx, e.pip(), "install", spec); err != nil {
		return fmt.Errorf("failed to install %s: %w: %s", spec, err, trimOutput(out))
	}
	return nil
}

func trimOutput(out []byte) string {
	return strings.TrimSpace(string(out))
}
