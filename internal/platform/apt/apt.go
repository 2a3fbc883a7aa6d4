// Package apt wraps the Debian package tooling (apt and dpkg) used to
// satisfy the poller's system dependencies.
package apt

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// runCommand executes a command and returns its combined output.
// Tests replace it to avoid invoking the real package tools.
var runCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	// #nosec G204
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Manager checks and installs system packages.
type Manager struct {
	cacheMarker string
}

// NewManager returns a Manager. cacheMarker is the file whose
// modification time records the last package index refresh, normally
// /var/cache/apt/pkgcache.bin.
func NewManager(cacheMarker string) *Manager {
	return &Manager{cacheMarker: cacheMarker}
}

// LastRefresh returns when the package index was last refreshed. The
// second return value is false when that has never happened.
func (m *Manager) LastRefresh() (time.Time, bool) {
	info, err := os.Stat(m.cacheMarker)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Refresh updates the package index.
func (m *Manager) Refresh(ctx context.Context) error {
	if out, err := runCommand(ctx, "apt", "update"); err != nil {
		return fmt.Errorf("apt update failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Missing returns the subset of names that is not installed yet.
func (m *Manager) Missing(ctx context.Context, names []string) ([]string, error) {
	out, err := runCommand(ctx, "dpkg", "-l")
	if err != nil {
		return nil, fmt.Errorf("dpkg -l failed: %w", err)
	}
	return missingFrom(string(out), names), nil
}

// Install installs the named packages in one apt transaction.
func (m *Manager) Install(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	args := append([]string{"install", "-y"}, names...)
	if out, err := runCommand(ctx, "apt", args...); err != nil {
		return fmt.Errorf("apt install failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// missingFrom filters names down to those without an installed ("ii")
// entry in a dpkg listing. The trailing space keeps "python3" from
// matching the "python3-venv" line.
func missingFrom(listing string, names []string) []string {
	var missing []string
	for _, name := range names {
		if !strings.Contains(listing, "ii  "+name+" ") {
			missing = append(missing, name)
		}
	}
	return missing
}
