// Package cron manages the invoking user's crontab through the crontab
// command.
package cron

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// runCommand executes crontab with the given arguments, feeding it
// stdin when non-nil. Tests replace it.
var runCommand = func(ctx context.Context, stdin io.Reader, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "crontab", args...)
	cmd.Stdin = stdin
	return cmd.Output()
}

// Table reads and replaces the crontab of the invoking user. The
// bootstrap runs as root, so this is root's table.
type Table struct{}

// NewTable returns a Table.
func NewTable() *Table {
	return &Table{}
}

// Current returns the current crontab content. A user without a
// crontab yields an empty string, not an error; crontab -l signals
// that case with a nonzero exit.
func (t *Table) Current(ctx context.Context) (string, error) {
	out, err := runCommand(ctx, nil, "-l")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", fmt.Errorf("crontab -l failed: %w", err)
	}
	return string(out), nil
}

// Replace installs table as the complete new crontab. crontab swaps
// the whole table in one operation, which makes the update atomic.
func (t *Table) Replace(ctx context.Context, table string) error {
	if _, err := runCommand(ctx, strings.NewReader(table), "-"); err != nil {
		return fmt.Errorf("failed to install crontab: %w", err)
	}
	return nil
}

// Contains reports whether entry already appears in table. Matching is
// exact substring match; entries differing only in whitespace are not
// recognized as duplicates.
func Contains(table, entry string) bool {
	return strings.Contains(table, entry)
}

// Append returns table with entry added as the final line, normalizing
// trailing newlines so crontab accepts the result.
func Append(table, entry string) string {
	trimmed := strings.TrimRight(table, "\n")
	if trimmed == "" {
		return entry + "\n"
	}
	return trimmed + "\n" + entry + "\n"
}
