package handlers

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/visvarb/tplink-deco-poller/internal/config"
	"github.com/visvarb/tplink-deco-poller/internal/envfile"
	"github.com/visvarb/tplink-deco-poller/internal/ui"
	"github.com/visvarb/tplink-deco-poller/internal/wizard"
)

// runScript executes the generation script and returns its captured
// stderr. Replaced in tests.
var runScript = func(ctx context.Context, path string) (string, error) {
	var stderr bytes.Buffer
	// #nosec G204 -- path comes from the validated configuration
	cmd := exec.CommandContext(ctx, path)
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

// hostsFile is a variable so tests do not read the host's real file.
var hostsFile = "/etc/hosts"

const logTailLines = 10

// offerFirstRun asks whether to run the hosts generation immediately.
// Like the credentials prompt, nothing here can fail the bootstrap; the
// cron job will run the script within the hour anyway.
func offerFirstRun(ctx context.Context, cfg *config.Config, prompter wizard.Prompter, console *ui.Console) {
	yes, err := prompter.Confirm(ctx, "Would you like to run the hosts generation now?", true)
	if err != nil {
		console.Warning("Skipping initial generation")
		return
	}
	if !yes {
		return
	}

	runInitialGeneration(ctx, cfg, console)
}

func runInitialGeneration(ctx context.Context, cfg *config.Config, console *ui.Console) {
	console.Info("Running initial hosts generation...")

	creds, err := envfile.Read(cfg.EnvFile())
	if err != nil {
		console.Warning("Environment file not found, skipping initial generation")
		return
	}
	if !creds.Configured() {
		console.Warning("Credentials not configured, skipping initial generation")
		console.Info("Please edit %s and run: sudo %s", cfg.EnvFile(), cfg.GenerationScript())
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, cfg.Timeouts.FirstRun)
	defer cancel()

	stderr, err := runScript(runCtx, cfg.GenerationScript())
	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		console.Error("Initial generation timed out")
	case err != nil:
		console.Error("Initial generation failed")
		if trimmed := strings.TrimSpace(stderr); trimmed != "" {
			console.Error("Error: %s", trimmed)
		}
	default:
		console.Success("Initial hosts generation completed successfully")
		showGenerationLog(cfg, console)
		showHostsFile(console)
	}
}

// showGenerationLog prints the tail of the script's log file. A missing
// log is not an error; the script may log elsewhere on forks.
func showGenerationLog(cfg *config.Config, console *ui.Console) {
	data, err := os.ReadFile(cfg.OutputLog())
	if err != nil {
		return
	}

	console.Info("Generation log (last %d lines):", logTailLines)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) > logTailLines {
		lines = lines[len(lines)-logTailLines:]
	}
	for _, line := range lines {
		console.Plain("  %s", line)
	}
}

func showHostsFile(console *ui.Console) {
	data, err := os.ReadFile(hostsFile)
	if err != nil {
		return
	}

	console.Info("Updated hosts file:")
	console.Plain("  %s", strings.Repeat("=", 40))
	console.Plain("%s", strings.TrimRight(string(data), "\n"))
	console.Plain("  %s", strings.Repeat("=", 40))
}
