// Package handlers implements the business logic for the CLI commands.
package handlers

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/visvarb/tplink-deco-poller/internal/config"
	"github.com/visvarb/tplink-deco-poller/internal/platform/apt"
	"github.com/visvarb/tplink-deco-poller/internal/platform/cron"
	"github.com/visvarb/tplink-deco-poller/internal/platform/github"
	"github.com/visvarb/tplink-deco-poller/internal/platform/pyenv"
	"github.com/visvarb/tplink-deco-poller/internal/provisioning"
	"github.com/visvarb/tplink-deco-poller/internal/ui"
	"github.com/visvarb/tplink-deco-poller/internal/wizard"
)

// Factory function variables - can be replaced in tests.
var (
	loadConfig = config.Load

	newPackageManager = func(cfg *config.Config) provisioning.PackageManager {
		return apt.NewManager(cfg.AptCacheMarker)
	}
	newArtifactSource = func(cfg *config.Config) provisioning.ArtifactSource {
		return github.NewClient(cfg.Repo, cfg.Branch, cfg.Timeouts.Download)
	}
	newRuntimeEnv = func(cfg *config.Config) provisioning.RuntimeEnv {
		return pyenv.New(cfg.VenvDir())
	}
	newJobTable = func() provisioning.JobTable {
		return cron.NewTable()
	}
	newPrompter = func() wizard.Prompter {
		return wizard.NewTerminal()
	}

	runSteps = provisioning.Run

	stdinIsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	stdout io.Writer = os.Stdout
)

const divider = "============================================================"

// Bootstrap runs the full provisioning sequence, then the optional
// interactive follow-ups (credential entry and a first generation run)
// when stdin is a terminal, and closes with the installation summary.
func Bootstrap(ctx context.Context) error {
	console := ui.NewConsole(stdout)

	cfg, err := loadConfig()
	if err != nil {
		console.Error("%v", err)
		return err
	}

	printBanner(cfg, console)

	bootstrapCtx := provisioning.NewContext(
		ctx,
		cfg,
		newPackageManager(cfg),
		newArtifactSource(cfg),
		newRuntimeEnv(cfg),
		newJobTable(),
		console,
	)

	if err := runSteps(bootstrapCtx, provisioning.Steps()); err != nil {
		return err
	}

	if stdinIsTerminal() {
		prompter := newPrompter()
		offerCredentials(ctx, cfg, prompter, console)
		console.Plain("")
		offerFirstRun(ctx, cfg, prompter, console)
	} else {
		console.Warning("Standard input is not a terminal, skipping interactive configuration")
	}

	showSummary(cfg, console)
	return nil
}

func printBanner(cfg *config.Config, console *ui.Console) {
	console.Plain(divider)
	console.Plain("TPLink Deco Poller Bootstrap")
	console.Plain(divider)
	console.Plain("Repository: %s", cfg.Repo)
	console.Plain("Branch: %s", cfg.Branch)
	console.Plain(divider)
}
