package handlers

import (
	"context"

	"github.com/visvarb/tplink-deco-poller/internal/config"
	"github.com/visvarb/tplink-deco-poller/internal/envfile"
	"github.com/visvarb/tplink-deco-poller/internal/ui"
	"github.com/visvarb/tplink-deco-poller/internal/wizard"
)

// offerCredentials asks whether to fill in the router credentials now.
// Declining, canceling or failing here never fails the bootstrap; the
// operator can always edit the file later.
func offerCredentials(ctx context.Context, cfg *config.Config, prompter wizard.Prompter, console *ui.Console) {
	yes, err := prompter.Confirm(ctx, "Would you like to configure router credentials now?", true)
	if err != nil {
		console.Warning("Skipping credential configuration")
		return
	}
	if !yes {
		return
	}

	configureCredentials(ctx, cfg, prompter, console)
}

func configureCredentials(ctx context.Context, cfg *config.Config, prompter wizard.Prompter, console *ui.Console) {
	console.Info("Router credentials configuration...")

	if creds, err := envfile.Read(cfg.EnvFile()); err == nil && creds.Configured() {
		console.Info("Credentials appear to already be configured")
		return
	}

	gateway, password, err := prompter.Credentials(ctx)
	if err != nil {
		if wizard.Aborted(err) {
			console.Warning("Configuration interrupted, keeping template values")
		} else {
			console.Error("Failed to configure credentials: %v", err)
		}
		return
	}

	if gateway == "" {
		console.Warning("No gateway provided, keeping template values")
		return
	}
	if password == "" {
		console.Warning("No password provided, keeping template values")
		return
	}

	if err := envfile.WriteCredentials(cfg.EnvFile(), gateway, password, config.EnvFileMode); err != nil {
		console.Error("Failed to configure credentials: %v", err)
		return
	}

	console.Success("Credentials configured successfully")
}
