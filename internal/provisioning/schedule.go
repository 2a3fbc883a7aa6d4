package provisioning

import (
	"fmt"

	"github.com/visvarb/tplink-deco-poller/internal/platform/cron"
)

// ScheduleStep ensures the periodic generation job is in the crontab.
// Matching is by exact substring: an entry that differs only in
// whitespace or path is not recognized and gets added alongside.
type ScheduleStep struct{}

// Name implements Step.
func (s *ScheduleStep) Name() string { return "Setup cron job" }

// Provision implements Step.
func (s *ScheduleStep) Provision(ctx *Context) error {
	ctx.Reporter.Info("Setting up cron job...")

	entry := ctx.Config.CronEntry()

	table, err := ctx.Jobs.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to read crontab: %w", err)
	}

	if cron.Contains(table, entry) {
		ctx.Reporter.Info("Cron job already exists")
		return nil
	}

	if err := ctx.Jobs.Replace(ctx, cron.Append(table, entry)); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	ctx.State.CronEntryAdded = true
	ctx.Reporter.Success("Cron job added successfully")
	return nil
}
