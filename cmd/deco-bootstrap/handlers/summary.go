package handlers

import (
	"os"
	"path/filepath"

	"github.com/visvarb/tplink-deco-poller/internal/config"
	"github.com/visvarb/tplink-deco-poller/internal/ui"
)

// showSummary prints the closing summary: what was installed where,
// what to do next, and which files made it onto the disk.
func showSummary(cfg *config.Config, console *ui.Console) {
	console.Plain("")
	console.Plain(divider)
	console.Success("TPLink Deco Poller Bootstrap Complete!")
	console.Plain(divider)

	console.Info("Installation Summary:")
	console.Plain("  • Base directory: %s", cfg.BaseDir)
	console.Plain("  • Virtual environment: %s", cfg.VenvDir())
	console.Plain("  • Log directory: %s", cfg.LogDir())
	console.Plain("  • Configuration file: %s", cfg.EnvFile())

	console.Plain("")
	console.Plain("Next Steps:")
	console.Plain("  1. Check configuration: sudo nano %s", cfg.EnvFile())
	console.Plain("  2. Run manually: sudo %s", cfg.GenerationScript())
	console.Plain("  3. Check logs: tail -f %s", cfg.OutputLog())
	console.Plain("  4. View hosts file: cat %s", hostsFile)

	console.Plain("")
	console.Plain("Automation:")
	console.Plain("  • Scheduled via cron: %s", cfg.CronEntry())
	console.Plain("  • Check cron jobs: crontab -l")

	console.Plain("")
	console.Plain("Files Downloaded:")
	for _, name := range cfg.Artifacts {
		path := filepath.Join(cfg.BaseDir, name)
		status := "✓"
		if _, err := os.Stat(path); err != nil {
			status = "✗"
		}
		console.Plain("  %s %s", status, path)
	}

	console.Plain("")
	console.Plain(divider)
}
