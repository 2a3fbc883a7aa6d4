package provisioning

import (
	"fmt"
	"net/url"
	"os"

	"github.com/visvarb/tplink-deco-poller/internal/platform/github"
)

// geteuid is swapped in tests, which do not run as root.
var geteuid = os.Geteuid

// probe is swapped in tests.
var probe = github.Probe

// PrivilegesStep verifies the process runs as root. Every later step
// writes under /srv, /var or root's crontab, so there is no point in
// starting without it.
type PrivilegesStep struct{}

// Name implements Step.
func (s *PrivilegesStep) Name() string { return "Check privileges" }

// Provision implements Step.
func (s *PrivilegesStep) Provision(_ *Context) error {
	if geteuid() != 0 {
		return fmt.Errorf("must be run as root or with sudo")
	}
	return nil
}

// ConnectivityStep verifies the artifact host answers before any
// mutation happens. This is a gate, not a resilience layer: one probe,
// no retries.
type ConnectivityStep struct{}

// Name implements Step.
func (s *ConnectivityStep) Name() string { return "Check internet connection" }

// Provision implements Step.
func (s *ConnectivityStep) Provision(ctx *Context) error {
	ctx.Reporter.Info("Checking internet connection...")

	if err := probe(ctx, ctx.Config.ProbeURL, ctx.Config.Timeouts.Connectivity); err != nil {
		return fmt.Errorf("no internet connection or %s is not accessible: %w", probeHost(ctx.Config.ProbeURL), err)
	}

	ctx.Reporter.Success("Internet connection verified")
	return nil
}

func probeHost(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return target
	}
	return u.Host
}
