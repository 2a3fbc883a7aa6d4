package provisioning

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/visvarb/tplink-deco-poller/internal/config"
)

// The fakes below stand in for the OS-facing capabilities. Each records
// the calls it sees and answers from canned fields.

type fakePackages struct {
	lastRefresh  time.Time
	hasRefreshed bool
	missing      []string
	missingErr   error
	refreshErr   error
	installErr   error

	refreshCalls int
	installed    [][]string
}

func (f *fakePackages) LastRefresh() (time.Time, bool) { return f.lastRefresh, f.hasRefreshed }

func (f *fakePackages) Refresh(context.Context) error {
	f.refreshCalls++
	return f.refreshErr
}

func (f *fakePackages) Missing(context.Context, []string) ([]string, error) {
	if f.missingErr != nil {
		return nil, f.missingErr
	}
	return f.missing, nil
}

func (f *fakePackages) Install(_ context.Context, names []string) error {
	if f.installErr != nil {
		return f.installErr
	}
	f.installed = append(f.installed, names)
	return nil
}

type fakeSource struct {
	files   map[string][]byte
	errs    map[string]error
	fetched []string
}

func (f *fakeSource) BaseURL() string { return "https://raw.test/visvarb/tplink-deco-poller/main" }

func (f *fakeSource) Fetch(_ context.Context, name string) ([]byte, error) {
	f.fetched = append(f.fetched, name)
	if err := f.errs[name]; err != nil {
		return nil, err
	}
	body, ok := f.files[name]
	if !ok {
		return nil, fmt.Errorf("fetching %s returned status 404", name)
	}
	return body, nil
}

type fakeRuntime struct {
	dir             string
	exists          bool
	createErr       error
	upgradeErr      error
	requirementsErr error
	packageErr      error

	calls []string
}

func (f *fakeRuntime) Dir() string    { return f.dir }
func (f *fakeRuntime) Python() string { return filepath.Join(f.dir, "bin", "python") }
func (f *fakeRuntime) Exists() bool   { return f.exists }

func (f *fakeRuntime) Create(context.Context) error {
	f.calls = append(f.calls, "create")
	if f.createErr == nil {
		f.exists = true
	}
	return f.createErr
}

func (f *fakeRuntime) UpgradePip(context.Context) error {
	f.calls = append(f.calls, "upgrade-pip")
	return f.upgradeErr
}

func (f *fakeRuntime) InstallRequirements(_ context.Context, manifest string) error {
	f.calls = append(f.calls, "requirements "+manifest)
	return f.requirementsErr
}

func (f *fakeRuntime) InstallPackage(_ context.Context, spec string) error {
	f.calls = append(f.calls, "package "+spec)
	return f.packageErr
}

type fakeJobs struct {
	table      string
	currentErr error
	replaceErr error

	replaceCalls int
}

func (f *fakeJobs) Current(context.Context) (string, error) {
	if f.currentErr != nil {
		return "", f.currentErr
	}
	return f.table, nil
}

func (f *fakeJobs) Replace(_ context.Context, table string) error {
	f.replaceCalls++
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.table = table
	return nil
}

// recorder collects reporter output for assertions on the operator-
// visible lines.
type recorder struct {
	lines []string
}

func (r *recorder) emit(tag, format string, args ...any) {
	r.lines = append(r.lines, tag+" "+fmt.Sprintf(format, args...))
}

func (r *recorder) Info(format string, args ...any)    { r.emit("[INFO]", format, args...) }
func (r *recorder) Success(format string, args ...any) { r.emit("[SUCCESS]", format, args...) }
func (r *recorder) Warning(format string, args ...any) { r.emit("[WARNING]", format, args...) }
func (r *recorder) Error(format string, args ...any)   { r.emit("[ERROR]", format, args...) }

func (r *recorder) output() string { return strings.Join(r.lines, "\n") }

// fixture bundles a config rooted in a temp directory with one fake per
// capability, pre-loaded so a full bootstrap sequence succeeds.
type fixture struct {
	cfg      *config.Config
	packages *fakePackages
	source   *fakeSource
	runtime  *fakeRuntime
	jobs     *fakeJobs
	out      *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := config.Default()
	cfg.BaseDir = filepath.Join(t.TempDir(), "tplink-deco")
	cfg.Timeouts = config.DefaultTimeouts()

	return &fixture{
		cfg:      cfg,
		packages: &fakePackages{},
		source: &fakeSource{files: map[string][]byte{
			"generate_hosts.py":     []byte("#!/usr/bin/env python3\nprint('hosts')\n"),
			"run_generate_hosts.sh": []byte("#!/bin/bash\nexec venv/bin/python generate_hosts.py\n"),
			"requirements.txt":      []byte("tplinkrouterc6u>=5.4.0\n"),
		}},
		runtime: &fakeRuntime{dir: cfg.VenvDir()},
		jobs:    &fakeJobs{},
		out:     &recorder{},
	}
}

// context wires the fixture into a fresh bootstrap Context, as each run
// of the sequence would.
func (f *fixture) context() *Context {
	return NewContext(context.Background(), f.cfg, f.packages, f.source, f.runtime, f.jobs, f.out)
}
