package provisioning

import (
	"context"

	"github.com/visvarb/tplink-deco-poller/internal/config"
)

// State holds the shared results of bootstrap steps.
// It is progressively populated as each step completes and is read by
// later steps and by the closing summary.
type State struct {
	// Package results
	RefreshSkipped    bool     // package index was fresh enough to skip the update
	PackagesInstalled []string // packages installed this run (nil when all were present)

	// Artifact results
	ArtifactsInstalled []string // artifacts copied into the base directory
	BackupsCreated     []string // backup files written for changed artifacts

	// Environment results
	VenvCreated        bool // virtual environment was created this run
	CredentialsCreated bool // credentials template was written this run

	// Scheduling results
	CronEntryAdded bool // entry was appended (false when already present)
}

// NewState creates an empty bootstrap state.
func NewState() *State {
	return &State{}
}

// Context wraps all dependencies and state needed by a bootstrap step.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Packages PackageManager
	Source   ArtifactSource
	Runtime  RuntimeEnv
	Jobs     JobTable
	Reporter Reporter
}

// NewContext creates a bootstrap context over the given capabilities.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	packages PackageManager,
	source ArtifactSource,
	runtime RuntimeEnv,
	jobs JobTable,
	reporter Reporter,
) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Packages: packages,
		Source:   source,
		Runtime:  runtime,
		Jobs:     jobs,
		Reporter: reporter,
	}
}
