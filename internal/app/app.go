// Package app implements the application layer for winebuild.
package app

import (
	"context"
	"os"

	"go.trai.ch/winebuild/internal/core/domain"
	"go.trai.ch/winebuild/internal/core/ports"
	"go.trai.ch/winebuild/internal/engine/sequencer"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	workspace    ports.Workspace
	sequencer    *sequencer.Sequencer
	store        ports.ReportStore
	hasher       ports.Hasher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	workspace ports.Workspace,
	seq *sequencer.Sequencer,
	store ports.ReportStore,
	hasher ports.Hasher,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		workspace:    workspace,
		sequencer:    seq,
		store:        store,
		hasher:       hasher,
		logger:       logger,
	}
}

// RunOptions configures a build run.
type RunOptions struct {
	// ConfigPath is the configuration file location.
	ConfigPath string
	// Targets restricts the run to the named steps and their transitive
	// dependencies. Empty means the whole pipeline.
	Targets []string
	// Parallelism bounds concurrent steps. Values below 1 mean strictly
	// sequential execution, matching the original pipeline.
	Parallelism int
}

// CleanOptions configures a workspace clean.
type CleanOptions struct {
	// Cache also removes the package download cache.
	Cache bool
}

// Run executes the build pipeline: load the plan, validate it, reset the
// workspace, verify the collaborator scripts exist, then sequence the steps.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	plan, err := a.load(opts.ConfigPath)
	if err != nil {
		return err
	}

	if len(opts.Targets) > 0 {
		targets := make([]domain.InternedString, len(opts.Targets))
		for i, t := range opts.Targets {
			targets[i] = domain.NewInternedString(t)
		}
		sub, err := plan.Pipeline.Subset(targets)
		if err != nil {
			return err
		}
		plan.Pipeline = sub
	}

	// Validate the graph and the scripts before touching the workspace, so a
	// broken configuration does not wipe the previous build's outputs.
	if err := plan.Pipeline.Validate(); err != nil {
		return err
	}
	if err := verifyScripts(plan); err != nil {
		return err
	}

	if err := a.workspace.Reset(plan.Layout); err != nil {
		return zerr.Wrap(err, "failed to reset workspace")
	}

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	if err := a.sequencer.Run(ctx, plan, parallelism); err != nil {
		a.logger.Error(err)
		return domain.ErrBuildExecutionFailed
	}

	a.summarize(plan)
	a.logger.Info("build pipeline completed")
	return nil
}

// summarize reports the provenance of the finished run: each step's recorded
// fingerprint and a combined hash of the dist tree, so two builds can be
// compared for reproducibility from the logs alone.
func (a *App) summarize(plan *domain.Plan) {
	for step := range plan.Pipeline.Walk() {
		report, err := a.store.Get(step.Name.String())
		if err != nil || report == nil {
			continue
		}
		a.logger.Info("step " + report.StepName + " " + string(report.Status) +
			" fingerprint " + report.Fingerprint)
	}

	distDir := plan.Layout.Resolve(plan.Layout.DistDir)
	hash, err := a.hasher.TreeHash(distDir)
	if err != nil {
		a.logger.Warn("failed to hash dist tree: " + err.Error())
		return
	}
	a.logger.Info("dist tree hash " + hash)
}

// Clean removes the build output directories.
func (a *App) Clean(_ context.Context, configPath string, opts CleanOptions) error {
	plan, err := a.load(configPath)
	if err != nil {
		return err
	}
	return a.workspace.Clean(plan.Layout, opts.Cache)
}

func (a *App) load(configPath string) (*domain.Plan, error) {
	plan, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return plan, nil
}

// verifyScripts checks that every collaborator script exists and is
// executable before anything runs. The original pipeline surfaced these as
// mid-build invocation failures.
func verifyScripts(plan *domain.Plan) error {
	for step := range plan.Pipeline.Walk() {
		if step.Kind != domain.KindScript {
			continue
		}

		script := plan.Layout.Resolve(step.Script.String())
		info, err := os.Stat(script)
		if err != nil || info.IsDir() || info.Mode()&0o111 == 0 {
			verr := zerr.With(zerr.Wrap(domain.ErrScriptNotFound, "verifying scripts"), "step", step.Name.String())
			return zerr.With(verr, "script", script)
		}
	}
	return nil
}
