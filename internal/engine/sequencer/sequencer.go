// Package sequencer implements the pipeline execution engine.
package sequencer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/winebuild/internal/core/domain"
	"go.trai.ch/winebuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Sequencer executes the steps of a build plan in dependency order.
// A failed step aborts all of its transitive dependents; independent steps
// already in flight run to completion.
type Sequencer struct {
	runner     ports.ScriptRunner
	locator    ports.Locator
	normalizer ports.TimestampNormalizer
	hasher     ports.Hasher
	store      ports.ReportStore
	telemetry  ports.Telemetry

	mu     sync.RWMutex
	status map[domain.InternedString]domain.StepStatus
}

// NewSequencer creates a new Sequencer.
func NewSequencer(
	runner ports.ScriptRunner,
	locator ports.Locator,
	normalizer ports.TimestampNormalizer,
	hasher ports.Hasher,
	store ports.ReportStore,
	telemetry ports.Telemetry,
) *Sequencer {
	return &Sequencer{
		runner:     runner,
		locator:    locator,
		normalizer: normalizer,
		hasher:     hasher,
		store:      store,
		telemetry:  telemetry,
		status:     make(map[domain.InternedString]domain.StepStatus),
	}
}

// Status returns the current status of a step.
func (s *Sequencer) Status(name domain.InternedString) domain.StepStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status[name]
}

func (s *Sequencer) setStatus(name domain.InternedString, status domain.StepStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[name] = status
}

type result struct {
	step domain.InternedString
	err  error
}

// Run executes the plan's pipeline with the given parallelism.
// It validates the pipeline first and returns the joined errors of all
// failed steps.
func (s *Sequencer) Run(ctx context.Context, plan *domain.Plan, parallelism int) error {
	pipeline := plan.Pipeline
	if err := pipeline.Validate(); err != nil {
		return err
	}
	if parallelism < 1 {
		parallelism = 1
	}

	stepCount := pipeline.StepCount()
	steps := make(map[domain.InternedString]domain.Step, stepCount)
	inDegree := make(map[domain.InternedString]int, stepCount)

	s.mu.Lock()
	s.status = make(map[domain.InternedString]domain.StepStatus, stepCount)
	s.mu.Unlock()

	for step := range pipeline.Walk() {
		steps[step.Name] = step
		inDegree[step.Name] = len(step.DependsOn)
		s.setStatus(step.Name, domain.StatusPending)
	}

	var ready []domain.InternedString
	for step := range pipeline.Walk() {
		if inDegree[step.Name] == 0 {
			ready = append(ready, step.Name)
		}
	}

	results := make(chan result, stepCount)
	var g errgroup.Group
	g.SetLimit(parallelism)

	remaining := stepCount
	var errs error

	for remaining > 0 {
		if err := ctx.Err(); err != nil {
			errs = errors.Join(errs, err)
			break
		}

		for len(ready) > 0 {
			name := ready[0]
			ready = ready[1:]

			step := steps[name]
			s.setStatus(name, domain.StatusRunning)

			g.Go(func() error {
				results <- result{step: step.Name, err: s.runStep(ctx, &step, plan)}
				return nil
			})
		}

		res := <-results
		remaining--

		if res.err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(res.err, "step failed"), "step", res.step.String()))
			s.setStatus(res.step, domain.StatusFailed)
			remaining -= s.skipDependents(pipeline, res.step)
			continue
		}

		s.setStatus(res.step, domain.StatusCompleted)
		for _, dependent := range pipeline.Dependents(res.step) {
			inDegree[dependent]--
			if inDegree[dependent] == 0 && s.Status(dependent) == domain.StatusPending {
				ready = append(ready, dependent)
			}
		}
	}

	// The results channel is buffered for every step, so in-flight workers
	// never block after an abort.
	_ = g.Wait()

	return errs
}

// skipDependents marks the transitive dependents of a failed step as skipped
// and records their reports. It returns the number of steps skipped.
func (s *Sequencer) skipDependents(pipeline *domain.Pipeline, failed domain.InternedString) int {
	skipped := 0
	queue := []domain.InternedString{failed}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		for _, dependent := range pipeline.Dependents(name) {
			if s.Status(dependent) != domain.StatusPending {
				continue
			}
			s.setStatus(dependent, domain.StatusSkipped)
			skipped++

			_ = s.store.Put(domain.StepReport{
				StepName:  dependent.String(),
				Status:    domain.StatusSkipped,
				Timestamp: time.Now(),
				Error:     "dependency failed: " + name.String(),
			})

			queue = append(queue, dependent)
		}
	}

	return skipped
}

func (s *Sequencer) runStep(ctx context.Context, step *domain.Step, plan *domain.Plan) error {
	env := plan.Environment.Render()
	ctx, vtx := s.telemetry.Record(ctx, step.Name.String())

	start := time.Now()
	var runErr error
	switch step.Kind {
	case domain.KindNormalize:
		runErr = s.normalizeStep(ctx, step, plan, vtx)
	default:
		runErr = s.runner.Run(ctx, step, plan.Layout.Root, env, vtx.Stdout(), vtx.Stderr())
	}
	vtx.Complete(runErr)

	if reportErr := s.record(step, plan, env, start, runErr); runErr == nil {
		return reportErr
	}
	return runErr
}

// normalizeStep resolves the step's pattern inside the Wine prefix and
// rewrites every timestamp under the single matching directory.
func (s *Sequencer) normalizeStep(ctx context.Context, step *domain.Step, plan *domain.Plan, vtx ports.Vertex) error {
	dir, err := s.locator.ResolveOne(plan.Environment.WinePrefix, step.Pattern.String())
	if err != nil {
		return err
	}

	count, err := s.normalizer.Normalize(ctx, dir, domain.NormalizeInstant)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(vtx.Stdout(), "normalized %d entries under %s\n", count, dir)
	return nil
}

func (s *Sequencer) record(step *domain.Step, plan *domain.Plan, env []string, start time.Time, runErr error) error {
	status := domain.StatusCompleted
	errMsg := ""
	if runErr != nil {
		status = domain.StatusFailed
		errMsg = runErr.Error()
	}

	// A missing script already failed the step; fingerprinting is best effort.
	fingerprint, err := s.hasher.Fingerprint(step, env, plan.Layout.Root)
	if err != nil {
		fingerprint = ""
	}

	return s.store.Put(domain.StepReport{
		StepName:    step.Name.String(),
		Status:      status,
		Fingerprint: fingerprint,
		Duration:    time.Since(start),
		Timestamp:   start,
		Error:       errMsg,
	})
}
