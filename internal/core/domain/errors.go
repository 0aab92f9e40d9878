package domain

import "go.trai.ch/zerr"

var (
	// ErrStepAlreadyExists is returned when adding a step whose name is taken.
	ErrStepAlreadyExists = zerr.New("step already exists")

	// ErrMissingDependency is returned when a step depends on a step that is
	// not part of the pipeline.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the step graph contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrStepNotFound is returned when a requested target step does not exist.
	ErrStepNotFound = zerr.New("step not found")

	// ErrScriptNotFound is returned by pre-validation when a collaborator
	// script is missing or not executable.
	ErrScriptNotFound = zerr.New("build script not found or not executable")

	// ErrNoMatch is returned when a wildcard pattern resolves to nothing.
	ErrNoMatch = zerr.New("pattern matched no directory")

	// ErrAmbiguousMatch is returned when a wildcard pattern that must resolve
	// to exactly one directory matches several.
	ErrAmbiguousMatch = zerr.New("pattern matched more than one directory")

	// ErrBuildExecutionFailed marks pipeline failures whose details were
	// already reported, so main can exit non-zero without double-logging.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
