package domain

import "time"

// StepKind distinguishes steps that invoke an external collaborator script
// from steps implemented inside winebuild itself.
type StepKind string

const (
	// KindScript invokes an external build script and fails on non-zero exit.
	KindScript StepKind = "script"
	// KindNormalize rewrites timestamps under a directory resolved inside the
	// Wine prefix. Workaround for the application freezer mishandling
	// non-uniform modification times in reproducible builds.
	KindNormalize StepKind = "normalize"
)

// NormalizeInstant is the fixed timestamp applied by KindNormalize steps.
// The value is arbitrary; it only has to be identical for every entry and
// stable across builds.
var NormalizeInstant = time.Date(2000, time.November, 11, 11, 11, 11, 0, time.UTC)

// Step is one unit of the build pipeline.
type Step struct {
	Name InternedString
	Kind StepKind

	// Script is the collaborator script path for KindScript steps,
	// resolved relative to the workspace root unless absolute.
	Script InternedString

	// Pattern is the wildcard matched against the Wine prefix for
	// KindNormalize steps, e.g. "drive_c/python*". It must resolve to
	// exactly one directory.
	Pattern InternedString

	// Environment holds per-step overrides applied on top of the
	// build environment.
	Environment map[string]string

	DependsOn []InternedString
}
