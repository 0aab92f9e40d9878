// Package shell provides the collaborator script runner.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/winebuild/internal/core/domain"
	"go.trai.ch/winebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScriptRunner = (*Runner)(nil)

// Runner implements ports.ScriptRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run invokes the step's collaborator script.
// The process environment is merged with the following priority (low to high):
//  1. os.Environ() (system base)
//  2. env (the build's reproducibility environment)
//  3. step.Environment (per-step overrides)
//
// PATH entries from env are prepended to the system PATH rather than
// replacing it.
func (r *Runner) Run(
	ctx context.Context,
	step *domain.Step,
	root string,
	env []string,
	stdout, stderr io.Writer,
) error {
	script := step.Script.String()
	if script == "" {
		return zerr.With(zerr.New("step has no script"), "step", step.Name.String())
	}
	if !filepath.IsAbs(script) {
		script = filepath.Join(root, script)
	}
	// Force path execution: a relative root can clean the script to a bare
	// name, which exec would otherwise look up in PATH.
	script, err := filepath.Abs(script)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve script path"), "step", step.Name.String())
	}

	cmd := exec.CommandContext(ctx, script) //nolint:gosec // script path comes from user configuration
	cmd.Dir = root
	cmd.Env = mergeEnvironment(os.Environ(), env, step.Environment)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	r.logger.Info("running " + step.Name.String() + " (" + step.Script.String() + ")")

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		runErr := zerr.With(zerr.Wrap(err, "script failed"), "step", step.Name.String())
		runErr = zerr.With(runErr, "script", script)
		return zerr.With(runErr, "exit_code", exitCode)
	}

	return nil
}

// mergeEnvironment merges environment variables with the defined priority.
func mergeEnvironment(sysEnv, buildEnv []string, stepEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(buildEnv)+len(stepEnv))
	var order []string

	set := func(k, v string) {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			set(k, v)
		}
	}

	for _, entry := range buildEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" {
				v += string(os.PathListSeparator) + sysPath
			}
		}
		set(k, v)
	}

	for k, v := range stepEnv {
		set(k, v)
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
