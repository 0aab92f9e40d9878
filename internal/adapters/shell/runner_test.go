package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/winebuild/internal/adapters/logger"
	"go.trai.ch/winebuild/internal/adapters/shell"
	"go.trai.ch/winebuild/internal/core/domain"
)

func writeScript(t *testing.T, root, name, body string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l := logger.New().(*logger.Logger)
	l.SetOutput(&bytes.Buffer{})
	return l
}

func scriptStep(name, script string) *domain.Step {
	return &domain.Step{
		Name:   domain.NewInternedString(name),
		Kind:   domain.KindScript,
		Script: domain.NewInternedString(script),
	}
}

func TestRunner_Run(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, "hello.sh", `echo "hello from $PWD"`)

	runner := shell.NewRunner(newTestLogger(t))
	var stdout, stderr bytes.Buffer

	err := runner.Run(context.Background(), scriptStep("hello", "./hello.sh"), root, nil, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "hello from "+root)
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, "boom.sh", "exit 3")

	runner := shell.NewRunner(newTestLogger(t))
	var stdout, stderr bytes.Buffer

	err := runner.Run(context.Background(), scriptStep("boom", "./boom.sh"), root, nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "script failed")
}

func TestRunner_Run_BuildEnvironment(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, "env.sh", `echo "seed=$PYTHONHASHSEED prefix=$WINEPREFIX"`)

	runner := shell.NewRunner(newTestLogger(t))
	var stdout, stderr bytes.Buffer

	env := domain.DefaultEnvironment().Render()
	err := runner.Run(context.Background(), scriptStep("env", "./env.sh"), root, env, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "seed=22")
	assert.Contains(t, stdout.String(), "prefix=/opt/wine64")
}

func TestRunner_Run_StepOverridesBuildEnvironment(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, "env.sh", `echo "seed=$PYTHONHASHSEED"`)

	step := scriptStep("env", "./env.sh")
	step.Environment = map[string]string{domain.EnvHashSeed: "99"}

	runner := shell.NewRunner(newTestLogger(t))
	var stdout, stderr bytes.Buffer

	env := domain.DefaultEnvironment().Render()
	err := runner.Run(context.Background(), step, root, env, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "seed=99")
}

func TestRunner_Run_PathPrepended(t *testing.T) {
	root := t.TempDir()
	toolDir := filepath.Join(root, "tools")
	require.NoError(t, os.MkdirAll(toolDir, 0o750))
	writeScript(t, root, "path.sh", `echo "$PATH"`)

	runner := shell.NewRunner(newTestLogger(t))
	var stdout, stderr bytes.Buffer

	err := runner.Run(context.Background(), scriptStep("path", "./path.sh"), root,
		[]string{"PATH=" + toolDir}, &stdout, &stderr)
	require.NoError(t, err)

	// Prepended, with the system PATH still behind it so sh itself resolves.
	assert.True(t, bytes.HasPrefix(bytes.TrimSpace(stdout.Bytes()), []byte(toolDir)))
	assert.Contains(t, stdout.String(), string(os.PathListSeparator))
}

func TestRunner_Run_RelativeRoot(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "hello.sh", `echo "ran from workspace"`)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	runner := shell.NewRunner(newTestLogger(t))
	var stdout, stderr bytes.Buffer

	// Root "." cleans "./hello.sh" to a bare name; the runner must still
	// execute the workspace script instead of consulting PATH.
	err = runner.Run(context.Background(), scriptStep("hello", "./hello.sh"), ".", nil, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "ran from workspace")
}

func TestRunner_Run_MissingScript(t *testing.T) {
	root := t.TempDir()

	runner := shell.NewRunner(newTestLogger(t))
	var stdout, stderr bytes.Buffer

	err := runner.Run(context.Background(), scriptStep("ghost", "./ghost.sh"), root, nil, &stdout, &stderr)
	assert.Error(t, err)
}

func TestRunner_Run_EmptyScript(t *testing.T) {
	root := t.TempDir()

	runner := shell.NewRunner(newTestLogger(t))
	var stdout, stderr bytes.Buffer

	step := &domain.Step{Name: domain.NewInternedString("empty"), Kind: domain.KindScript}
	err := runner.Run(context.Background(), step, root, nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no script")
}

func TestRunner_Run_ContextCanceled(t *testing.T) {
	root := t.TempDir()
	writeScript(t, root, "sleep.sh", "sleep 10")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := shell.NewRunner(newTestLogger(t))
	var stdout, stderr bytes.Buffer

	err := runner.Run(ctx, scriptStep("sleep", "./sleep.sh"), root, nil, &stdout, &stderr)
	assert.Error(t, err)
}
