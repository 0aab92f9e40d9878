package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/winebuild/internal/adapters/fs"
	"go.trai.ch/winebuild/internal/core/domain"
)

func TestLocator_ResolveOne_SingleMatch(t *testing.T) {
	prefix := t.TempDir()
	pyDir := filepath.Join(prefix, "drive_c", "python3")
	require.NoError(t, os.MkdirAll(pyDir, 0o750))

	locator := fs.NewLocator()
	got, err := locator.ResolveOne(prefix, "drive_c/python*")
	require.NoError(t, err)
	assert.Equal(t, pyDir, got)
}

func TestLocator_ResolveOne_NoMatch(t *testing.T) {
	prefix := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "drive_c"), 0o750))

	locator := fs.NewLocator()
	_, err := locator.ResolveOne(prefix, "drive_c/python*")
	assert.True(t, errors.Is(err, domain.ErrNoMatch), "got %v", err)
}

func TestLocator_ResolveOne_AmbiguousMatch(t *testing.T) {
	prefix := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "drive_c", "python3"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "drive_c", "python311"), 0o750))

	locator := fs.NewLocator()
	_, err := locator.ResolveOne(prefix, "drive_c/python*")
	assert.True(t, errors.Is(err, domain.ErrAmbiguousMatch), "got %v", err)
}

func TestLocator_ResolveOne_IgnoresFiles(t *testing.T) {
	prefix := t.TempDir()
	driveC := filepath.Join(prefix, "drive_c")
	require.NoError(t, os.MkdirAll(filepath.Join(driveC, "python3"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(driveC, "python.log"), []byte("x"), 0o600))

	locator := fs.NewLocator()
	got, err := locator.ResolveOne(prefix, "drive_c/python*")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(driveC, "python3"), got)
}

func TestLocator_ResolveOne_AbsolutePattern(t *testing.T) {
	prefix := t.TempDir()
	pyDir := filepath.Join(prefix, "python3")
	require.NoError(t, os.MkdirAll(pyDir, 0o750))

	locator := fs.NewLocator()
	got, err := locator.ResolveOne("/elsewhere", filepath.Join(prefix, "python*"))
	require.NoError(t, err)
	assert.Equal(t, pyDir, got)
}
