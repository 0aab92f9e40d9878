// Package workspace manages the build output directories.
package workspace

import (
	"os"

	"go.trai.ch/winebuild/internal/core/domain"
	"go.trai.ch/winebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace on the local filesystem.
type Workspace struct {
	logger ports.Logger
}

// New creates a new Workspace.
func New(logger ports.Logger) *Workspace {
	return &Workspace{logger: logger}
}

// Reset deletes and recreates the volatile directories and ensures the
// package cache directory exists. The cache survives resets so collaborator
// scripts can reuse downloaded packages.
func (w *Workspace) Reset(layout domain.Layout) error {
	for _, dir := range layout.VolatileDirs() {
		if err := os.RemoveAll(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove directory"), "dir", dir)
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create directory"), "dir", dir)
		}
	}

	cacheDir := layout.Resolve(layout.CacheDir)
	if err := os.MkdirAll(cacheDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "dir", cacheDir)
	}

	if w.logger != nil {
		w.logger.Info("workspace reset")
	}
	return nil
}

// Clean removes the volatile directories without recreating them.
// With cache set, the package cache directory is removed as well.
func (w *Workspace) Clean(layout domain.Layout, cache bool) error {
	dirs := layout.VolatileDirs()
	if cache {
		dirs = append(dirs, layout.Resolve(layout.CacheDir))
	}

	for _, dir := range dirs {
		if err := os.RemoveAll(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove directory"), "dir", dir)
		}
	}
	return nil
}
