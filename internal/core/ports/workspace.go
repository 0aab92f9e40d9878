package ports

import "go.trai.ch/winebuild/internal/core/domain"

// Workspace manages the build output directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Reset deletes and recreates the volatile directories (build, dist) and
	// ensures the package cache directory exists. After Reset the volatile
	// directories exist and are empty regardless of their prior contents.
	Reset(layout domain.Layout) error

	// Clean removes the volatile directories without recreating them.
	// With cache set, the package cache directory is removed as well.
	Clean(layout domain.Layout, cache bool) error
}
