package domain

import "path/filepath"

// Layout describes the filesystem contract of a build run: which directories
// are wiped before the pipeline starts and which merely have to exist.
type Layout struct {
	// Root is the workspace root all relative paths resolve against.
	Root string

	// BuildDir and DistDir are deleted and recreated by the workspace reset.
	BuildDir string
	DistDir  string

	// CacheDir is created if missing but never wiped; it holds package
	// downloads reused across builds.
	CacheDir string
}

// DefaultLayout returns the layout of the original pipeline relative to root.
func DefaultLayout(root string) Layout {
	return Layout{
		Root:     root,
		BuildDir: "build",
		DistDir:  "dist",
		CacheDir: filepath.Join(".cache", "pip"),
	}
}

// Resolve joins path with the layout root unless it is already absolute.
func (l Layout) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.Root, path)
}

// VolatileDirs returns the absolute directories wiped by a workspace reset.
func (l Layout) VolatileDirs() []string {
	return []string{l.Resolve(l.BuildDir), l.Resolve(l.DistDir)}
}
