// Package fs provides filesystem adapters: directory walking, wildcard
// resolution, timestamp normalization, and content fingerprinting.
package fs

import (
	iofs "io/fs"
	"path/filepath"
)

// Walker provides directory walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk visits every entry under root in lexical order, directories included,
// root itself excluded. Walk errors, an unreadable subtree included, abort
// the visit and are returned.
func (w *Walker) Walk(root string, visit func(path string, d iofs.DirEntry) error) error {
	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		return visit(path, d)
	})
}

// Files visits only the regular files under root in lexical order.
func (w *Walker) Files(root string, visit func(path string) error) error {
	return w.Walk(root, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		return visit(path)
	})
}
