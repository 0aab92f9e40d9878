package fs

import (
	"context"
	iofs "io/fs"
	"os"
	"time"

	"go.trai.ch/winebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TimestampNormalizer = (*Normalizer)(nil)

// Normalizer implements ports.TimestampNormalizer with os.Chtimes.
type Normalizer struct {
	walker *Walker
}

// NewNormalizer creates a new Normalizer.
func NewNormalizer(walker *Walker) *Normalizer {
	return &Normalizer{walker: walker}
}

// Normalize sets atime and mtime of root and every entry below it to at.
// Directories are rewritten too: the downstream freezer stats everything.
// A walk error aborts the rewrite; a partial rewrite must never pass as a
// normalized tree.
func (n *Normalizer) Normalize(ctx context.Context, root string, at time.Time) (int, error) {
	if err := os.Chtimes(root, at, at); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to rewrite timestamp"), "path", root)
	}
	count := 1

	err := n.walker.Walk(root, func(path string, _ iofs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := os.Chtimes(path, at, at); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to rewrite timestamp"), "path", path)
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}

	return count, nil
}
