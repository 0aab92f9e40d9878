package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/winebuild/internal/core/domain"
	"go.trai.ch/winebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Locator = (*Locator)(nil)

// Locator implements ports.Locator using filepath.Glob.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// ResolveOne resolves pattern relative to root and returns the single
// directory it matches. The original pipeline silently operated on whatever
// a shell wildcard expanded to; here zero matches and multiple matches are
// both hard errors.
func (l *Locator) ResolveOne(root, pattern string) (string, error) {
	full := pattern
	if !filepath.IsAbs(full) {
		full = filepath.Join(root, pattern)
	}

	matches, err := filepath.Glob(full)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve pattern"), "pattern", full)
	}

	dirs := make([]string, 0, len(matches))
	for _, match := range matches {
		info, statErr := os.Stat(match)
		if statErr != nil {
			continue
		}
		if info.IsDir() {
			dirs = append(dirs, match)
		}
	}
	sort.Strings(dirs)

	switch len(dirs) {
	case 1:
		return dirs[0], nil
	case 0:
		return "", zerr.With(zerr.Wrap(domain.ErrNoMatch, "resolving pattern"), "pattern", full)
	default:
		err := zerr.With(zerr.Wrap(domain.ErrAmbiguousMatch, "resolving pattern"), "pattern", full)
		return "", zerr.With(err, "matches", strings.Join(dirs, ", "))
	}
}
