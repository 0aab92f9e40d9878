// Package report persists per-step run records in a flat JSON file.
package report

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/winebuild/internal/core/domain"
	"go.trai.ch/winebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultFilename is the report file created in the process working
// directory, the usual workspace root when winebuild runs next to its
// configuration. It lives outside the volatile build directories so it
// survives workspace resets.
const DefaultFilename = "winebuild_report.json"

var _ ports.ReportStore = (*Store)(nil)

// Store implements ports.ReportStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.StepReport
}

// NewStore creates a new ReportStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.StepReport),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read report store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal report store")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal report store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for report store")
	}

	//nolint:gosec // path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write report store")
	}

	return nil
}

// Get retrieves the report for a given step name.
func (s *Store) Get(stepName string) (*domain.StepReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.cache[stepName]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// Put stores the report.
func (s *Store) Put(r domain.StepReport) error {
	s.mu.Lock()
	s.cache[r.StepName] = r
	s.mu.Unlock()

	return s.save()
}
