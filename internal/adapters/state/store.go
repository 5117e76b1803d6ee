// Package state persists module reports between configuration passes.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultPath is where trim keeps its state, relative to the workspace root.
const DefaultPath = ".trim/state.json"

// Store implements ports.ReportStore using a flat JSON file keyed by module
// name.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.ModuleReport
}

// NewStore creates a ReportStore backed by the file at the given path. A
// missing or empty file is treated as an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.ModuleReport),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read state file")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal state file")
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal state file")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create state directory")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write state file")
	}

	return nil
}

// Get retrieves the report for a given module name.
func (s *Store) Get(module string) (*domain.ModuleReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report, ok := s.cache[module]
	if !ok {
		return nil, nil
	}
	return &report, nil
}

// Put stores the report, replacing any previous report for the same module.
func (s *Store) Put(report domain.ModuleReport) error {
	s.mu.Lock()
	s.cache[report.Module] = report
	s.mu.Unlock()

	return s.save()
}
