// Package ledger records the outcome of past verifications.
package ledger

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VerificationLedger = (*Store)(nil)

// Store implements ports.VerificationLedger using a flat JSON file keyed by
// manifest fingerprint.
type Store struct {
	path    string
	mu      sync.RWMutex
	writeMu sync.Mutex
	cache   map[string]domain.VerificationRecord
}

// NewStore creates a new ledger backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.VerificationRecord),
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
		return zerr.With(zerr.Wrap(err, "failed to read verification ledger"), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to unmarshal verification ledger"), "path", s.path)
	}

	return nil
}

func (s *Store) save() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal verification ledger")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for verification ledger"), "path", dir)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write verification ledger"), "path", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to replace verification ledger"), "path", s.path)
	}

	return nil
}

// Get retrieves the record for a manifest fingerprint.
func (s *Store) Get(fingerprint string) (*domain.VerificationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[fingerprint]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record.
func (s *Store) Put(record domain.VerificationRecord) error {
	s.mu.Lock()
	s.cache[record.Fingerprint] = record
	s.mu.Unlock()

	return s.save()
}

// Path returns the location of the ledger file.
func (s *Store) Path() string {
	return s.path
}
