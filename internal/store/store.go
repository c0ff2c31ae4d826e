package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Store persists one JSON file per entity collection under a data directory.
// Writes go through a temp file and an atomic rename, guarded by a per-file
// advisory lock, so a crash mid-write never truncates a collection and
// concurrent read-modify-write cycles do not lose updates.
type Store struct {
	dataDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{
		dataDir: dataDir,
		locks:   make(map[string]*sync.Mutex),
	}, nil
}

// Path returns the on-disk location of a collection file.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dataDir, name+".json")
}

func (s *Store) lockFor(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// LoadInto reads a collection into v. A missing or unparsable file leaves v
// at its zero value and reports no error.
func (s *Store) LoadInto(name string, v any) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()
	return s.loadInto(name, v)
}

// Save serializes v with stable indentation and atomically replaces the
// collection file.
func (s *Store) Save(name string, v any) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()
	return s.save(name, v)
}

// Update runs a read-modify-write cycle under the collection lock: v is
// loaded, mutate runs, and the result is written back. Returning an error
// from mutate aborts the write.
func (s *Store) Update(name string, v any, mutate func() error) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()

	if err := s.loadInto(name, v); err != nil {
		return err
	}
	if err := mutate(); err != nil {
		return err
	}
	return s.save(name, v)
}

func (s *Store) loadInto(name string, v any) error {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		// A corrupt file degrades to empty data rather than failing the request.
		return nil
	}
	return nil
}

func (s *Store) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	dir := filepath.Dir(s.Path(name))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file for %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.Path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

// NewID returns a canonical UUIDv4 string. Legacy records carried an extra
// random suffix after the UUID; the startup migration strips those.
func NewID() string {
	return uuid.NewString()
}
