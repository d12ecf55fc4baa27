// Package settings persists small client preferences such as the theme.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

var (
	// ErrKeyRequired is returned for blank keys
	ErrKeyRequired = errors.New("settings key is required")
	// ErrPathRequired is returned when a file store has no path
	ErrPathRequired = errors.New("settings file path is required")
)

// Store is a string key-value store
type Store interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool, error)
	// Set stores value under key
	Set(key, value string) error
}

// MemoryStore keeps values in memory. The zero value is ready to use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	if strings.TrimSpace(key) == "" {
		return "", false, ErrKeyRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return ErrKeyRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return nil
}

// Clear removes every value
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = nil
}

// FileStore keeps values in a JSON object file. Writes replace the file atomically.
type FileStore struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

// NewFileStore creates a store backed by path on fs. The file is created on first Set.
func NewFileStore(fs afero.Fs, path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathRequired
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileStore{fs: fs, path: path}, nil
}

// Path returns the backing file path
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get(key string) (string, bool, error) {
	if strings.TrimSpace(key) == "" {
		return "", false, ErrKeyRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return ErrKeyRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		// An unreadable file is replaced rather than blocking every future write
		values = make(map[string]string)
	}
	values[key] = value
	return s.save(values)
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return make(map[string]string), nil
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	return values, nil
}

func (s *FileStore) save(values map[string]string) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("rename tmp: %w", err)
	}
	return nil
}
