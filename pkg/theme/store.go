// Package theme manages the origin-wide color scheme preference.
//
// The scheme is process-wide presentation state: one component instance
// changing it must be observed by every sibling instance. Rather than an ad
// hoc side channel, the package models this as an explicit Manager with
// defined construction and teardown. The Manager persists the user's choice
// in a Store, follows the system preference through a SchemeSource when the
// choice is "auto", stamps the effective scheme onto the document root, and
// broadcasts changes to subscribers.
package theme

import (
	"encoding/json"
	"os"
	"sync"
)

// Store is an origin-scoped persistent key-value string store, the
// abstraction over whatever the host environment offers for preferences.
type Store interface {
	// Get returns the stored value and whether it is present.
	Get(key string) (string, bool)
	// Set stores a value under key.
	Set(key, value string) error
}

// MemoryStore is an in-memory Store, used in tests and ephemeral setups.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Store.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set implements Store.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

// FileStore persists preferences as a JSON object in a single file.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStore opens (or creates on first Set) the store at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		return nil, err
	}
	return s, nil
}

// Get implements Store.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set implements Store and writes the file through.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
