package keyvalues

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store abstracts where weight files live.
type Store interface {
	Put(name string, data []byte) error
	Get(name string) ([]byte, error)
}

// Compile-time checks to ensure the stores satisfy Store.
var _ Store = (*LocalStore)(nil)
var _ Store = (*MemoryStore)(nil)

// LocalStore implements Store using the local file system.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Put writes data to name under the store root, creating parent
// directories as needed.
func (s *LocalStore) Put(name string, data []byte) error {
	path := filepath.Join(s.root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("put %s: %w", name, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Get reads the file stored under name.
func (s *LocalStore) Get(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.root, name))
}

// MemoryStore implements Store in memory, for tests and ephemeral use.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
	}
}

// Put stores a copy of data under name.
func (s *MemoryStore) Put(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[name] = stored
	return nil
}

// Get returns the data stored under name.
func (s *MemoryStore) Get(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[name]
	if !ok {
		return nil, fmt.Errorf("blob %q not found", name)
	}
	return data, nil
}

// Save encodes weights and writes them to the store under name.
func Save(s Store, name string, weights map[string]float64, optFns ...func(o *Options)) error {
	data, err := Encode(weights, optFns...)
	if err != nil {
		return err
	}
	return s.Put(name, data)
}

// Load reads and decodes the weight mapping stored under name.
func Load(s Store, name string) (map[string]float64, error) {
	data, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
