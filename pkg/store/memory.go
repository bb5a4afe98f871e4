package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/arbor/pkg/tree"
)

// MemoryStore keeps entries in a process-local map. It is intended for
// tests and ephemeral pipelines; nothing survives the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*Entry)}
}

// Save stores the tree under name.
func (s *MemoryStore) Save(ctx context.Context, name string, root *tree.Node) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := newEntry(name, root, s.entries[name])
	if err != nil {
		return nil, err
	}
	s.entries[name] = entry
	return entry, nil
}

// Load retrieves the entry stored under name.
func (s *MemoryStore) Load(ctx context.Context, name string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[name]
	if !ok {
		return nil, ErrNotFound
	}
	return entry, nil
}

// List returns all stored entries ordered by name.
func (s *MemoryStore) List(ctx context.Context) ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]Info, 0, len(s.entries))
	for _, e := range s.entries {
		infos = append(infos, infoOf(e))
	}
	slices.SortFunc(infos, func(a, b Info) int { return strings.Compare(a.Name, b.Name) })
	return infos, nil
}

// Delete removes the entry stored under name; missing entries are ignored.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, name)
	return nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// NullStore discards everything. Useful when persistence should be
// disabled without changing calling code.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() *NullStore { return &NullStore{} }

// Save validates the entry and discards it.
func (NullStore) Save(ctx context.Context, name string, root *tree.Node) (*Entry, error) {
	return newEntry(name, root, nil)
}

// Load always reports a missing entry.
func (NullStore) Load(ctx context.Context, name string) (*Entry, error) {
	return nil, ErrNotFound
}

// List always returns no entries.
func (NullStore) List(ctx context.Context) ([]Info, error) { return nil, nil }

// Delete does nothing.
func (NullStore) Delete(ctx context.Context, name string) error { return nil }

// Close does nothing.
func (NullStore) Close() error { return nil }

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
