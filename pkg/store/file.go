package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/arbor/pkg/tree"
)

// FileStore keeps one JSON file per entry in a directory, for CLI usage.
// Entry names are hashed into the file names so any name is valid.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a file-backed store in the given directory.
// The directory is created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Save stores the tree under name as a JSON entry file.
func (s *FileStore) Save(ctx context.Context, name string, root *tree.Node) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, err := s.read(name)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	entry, err := newEntry(name, root, prev)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	path := s.path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, err
	}
	return entry, nil
}

// Load retrieves the entry stored under name.
func (s *FileStore) Load(ctx context.Context, name string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(name)
}

// List returns all stored entries ordered by name.
func (s *FileStore) List(ctx context.Context) ([]Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var infos []Info
	err := filepath.WalkDir(s.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".json") {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var entry Entry
		if err := json.Unmarshal(data, &entry); err != nil {
			// not one of ours, skip
			return nil
		}
		infos = append(infos, infoOf(&entry))
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(infos, func(a, b Info) int { return strings.Compare(a.Name, b.Name) })
	return infos, nil
}

// Delete removes the entry stored under name; missing entries are ignored.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) read(name string) (*Entry, error) {
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("corrupt entry %q: %w", name, err)
	}
	return &entry, nil
}

// path converts an entry name to a file path. The first 2 hash characters
// form a subdirectory so large stores don't put every file in one dir.
func (s *FileStore) path(name string) string {
	h := hashName(name)
	return filepath.Join(s.dir, h[:2], h[2:]+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
