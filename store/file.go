package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"shopfront/domain"
)

// FileStore is a JSON file-backed implementation of domain.Storage. The
// whole key space is a single map persisted on every write, the closest
// file-system analogue of browser local storage.
type FileStore struct {
	mu     sync.RWMutex
	values map[string]string
	path   string
}

// compile-time assertion
var _ domain.Storage = (*FileStore)(nil)

// NewFileStore constructs a FileStore at the given path. If the file exists
// it will be loaded; an unreadable snapshot is discarded with a warning
// rather than treated as fatal.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		values: make(map[string]string),
		path:   path,
	}
	if err := s.loadFromFile(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) loadFromFile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// no file yet; that's fine
			return nil
		}
		return err
	}
	if len(b) == 0 {
		return nil
	}
	var values map[string]string
	if err := json.Unmarshal(b, &values); err != nil {
		slog.Warn("discarding corrupt state file", "path", s.path, "error", err)
		return nil
	}
	s.values = values
	return nil
}

func (s *FileStore) saveToFile() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.saveToFile()
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.saveToFile()
}
