package publish

import (
	"context"
	"os"
	"path/filepath"
)

// DiskStore publishes snapshot files under a local directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the target directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

// Put writes the file below the store directory, creating intermediate
// directories. Keys escaping the directory are rejected.
func (s *DiskStore) Put(ctx context.Context, f File) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := cleanKey(f.Key)
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, f.Body, 0644)
}
