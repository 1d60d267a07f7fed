package blob

import (
	"context"
	"os"
	"path/filepath"
)

// DirStore serves objects from a local directory tree. Keys map to
// relative paths.
type DirStore struct {
	root string
}

// OpenDir builds a directory-backed store rooted at root.
func OpenDir(root string) *DirStore {
	return &DirStore{root: root}
}

func (d *DirStore) Fetch(_ context.Context, key string) ([]byte, error) {
	body, err := os.ReadFile(filepath.Join(d.root, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (d *DirStore) Close() {}
