package store

import (
	"context"
	"os"
	"path/filepath"

	"seatbook/internal/infra"
)

// FileStore keeps one file per record key under a data directory. This is
// the default driver and the closest analog to the original client's
// localStorage.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapRepoErr("failed to create store directory", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	blob, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to read state file", err)
	}
	return blob, true, nil
}

// Save writes through a temp file and renames so a crash mid-write never
// leaves a truncated record.
func (s *FileStore) Save(_ context.Context, key string, blob []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*")
	if err != nil {
		return infra.WrapRepoErr("failed to create temp state file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to write state file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to close state file", err)
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to replace state file", err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
