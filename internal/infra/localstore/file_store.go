// Package localstore is the durable local key-value persistence backing the
// cart aggregate. Values live as individual files under a base directory;
// writes go through a temp file plus rename so a crash never leaves a
// half-written ledger.
package localstore

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"gearshop/internal/errors"
)

// FileStore implements service.CartStore.
type FileStore struct {
	dir       string
	namespace string
}

// NewFileStore creates the base directory if needed. All keys are scoped by
// the fixed namespace string.
func NewFileStore(dir, namespace string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create store directory")
	}

	return &FileStore{dir: dir, namespace: namespace}, nil
}

// Get returns the stored bytes for key, or found=false when absent.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.pathFor(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read value")
	}

	return data, true, nil
}

// Set durably stores value under key.
func (s *FileStore) Set(key string, value []byte) error {
	target := s.pathFor(key)

	tmp, err := os.CreateTemp(s.dir, "write-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return errors.Wrap(err, "failed to write value")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return errors.Wrap(err, "failed to close temp file")
	}

	return errors.Wrap(os.Rename(tmpName, target), "failed to persist value")
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.pathFor(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return errors.Wrap(err, "failed to delete value")
}

// pathFor hashes the namespaced key so arbitrary key content can never
// escape the base directory.
func (s *FileStore) pathFor(key string) string {
	sum := sha256.Sum256([]byte(s.namespace + ":" + key))

	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+".json")
}
