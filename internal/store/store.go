// Package store provides the blind key-value persistence contract the
// editor core depends on: JSON values by key, defaults on missing
// reads, logged-not-thrown write failures.
package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Store is a blind key-value store for JSON-serializable values.
type Store interface {
	// Get unmarshals the value for key into out and reports whether a
	// value was found. On absence or read failure, out is left
	// untouched so callers keep their defaults.
	Get(key string, out any) bool

	// Set marshals value under key, reporting false on failure.
	// Failures are logged by the implementation, never thrown.
	Set(key string, value any) bool
}

// FileStore keeps one pretty-printed JSON file per key in a directory.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

// Dir returns the backing directory, for watchers.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(key string) string {
	// Keys are internal identifiers; slashes are flattened rather
	// than treated as directories.
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string, out any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("store: read failed", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("store: corrupt value", "key", key, "err", err)
		return false
	}
	return true
}

func (s *FileStore) Set(key string, value any) bool {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		s.logger.Warn("store: marshal failed", "key", key, "err", err)
		return false
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		s.logger.Warn("store: write failed", "key", key, "err", err)
		return false
	}
	return true
}
