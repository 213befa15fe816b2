// Package kvstore is a small persistent key/value store. Values are stored as
// JSON documents, one file per key, on an afero filesystem.
//
// Failures are logged and reported as false; callers treat the store as best
// effort.
package kvstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

const ext = ".json"

// Store persists JSON values under string keys.
type Store struct {
	mu  sync.Mutex
	fs  afero.Fs
	dir string
}

// New creates a store rooted at dir on fs.
func New(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// Save serialises v under key.
func (s *Store) Save(key string, v any) bool {
	path, ok := s.path(key)
	if !ok {
		return false
	}
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("kvstore: failed to encode value", "key", key, "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		slog.Error("kvstore: failed to create directory", "dir", s.dir, "error", err)
		return false
	}
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		slog.Error("kvstore: failed to write value", "key", key, "error", err)
		return false
	}
	return true
}

// Load decodes the value stored under key into dst. A missing key returns false
// without logging.
func (s *Store) Load(key string, dst any) bool {
	path, ok := s.path(key)
	if !ok {
		return false
	}

	s.mu.Lock()
	data, err := afero.ReadFile(s.fs, path)
	s.mu.Unlock()
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("kvstore: failed to read value", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		slog.Error("kvstore: failed to decode value", "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes key. Removing a missing key succeeds.
func (s *Store) Remove(key string) bool {
	path, ok := s.path(key)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Error("kvstore: failed to remove value", "key", key, "error", err)
		return false
	}
	return true
}

// Clear removes every key.
func (s *Store) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return true
		}
		slog.Error("kvstore: failed to list values", "dir", s.dir, "error", err)
		return false
	}
	ok := true
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		if err := s.fs.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			slog.Error("kvstore: failed to remove value", "file", e.Name(), "error", err)
			ok = false
		}
	}
	return ok
}

// Keys lists the stored keys in lexical order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil
	}
	var keys []string
	for _, e := range entries {
		if name := e.Name(); !e.IsDir() && strings.HasSuffix(name, ext) {
			keys = append(keys, strings.TrimSuffix(name, ext))
		}
	}
	return keys
}

// path maps a key to its file. Keys containing path separators are rejected.
func (s *Store) path(key string) (string, bool) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		slog.Warn("kvstore: invalid key", "key", key)
		return "", false
	}
	return filepath.Join(s.dir, key+ext), true
}
