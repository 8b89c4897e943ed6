package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Resource names. One JSON document per collection.
const (
	ResourceOrders   = "orders"
	ResourcePacks    = "packs"
	ResourceSettings = "settings"
	ResourceEvents   = "events"
	ResourceUsers    = "users"
	ResourceAccounts = "accounts"
)

// DB is the process-wide store handle, assigned by Connect. Tests point it
// at a temp directory.
var DB *FileStore

// FileStore persists each collection as one pretty-printed JSON document.
// Reads and writes are whole-document; there is no locking, so concurrent
// writers to the same resource race and the last write wins. That is the
// storage contract this service was built on.
type FileStore struct {
	dir string
}

// Connect prepares the data directory and seeds the user and order files so
// first reads see empty collections instead of missing files.
func Connect(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &FileStore{dir: dir}
	for _, resource := range []string{ResourceUsers, ResourceOrders} {
		if _, err := os.Stat(s.path(resource)); errors.Is(err, os.ErrNotExist) {
			if err := s.Save(resource, []any{}); err != nil {
				return nil, err
			}
		}
	}
	DB = s
	return s, nil
}

// NewFileStore returns a store rooted at dir without touching the global DB.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(resource string) string {
	return filepath.Join(s.dir, resource+".json")
}

// Load reads a whole resource document into v. A missing or unreadable file
// leaves v untouched, so callers get their zero value as the default.
func (s *FileStore) Load(resource string, v any) error {
	data, err := os.ReadFile(s.path(resource))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		zap.L().Error("read resource failed", zap.String("resource", resource), zap.Error(err))
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		zap.L().Error("parse resource failed", zap.String("resource", resource), zap.Error(err))
	}
	return nil
}

// Save overwrites the whole resource document with v.
func (s *FileStore) Save(resource string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", resource, err)
	}
	if err := os.WriteFile(s.path(resource), data, 0o644); err != nil {
		zap.L().Error("save resource failed", zap.String("resource", resource), zap.Error(err))
		return fmt.Errorf("save %s: %w", resource, err)
	}
	return nil
}
