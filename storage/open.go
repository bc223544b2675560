package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	TypeFile   = "file"
	TypeSQLite = "sqlite"
	TypeMemory = "memory"
)

// KV is the surface every store in this package provides.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Close() error
}

// Open returns the store named by kind. path is a directory for file
// stores and a database file for sqlite; memory ignores it.
func Open(kind, path string, log zerolog.Logger) (KV, error) {
	switch kind {
	case TypeMemory:
		return NewMemory(), nil
	case TypeFile:
		return NewFile(path, log)
	case TypeSQLite:
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		return NewSQLite(path, log)
	default:
		return nil, fmt.Errorf("unknown storage type %q", kind)
	}
}
