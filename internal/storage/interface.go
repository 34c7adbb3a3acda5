package storage

import (
	"errors"
	"strings"
)

var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrNotLoaded is returned when a backend is used before Init or Load.
	ErrNotLoaded = errors.New("storage not loaded")
)

// MemoryPath selects the in-memory backend.
const MemoryPath = ":memory:"

// Backend is a durable key/value store holding serialized collections.
type Backend interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	// Keys returns every stored key in ascending order.
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

// New picks a backend from the shape of path: ":memory:" for the memory
// store, a ".json" suffix for the JSON file store, SQLite otherwise.
func New(path string) Backend {
	switch {
	case path == MemoryPath:
		return NewMemoryStore()
	case strings.HasSuffix(strings.ToLower(path), ".json"):
		return NewJSONStore(path)
	default:
		return NewSQLiteStore(path)
	}
}
