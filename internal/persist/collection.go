// Package persist binds a typed collection to one key of a storage backend.
//
// Load and Save never fail from the caller's point of view: a missing key,
// unreadable data or a backend error all degrade to an empty collection or a
// dropped write, and the problem is logged.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/diario/internal/logger"
	"github.com/julianstephens/diario/internal/storage"
)

// Collection is a JSON-array view of the records stored under Key.
type Collection[T any] struct {
	backend storage.Backend
	key     string
}

func NewCollection[T any](backend storage.Backend, key string) *Collection[T] {
	return &Collection[T]{backend: backend, key: key}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// LoadErr reads and decodes the collection. A missing key is not an error.
func (c *Collection[T]) LoadErr() ([]T, error) {
	data, err := c.backend.Get(c.key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return []T{}, fmt.Errorf("failed to read %s: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}, fmt.Errorf("failed to decode %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Load is LoadErr with failures logged and replaced by an empty collection.
func (c *Collection[T]) Load() []T {
	items, err := c.LoadErr()
	if err != nil {
		logger.Error("Failed to load collection, starting empty", "key", c.key, "error", err)
		return []T{}
	}
	logger.Debug("Loaded collection", "key", c.key, "count", len(items))
	return items
}

// SaveErr encodes items as a JSON array and writes it under the key.
func (c *Collection[T]) SaveErr(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.backend.Set(c.key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.key, err)
	}
	return nil
}

// Save is SaveErr with failures logged and dropped.
func (c *Collection[T]) Save(items []T) {
	if err := c.SaveErr(items); err != nil {
		logger.Error("Failed to save collection", "key", c.key, "error", err)
		return
	}
	logger.Debug("Saved collection", "key", c.key, "count", len(items))
}
