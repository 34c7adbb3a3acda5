package storage

import (
	"database/sql"
	"errors"

	"github.com/julianstephens/diario/internal/migration"
	"github.com/julianstephens/diario/internal/storage/sqlite"
)

// SQLiteStore wraps sqlite.Store and maps its errors onto this package's sentinels.
type SQLiteStore struct {
	store *sqlite.Store
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{store: sqlite.NewStore(path)}
}

func translate(err error) error {
	switch {
	case errors.Is(err, sqlite.ErrKeyNotFound):
		return ErrKeyNotFound
	case errors.Is(err, sqlite.ErrNotLoaded):
		return ErrNotLoaded
	}
	return err
}

func (s *SQLiteStore) Init() error           { return s.store.Init() }
func (s *SQLiteStore) Load() error           { return s.store.Load() }
func (s *SQLiteStore) Close() error          { return s.store.Close() }
func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }
func (s *SQLiteStore) GetDB() *sql.DB        { return s.store.GetDB() }

func (s *SQLiteStore) Get(key string) ([]byte, error) {
	v, err := s.store.Get(key)
	return v, translate(err)
}

func (s *SQLiteStore) Set(key string, value []byte) error {
	return translate(s.store.Set(key, value))
}

func (s *SQLiteStore) Delete(key string) error {
	return translate(s.store.Delete(key))
}

func (s *SQLiteStore) Keys() ([]string, error) {
	keys, err := s.store.Keys()
	return keys, translate(err)
}

func (s *SQLiteStore) MigrationStatus() (migration.Status, error) {
	st, err := s.store.MigrationStatus()
	return st, translate(err)
}

func (s *SQLiteStore) Migrate(logFn func(string)) (int, error) {
	n, err := s.store.Migrate(logFn)
	return n, translate(err)
}
