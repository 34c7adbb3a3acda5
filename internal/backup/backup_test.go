package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/storage"
)

// setupTestDB creates an initialized diario database holding one journal payload.
func setupTestDB(t *testing.T) string {
	dbPath := filepath.Join(t.TempDir(), "diario.db")

	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test database: %v", err)
	}
	if err := store.Set(constants.JournalEntriesKey, []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	store.Close()

	return dbPath
}

func readKey(t *testing.T, dbPath, key string) string {
	t.Helper()
	store := storage.NewSQLiteStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load %s: %v", dbPath, err)
	}
	defer store.Close()

	v, err := store.Get(key)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", key, err)
	}
	return string(v)
}

func writeKey(t *testing.T, dbPath, key, value string) {
	t.Helper()
	store := storage.NewSQLiteStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load %s: %v", dbPath, err)
	}
	defer store.Close()

	if err := store.Set(key, []byte(value)); err != nil {
		t.Fatalf("Set(%q) failed: %v", key, err)
	}
}

// tickingClock advances one second per call so every backup gets its own name.
func tickingClock() func() time.Time {
	t := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath, WithClock(tickingClock()))

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if filepath.Base(backupPath) != "diario-20260301-090001.db" {
		t.Errorf("backup name = %s", filepath.Base(backupPath))
	}
	if got := readKey(t, backupPath, constants.JournalEntriesKey); got != `[{"id":"a"}]` {
		t.Errorf("backup holds %s", got)
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath, WithClock(tickingClock()), WithMaxBackups(4))

	var created []string
	for i := 0; i < 7; i++ {
		p, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		created = append(created, p)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 4 {
		t.Fatalf("expected 4 backups after rotation, got %d", len(backups))
	}

	// The newest survive, newest first
	for i, b := range backups {
		if want := created[len(created)-1-i]; b.Path != want {
			t.Errorf("backups[%d] = %s, want %s", i, b.Path, want)
		}
	}
	if _, err := os.Stat(created[0]); !os.IsNotExist(err) {
		t.Error("oldest backup was not rotated out")
	}
}

func TestListBackups(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath, WithClock(tickingClock()))

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected 0 backups initially, got %d", len(backups))
	}

	for i := 0; i < 3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}

	// Unrelated files are ignored
	os.WriteFile(filepath.Join(mgr.GetBackupDir(), "notes.txt"), []byte("x"), 0600)
	os.WriteFile(filepath.Join(mgr.GetBackupDir(), "diario-garbage.db"), []byte("x"), 0600)

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Errorf("expected 3 backups, got %d", len(backups))
	}
	for _, b := range backups {
		if b.Path == "" || b.Size == 0 || b.Timestamp.IsZero() {
			t.Errorf("incomplete backup info: %+v", b)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath, WithClock(tickingClock()))

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	writeKey(t, dbPath, constants.JournalEntriesKey, `[{"id":"a"},{"id":"b"}]`)

	saved, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	if got := readKey(t, dbPath, constants.JournalEntriesKey); got != `[{"id":"a"}]` {
		t.Errorf("restored database holds %s", got)
	}
	if got := readKey(t, saved, constants.JournalEntriesKey); got != `[{"id":"a"},{"id":"b"}]` {
		t.Errorf("pre-restore backup holds %s", got)
	}

	backups, _ := mgr.ListBackups()
	if len(backups) != 2 {
		t.Errorf("expected 2 backups after restore, got %d", len(backups))
	}
}

func TestRestoreWithInvalidBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	invalid := filepath.Join(t.TempDir(), "invalid.db")
	if err := os.WriteFile(invalid, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to create invalid file: %v", err)
	}

	if _, err := mgr.RestoreBackup(invalid); err == nil {
		t.Error("RestoreBackup should fail for an invalid file")
	}
	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Error("RestoreBackup should fail for a missing file")
	}

	if got := readKey(t, dbPath, constants.JournalEntriesKey); got != `[{"id":"a"}]` {
		t.Errorf("database changed after failed restore: %s", got)
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	dbPath := setupTestDB(t)
	frozen := time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local)
	mgr := NewManager(dbPath, WithClock(func() time.Time { return frozen }))

	paths := map[string]bool{}
	for i := 0; i < 5; i++ {
		p, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		name := filepath.Base(p)
		if paths[name] {
			t.Errorf("duplicate backup filename: %s", name)
		}
		paths[name] = true
	}

	backups, _ := mgr.ListBackups()
	if len(backups) != 5 || filepath.Base(backups[0].Path) != "diario-20260301-090000-4.db" {
		t.Errorf("ListBackups() newest = %v", backups)
	}
}

func TestBackupWithNoDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup should fail without a database")
	}
}

func TestBackupDirectoryCreation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath, WithClock(tickingClock()))

	if mgr.GetBackupDir() != filepath.Join(filepath.Dir(dbPath), constants.BackupDirName) {
		t.Errorf("GetBackupDir() = %s", mgr.GetBackupDir())
	}
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	info, err := os.Stat(mgr.GetBackupDir())
	if err != nil || !info.IsDir() {
		t.Errorf("backup directory not created: %v", err)
	}
}
