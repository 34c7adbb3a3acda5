package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/diario/internal/backup"
	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/errors"
	"github.com/julianstephens/diario/internal/journal"
	"github.com/julianstephens/diario/internal/logger"
	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/notifier"
	"github.com/julianstephens/diario/internal/persist"
	"github.com/julianstephens/diario/internal/reminders"
	"github.com/julianstephens/diario/internal/stats"
	"github.com/julianstephens/diario/internal/storage"
)

// Context is handed to every command's Run method.
type Context struct {
	Store     storage.Backend
	Journal   *journal.Store
	Reminders *reminders.Store
	Stats     *stats.Engine
	Location  *time.Location

	// Notifier delivers reminder notifications. Nil means the tray notifier.
	Notifier notifier.Sender

	// Clock, Out and In default to time.Now, stdout and stdin.
	Clock func() time.Time
	Out   io.Writer
	In    io.Reader
}

func NewContext(store storage.Backend, loc *time.Location) *Context {
	if loc == nil {
		loc = time.Local
	}
	return &Context{
		Store:    store,
		Location: loc,
		Clock:    time.Now,
		Out:      os.Stdout,
		In:       os.Stdin,
	}
}

// Open loads the backend and builds the stores on top of it. Calling it
// again is a no-op.
func (c *Context) Open() error {
	if c.Journal != nil {
		return nil
	}
	if err := c.Store.Load(); err != nil {
		return err
	}

	c.Journal = journal.New(
		persist.NewCollection[models.JournalEntry](c.Store, constants.JournalEntriesKey),
		journal.WithClock(c.Clock),
	)
	c.Reminders = reminders.New(
		persist.NewCollection[models.Reminder](c.Store, constants.RemindersKey),
	)
	c.Stats = stats.NewEngine(c.Journal, c.Location, stats.WithClock(c.Clock))
	return nil
}

// Now returns the current time in the configured location.
func (c *Context) Now() time.Time {
	return c.Clock().In(c.Location)
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Print(args ...any) {
	fmt.Fprint(c.Out, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// Confirm asks a yes/no question on Out and reads the answer from In.
func (c *Context) Confirm(prompt string) (bool, error) {
	c.Printf("%s [y/N]: ", prompt)
	response, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// BackupManager returns a backup manager for the database file. Only the
// SQLite backend has a file to snapshot.
func (c *Context) BackupManager() (*backup.Manager, error) {
	if _, ok := c.Store.(*storage.SQLiteStore); !ok {
		return nil, fmt.Errorf("backups are only supported for SQLite storage")
	}
	return backup.NewManager(c.Store.GetConfigPath(), backup.WithClock(c.Clock)), nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors.
func (c *Context) PerformAutomaticBackup() {
	mgr, err := c.BackupManager()
	if err != nil {
		return
	}
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveID finds the single id in ids that equals or starts with prefix.
// Prefixes shorter than constants.MinIDPrefixLen must match exactly.
func ResolveID(prefix string, ids []string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("id is required")
	}

	var matches []string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if len(prefix) >= constants.MinIDPrefixLen && strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%q: %w", prefix, errors.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q matches %d records: %w", prefix, len(matches), errors.ErrAmbiguousID)
	}
}

func (c *Context) ResolveEntry(prefix string) (models.JournalEntry, error) {
	entries := c.Journal.Entries()
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	id, err := ResolveID(prefix, ids)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("entry %w", err)
	}
	e, _ := c.Journal.Get(id)
	return e, nil
}

func (c *Context) ResolveReminder(prefix string) (models.Reminder, error) {
	rs := c.Reminders.Reminders()
	ids := make([]string, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	id, err := ResolveID(prefix, ids)
	if err != nil {
		return models.Reminder{}, fmt.Errorf("reminder %w", err)
	}
	r, _ := c.Reminders.Get(id)
	return r, nil
}

// ShortID trims an id for table output.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
