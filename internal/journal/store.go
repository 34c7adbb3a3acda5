// Package journal owns the journal entry collection: newest entries first,
// persisted after every change.
package journal

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/persist"
)

type Option func(*Store)

// WithClock replaces time.Now as the source of entry dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces uuid.NewString as the source of entry IDs.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

type Store struct {
	mu        sync.Mutex
	coll      *persist.Collection[models.JournalEntry]
	entries   []models.JournalEntry
	version   uint64
	observers persist.Observers
	now       func() time.Time
	newID     func() string
}

// New loads the collection and orders it newest first.
func New(c *persist.Collection[models.JournalEntry], opts ...Option) *Store {
	s := &Store{
		coll:  c,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.entries = c.Load()
	sortNewestFirst(s.entries)
	return s
}

func sortNewestFirst(entries []models.JournalEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

// AddEntry stores a new entry dated now. Required-field checks happen at
// the input boundary, not here.
func (s *Store) AddEntry(mood, thoughts string) models.JournalEntry {
	s.mu.Lock()
	entry := models.JournalEntry{
		ID:       s.newID(),
		Date:     s.uniqueDate(),
		Mood:     mood,
		Thoughts: thoughts,
	}
	s.entries = append(s.entries, entry)
	sortNewestFirst(s.entries)
	s.commit()
	return entry
}

// uniqueDate returns the current instant, nudged forward a millisecond at a
// time until no existing entry shares it. JSON keeps millisecond precision.
func (s *Store) uniqueDate() time.Time {
	d := s.now().UTC().Round(0).Truncate(time.Millisecond)
	for s.hasDate(d) {
		d = d.Add(time.Millisecond)
	}
	return d
}

func (s *Store) hasDate(d time.Time) bool {
	for _, e := range s.entries {
		if e.Date.Equal(d) {
			return true
		}
	}
	return false
}

// UpdateEntry replaces mood and thoughts of the entry with id. Unknown ids
// are ignored.
func (s *Store) UpdateEntry(id string, upd models.EntryUpdate) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.entries[i].Mood = upd.Mood
	s.entries[i].Thoughts = upd.Thoughts
	s.commit()
}

// DeleteEntry removes the entry with id. Unknown ids are ignored.
func (s *Store) DeleteEntry(id string) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	s.commit()
}

func (s *Store) indexOf(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// commit persists the collection and notifies observers. Must be called with
// s.mu held; it releases the lock before running observer callbacks so they
// can read the store.
func (s *Store) commit() {
	s.version++
	s.coll.Save(s.entries)
	s.mu.Unlock()

	s.observers.Notify()
}

// Entries returns a copy of the collection, newest first.
func (s *Store) Entries() []models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.JournalEntry(nil), s.entries...)
}

func (s *Store) Get(id string) (models.JournalEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.entries[i], true
	}
	return models.JournalEntry{}, false
}

// Version increases by one on every change to the collection.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// OnMutate registers fn to run after every change, in registration order.
func (s *Store) OnMutate(fn func()) (unsubscribe func()) {
	return s.observers.Add(fn)
}

// FilterByMood returns the entries with the given mood, newest first. An
// empty mood returns everything.
func (s *Store) FilterByMood(mood string) []models.JournalEntry {
	if mood == "" {
		return s.Entries()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.JournalEntry{}
	for _, e := range s.entries {
		if e.Mood == mood {
			out = append(out, e)
		}
	}
	return out
}

// Recent returns at most n of the newest entries.
func (s *Store) Recent(n int) []models.JournalEntry {
	entries := s.Entries()
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
