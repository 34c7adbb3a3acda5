// Package reminders owns the reminder collection, kept in firing order.
package reminders

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/persist"
)

type Option func(*Store)

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

type Store struct {
	mu        sync.Mutex
	coll      *persist.Collection[models.Reminder]
	reminders []models.Reminder
	version   uint64
	observers persist.Observers
	newID     func() string
}

func New(c *persist.Collection[models.Reminder], opts ...Option) *Store {
	s := &Store{
		coll:  c,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.reminders = c.Load()
	sortByTime(s.reminders)
	return s
}

func sortByTime(reminders []models.Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].Time.Before(reminders[j].Time)
	})
}

func normalize(t time.Time) time.Time {
	return t.UTC().Round(0)
}

// AddReminder stores a reminder for at. Past times are accepted; rejecting
// them is up to the caller.
func (s *Store) AddReminder(message string, at time.Time) models.Reminder {
	s.mu.Lock()
	r := models.Reminder{
		ID:      s.newID(),
		Time:    normalize(at),
		Message: message,
	}
	s.reminders = append(s.reminders, r)
	sortByTime(s.reminders)
	s.commit()
	return r
}

// UpdateReminder replaces message and time of the reminder with id and
// restores time order. Unknown ids are ignored.
func (s *Store) UpdateReminder(id string, upd models.ReminderUpdate) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.reminders[i].Message = upd.Message
	s.reminders[i].Time = normalize(upd.Time)
	sortByTime(s.reminders)
	s.commit()
}

func (s *Store) DeleteReminder(id string) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.reminders = append(s.reminders[:i:i], s.reminders[i+1:]...)
	s.commit()
}

func (s *Store) indexOf(id string) int {
	for i, r := range s.reminders {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// commit expects s.mu held and releases it.
func (s *Store) commit() {
	s.version++
	s.coll.Save(s.reminders)
	s.mu.Unlock()

	s.observers.Notify()
}

// Reminders returns a copy of the collection, earliest first.
func (s *Store) Reminders() []models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Reminder(nil), s.reminders...)
}

func (s *Store) Get(id string) (models.Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.reminders[i], true
	}
	return models.Reminder{}, false
}

func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *Store) OnMutate(fn func()) (unsubscribe func()) {
	return s.observers.Add(fn)
}

// Upcoming returns up to n reminders firing at or after now. A negative n
// means no limit.
func (s *Store) Upcoming(now time.Time, n int) []models.Reminder {
	out := []models.Reminder{}
	for _, r := range s.Reminders() {
		if n >= 0 && len(out) == n {
			break
		}
		if r.IsUpcoming(now) {
			out = append(out, r)
		}
	}
	return out
}

// Due returns the reminders that fired within window before now.
func (s *Store) Due(now time.Time, window time.Duration) []models.Reminder {
	out := []models.Reminder{}
	for _, r := range s.Reminders() {
		if r.IsDue(now, window) {
			out = append(out, r)
		}
	}
	return out
}
