package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/diario/internal/models"
)

var (
	ErrMoodRequired     = errors.New("mood is required")
	ErrThoughtsRequired = errors.New("thoughts are required")
	ErrMessageRequired  = errors.New("message is required")
	ErrTimeRequired     = errors.New("time is required")
	ErrTimeInPast       = errors.New("reminder time must be in the future")
)

// ValidateEntry checks the user-supplied fields of a journal entry.
func ValidateEntry(mood, thoughts string) error {
	if strings.TrimSpace(mood) == "" {
		return ErrMoodRequired
	}
	if !models.IsValidMood(mood) {
		return fmt.Errorf("unknown mood %q (valid: %s)", mood, strings.Join(models.MoodValues(), ", "))
	}
	if strings.TrimSpace(thoughts) == "" {
		return ErrThoughtsRequired
	}
	return nil
}

// ValidateReminder checks the user-supplied fields of a reminder. New
// reminders must lie strictly after now; edits may keep a past time.
func ValidateReminder(message string, at, now time.Time, editing bool) error {
	if strings.TrimSpace(message) == "" {
		return ErrMessageRequired
	}
	if at.IsZero() {
		return ErrTimeRequired
	}
	if !editing && !at.After(now) {
		return ErrTimeInPast
	}
	return nil
}

// ConflictType represents the type of problem found in stored data
type ConflictType string

const (
	ConflictDuplicateID    ConflictType = "duplicate_id"
	ConflictUnknownMood    ConflictType = "unknown_mood"
	ConflictEmptyField     ConflictType = "empty_field"
	ConflictMissingTime    ConflictType = "missing_time"
	ConflictFutureEntry    ConflictType = "future_entry"
	ConflictDuplicateDates ConflictType = "duplicate_date"
)

// Conflict represents a problem detected in the stored collections
type Conflict struct {
	Type        ConflictType
	Description string
	IDs         []string
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No problems detected."
	}

	var b strings.Builder
	b.WriteString("Problems detected:\n")
	for _, c := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

func (vr *ValidationResult) add(t ConflictType, desc string, ids ...string) {
	vr.Conflicts = append(vr.Conflicts, Conflict{Type: t, Description: desc, IDs: ids})
}

// Validator checks loaded collections for data the stores would not produce
// themselves, such as hand-edited or imported records.
type Validator struct {
	now func() time.Time
}

type Option func(*Validator)

// WithClock sets the time future-dated entries are measured against.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

func New(opts ...Option) *Validator {
	v := &Validator{now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateEntries checks journal entries for duplicate ids and dates,
// unknown moods, empty fields and dates in the future.
func (v *Validator) ValidateEntries(entries []models.JournalEntry) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	now := v.now()

	checkDuplicateIDs(&result, "entry", len(entries), func(i int) string { return entries[i].ID })

	byDate := map[time.Time][]string{}
	for _, e := range entries {
		if e.Date.IsZero() {
			result.add(ConflictMissingTime, fmt.Sprintf("Entry %s has no date", e.ID), e.ID)
		} else {
			byDate[e.Date] = append(byDate[e.Date], e.ID)
			if e.Date.After(now) {
				result.add(ConflictFutureEntry, fmt.Sprintf("Entry %s is dated in the future (%s)", e.ID, e.Date.Format(time.RFC3339)), e.ID)
			}
		}
		if !models.IsValidMood(e.Mood) {
			result.add(ConflictUnknownMood, fmt.Sprintf("Entry %s has unknown mood %q", e.ID, e.Mood), e.ID)
		}
		if strings.TrimSpace(e.Thoughts) == "" {
			result.add(ConflictEmptyField, fmt.Sprintf("Entry %s has no thoughts", e.ID), e.ID)
		}
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	for _, d := range dates {
		if ids := byDate[d]; len(ids) > 1 {
			result.add(ConflictDuplicateDates, fmt.Sprintf("Entries share the date %s (IDs: %v)", d.Format(time.RFC3339), ids), ids...)
		}
	}

	return result
}

// ValidateReminders checks reminders for duplicate ids, empty messages and
// missing times.
func (v *Validator) ValidateReminders(reminders []models.Reminder) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	checkDuplicateIDs(&result, "reminder", len(reminders), func(i int) string { return reminders[i].ID })

	for _, r := range reminders {
		if r.Time.IsZero() {
			result.add(ConflictMissingTime, fmt.Sprintf("Reminder %s has no time", r.ID), r.ID)
		}
		if strings.TrimSpace(r.Message) == "" {
			result.add(ConflictEmptyField, fmt.Sprintf("Reminder %s has no message", r.ID), r.ID)
		}
	}

	return result
}

func checkDuplicateIDs(result *ValidationResult, kind string, n int, id func(int) string) {
	count := map[string]int{}
	var order []string
	for i := 0; i < n; i++ {
		k := id(i)
		if count[k] == 0 {
			order = append(order, k)
		}
		count[k]++
	}
	for _, k := range order {
		if count[k] > 1 {
			result.add(ConflictDuplicateID, fmt.Sprintf("Duplicate %s ID: %q (%d records)", kind, k, count[k]), k)
		}
	}
}
