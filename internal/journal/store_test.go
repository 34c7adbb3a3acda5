package journal

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/persist"
	"github.com/julianstephens/diario/internal/storage"
)

// fakeClock returns a fixed instant that only moves when advanced.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("entry-%d", n)
	}
}

func setupStore(t *testing.T) (*Store, *fakeClock, storage.Backend) {
	backend := storage.NewMemoryStore()
	if err := backend.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	coll := persist.NewCollection[models.JournalEntry](backend, constants.JournalEntriesKey)
	return New(coll, WithClock(clock.Now), WithIDGenerator(sequentialIDs())), clock, backend
}

func assertNewestFirst(t *testing.T, entries []models.JournalEntry) {
	t.Helper()
	for i := 1; i < len(entries); i++ {
		if entries[i].Date.After(entries[i-1].Date) {
			t.Fatalf("entries not newest-first at %d: %v after %v", i, entries[i].Date, entries[i-1].Date)
		}
	}
}

func TestAddEntry(t *testing.T) {
	s, clock, _ := setupStore(t)

	first := s.AddEntry(models.MoodHappy, "sunny walk")
	clock.Advance(time.Hour)
	second := s.AddEntry(models.MoodTired, "long day")

	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0] != second || entries[1] != first {
		t.Errorf("Entries() = %+v, want newest first", entries)
	}
	if entries[0].Mood != models.MoodTired || entries[0].Thoughts != "long day" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if first.ID == second.ID {
		t.Error("entries share an ID")
	}
	if !first.Date.Equal(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("first.Date = %v, want clock time", first.Date)
	}
}

func TestAddEntryDistinctDates(t *testing.T) {
	s, _, _ := setupStore(t)

	// Frozen clock: every add happens at the same instant
	seen := map[time.Time]bool{}
	for i := 0; i < 5; i++ {
		e := s.AddEntry(models.MoodCalm, fmt.Sprintf("note %d", i))
		if seen[e.Date] {
			t.Fatalf("duplicate date %v", e.Date)
		}
		seen[e.Date] = true
	}

	entries := s.Entries()
	assertNewestFirst(t, entries)
	if entries[0].Thoughts != "note 4" {
		t.Errorf("newest entry = %q, want the last one added", entries[0].Thoughts)
	}
}

func TestAddEntryStripsSubMillisecond(t *testing.T) {
	s, clock, _ := setupStore(t)
	clock.t = time.Date(2026, 3, 1, 9, 0, 0, 123456789, time.FixedZone("CET", 3600))

	e := s.AddEntry(models.MoodHappy, "x")
	want := time.Date(2026, 3, 1, 8, 0, 0, 123000000, time.UTC)
	if !e.Date.Equal(want) || e.Date.Location() != time.UTC {
		t.Errorf("Date = %v, want %v in UTC", e.Date, want)
	}
}

func TestUpdateEntry(t *testing.T) {
	s, clock, _ := setupStore(t)

	a := s.AddEntry(models.MoodHappy, "a")
	clock.Advance(time.Minute)
	b := s.AddEntry(models.MoodSad, "b")

	s.UpdateEntry(a.ID, models.EntryUpdate{Mood: models.MoodEnergetic, Thoughts: "a edited"})

	entries := s.Entries()
	if entries[0].ID != b.ID || entries[1].ID != a.ID {
		t.Fatalf("update changed order: %+v", entries)
	}
	got := entries[1]
	if got.Mood != models.MoodEnergetic || got.Thoughts != "a edited" {
		t.Errorf("updated entry = %+v", got)
	}
	if !got.Date.Equal(a.Date) || got.ID != a.ID {
		t.Error("update touched id or date")
	}
}

func TestMissesLeaveCollectionUnchanged(t *testing.T) {
	tests := []struct {
		name string
		op   func(s *Store)
	}{
		{name: "update", op: func(s *Store) { s.UpdateEntry("nope", models.EntryUpdate{Mood: "x", Thoughts: "y"}) }},
		{name: "delete", op: func(s *Store) { s.DeleteEntry("nope") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, clock, _ := setupStore(t)
			s.AddEntry(models.MoodHappy, "one")
			clock.Advance(time.Second)
			s.AddEntry(models.MoodSad, "two")

			before := s.Entries()
			version := s.Version()
			notified := false
			s.OnMutate(func() { notified = true })

			tt.op(s)

			if !reflect.DeepEqual(before, s.Entries()) {
				t.Errorf("collection changed: %+v -> %+v", before, s.Entries())
			}
			if s.Version() != version {
				t.Errorf("Version() moved from %d to %d", version, s.Version())
			}
			if notified {
				t.Error("observer notified on a miss")
			}
		})
	}
}

func TestDeleteEntry(t *testing.T) {
	s, clock, _ := setupStore(t)

	a := s.AddEntry(models.MoodHappy, "a")
	clock.Advance(time.Minute)
	b := s.AddEntry(models.MoodSad, "b")
	clock.Advance(time.Minute)
	c := s.AddEntry(models.MoodCalm, "c")

	s.DeleteEntry(b.ID)

	entries := s.Entries()
	if len(entries) != 2 || entries[0].ID != c.ID || entries[1].ID != a.ID {
		t.Errorf("Entries() after delete = %+v", entries)
	}
	if _, ok := s.Get(b.ID); ok {
		t.Error("deleted entry still retrievable")
	}
}

func TestOrderingUnderMixedOperations(t *testing.T) {
	s, clock, _ := setupStore(t)

	var ids []string
	for i := 0; i < 10; i++ {
		// Jump backwards occasionally to exercise re-sorting on insert
		if i%3 == 0 {
			clock.Advance(-2 * time.Hour)
		} else {
			clock.Advance(time.Hour)
		}
		ids = append(ids, s.AddEntry(models.MoodValues()[i%len(models.Moods)], fmt.Sprint(i)).ID)
		assertNewestFirst(t, s.Entries())
	}

	s.UpdateEntry(ids[4], models.EntryUpdate{Mood: models.MoodInLove, Thoughts: "changed"})
	assertNewestFirst(t, s.Entries())
	s.DeleteEntry(ids[7])
	assertNewestFirst(t, s.Entries())
}

func TestPersistenceRoundTrip(t *testing.T) {
	s, clock, backend := setupStore(t)

	s.AddEntry(models.MoodHappy, "one")
	clock.Advance(25 * time.Hour)
	s.AddEntry(models.MoodThoughtful, "two\nlines")
	before := s.Entries()

	reloaded := New(persist.NewCollection[models.JournalEntry](backend, constants.JournalEntriesKey))
	after := reloaded.Entries()

	if len(after) != len(before) {
		t.Fatalf("reloaded %d entries, want %d", len(after), len(before))
	}
	for i := range before {
		if after[i].ID != before[i].ID || !after[i].Date.Equal(before[i].Date) ||
			after[i].Mood != before[i].Mood || after[i].Thoughts != before[i].Thoughts {
			t.Errorf("entry %d: got %+v, want %+v", i, after[i], before[i])
		}
	}
}

func TestLoadSortsStoredData(t *testing.T) {
	backend := storage.NewMemoryStore()
	backend.Init()
	backend.Set(constants.JournalEntriesKey, []byte(`[
		{"id":"old","date":"2026-01-01T10:00:00.000Z","mood":"calmo","thoughts":"old"},
		{"id":"new","date":"2026-02-01T10:00:00.000Z","mood":"felice","thoughts":"new"}
	]`))

	s := New(persist.NewCollection[models.JournalEntry](backend, constants.JournalEntriesKey))
	entries := s.Entries()
	if len(entries) != 2 || entries[0].ID != "new" {
		t.Errorf("Entries() = %+v, want newest first after load", entries)
	}
}

func TestLoadCorruptData(t *testing.T) {
	backend := storage.NewMemoryStore()
	backend.Init()
	backend.Set(constants.JournalEntriesKey, []byte(`not json`))

	s := New(persist.NewCollection[models.JournalEntry](backend, constants.JournalEntriesKey))
	if got := s.Entries(); len(got) != 0 {
		t.Errorf("Entries() = %+v, want empty", got)
	}

	// The store keeps working and overwrites the corrupt payload
	s.AddEntry(models.MoodHappy, "fresh start")
	raw, _ := backend.Get(constants.JournalEntriesKey)
	if len(raw) == 0 || raw[0] != '[' {
		t.Errorf("stored payload = %s, want JSON array", raw)
	}
}

func TestVersionAndObservers(t *testing.T) {
	s, _, _ := setupStore(t)

	var calls []string
	s.OnMutate(func() { calls = append(calls, "first") })
	unsubscribe := s.OnMutate(func() { calls = append(calls, "second") })

	e := s.AddEntry(models.MoodHappy, "a")
	if s.Version() != 1 {
		t.Errorf("Version() = %d, want 1", s.Version())
	}
	if !reflect.DeepEqual(calls, []string{"first", "second"}) {
		t.Errorf("observer calls = %v", calls)
	}

	unsubscribe()
	calls = nil
	s.DeleteEntry(e.ID)
	if s.Version() != 2 {
		t.Errorf("Version() = %d, want 2", s.Version())
	}
	if !reflect.DeepEqual(calls, []string{"first"}) {
		t.Errorf("observer calls after unsubscribe = %v", calls)
	}
}

func TestObserverSeesPersistedState(t *testing.T) {
	s, _, backend := setupStore(t)

	var stored string
	var count int
	s.OnMutate(func() {
		raw, _ := backend.Get(constants.JournalEntriesKey)
		stored = string(raw)
		count = len(s.Entries())
	})

	s.AddEntry(models.MoodHappy, "a")
	if count != 1 || stored == "" {
		t.Errorf("observer saw count=%d stored=%q", count, stored)
	}
}

func TestFilterByMoodAndRecent(t *testing.T) {
	s, clock, _ := setupStore(t)
	for i, mood := range []string{models.MoodHappy, models.MoodSad, models.MoodHappy, models.MoodCalm} {
		clock.Advance(time.Hour)
		s.AddEntry(mood, fmt.Sprint(i))
	}

	happy := s.FilterByMood(models.MoodHappy)
	if len(happy) != 2 || happy[0].Thoughts != "2" || happy[1].Thoughts != "0" {
		t.Errorf("FilterByMood(felice) = %+v", happy)
	}
	if got := s.FilterByMood(""); len(got) != 4 {
		t.Errorf("FilterByMood(\"\") returned %d entries, want 4", len(got))
	}
	if got := s.FilterByMood(models.MoodAngry); got == nil || len(got) != 0 {
		t.Errorf("FilterByMood(arrabbiato) = %#v, want empty", got)
	}

	recent := s.Recent(constants.DashboardRecentEntries)
	if len(recent) != 3 || recent[0].Thoughts != "3" {
		t.Errorf("Recent(3) = %+v", recent)
	}
	if got := s.Recent(10); len(got) != 4 {
		t.Errorf("Recent(10) returned %d entries, want 4", len(got))
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	s, _, _ := setupStore(t)
	s.AddEntry(models.MoodHappy, "a")

	entries := s.Entries()
	entries[0].Thoughts = "mutated"

	if got := s.Entries()[0].Thoughts; got != "a" {
		t.Errorf("store changed through snapshot: %q", got)
	}
}
