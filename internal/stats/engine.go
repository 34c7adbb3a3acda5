package stats

import (
	"sync"
	"time"

	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/utils"
)

// Summary bundles every statistic shown on the insights view.
type Summary struct {
	Mood       MoodStats
	StreakDays int
	DayMoods   map[string]string
}

// Compute derives a Summary from entries.
func Compute(entries []models.JournalEntry, now time.Time, loc *time.Location) Summary {
	return Summary{
		Mood:       MoodFrequency(entries),
		StreakDays: WritingStreak(entries, now, loc),
		DayMoods:   DayMoods(entries, loc),
	}
}

// Source is what Engine reads from; *journal.Store satisfies it.
type Source interface {
	Entries() []models.JournalEntry
	Version() uint64
}

type EngineOption func(*Engine)

func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// Engine caches the Summary of a Source until the source changes or the
// calendar day rolls over.
type Engine struct {
	src Source
	loc *time.Location
	now func() time.Time

	mu      sync.Mutex
	cached  *Summary
	version uint64
	day     string
}

func NewEngine(src Source, loc *time.Location, opts ...EngineOption) *Engine {
	if loc == nil {
		loc = time.Local
	}
	e := &Engine{src: src, loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Location() *time.Location {
	return e.loc
}

func (e *Engine) Summary() Summary {
	now := e.now()
	day := utils.DateKey(now, e.loc)
	version := e.src.Version()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cached != nil && e.version == version && e.day == day {
		return *e.cached
	}

	s := Compute(e.src.Entries(), now, e.loc)
	e.cached = &s
	e.version = version
	e.day = day
	return s
}

// Months returns the calendar grids for the current month and the n-1 before it.
func (e *Engine) Months(n int) []Month {
	return RecentMonths(n, e.Summary().DayMoods, e.now(), e.loc)
}
