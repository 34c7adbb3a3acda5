package stats

import (
	"sort"
	"time"

	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/utils"
)

// DayMoods maps each calendar day (YYYY-MM-DD in loc) to the mood of the
// latest entry written that day.
func DayMoods(entries []models.JournalEntry, loc *time.Location) map[string]string {
	// Walk oldest to newest so later entries overwrite earlier ones.
	ordered := make([]models.JournalEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		ordered = append(ordered, entries[i])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	out := make(map[string]string, len(ordered))
	for _, e := range ordered {
		out[utils.DateKey(e.Date, loc)] = e.Mood
	}
	return out
}

// Day is one cell of a month grid.
type Day struct {
	Day      int
	Date     string
	Mood     string
	IsToday  bool
	IsFuture bool
}

// Month is a Monday-first calendar grid.
type Month struct {
	Year  int
	Month time.Month
	// LeadingBlanks is the number of empty cells before day 1.
	LeadingBlanks int
	Days          []Day
}

// MonthCalendar builds the grid for the given month. Out of range months
// roll over, so month 0 is December of the previous year.
func MonthCalendar(year, month int, dayMoods map[string]string, now time.Time, loc *time.Location) Month {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	todayKey := utils.DateKey(now, loc)

	m := Month{
		Year:          first.Year(),
		Month:         first.Month(),
		LeadingBlanks: (int(first.Weekday()) + 6) % 7,
	}

	n := utils.DaysInMonth(m.Year, m.Month)
	m.Days = make([]Day, 0, n)
	for d := 1; d <= n; d++ {
		key := time.Date(m.Year, m.Month, d, 0, 0, 0, 0, loc).Format(constants.DateFormat)
		m.Days = append(m.Days, Day{
			Day:      d,
			Date:     key,
			Mood:     dayMoods[key],
			IsToday:  key == todayKey,
			IsFuture: key > todayKey,
		})
	}
	return m
}

// Weeks lays the month out in rows of seven. Blank cells have Day == 0.
func (m Month) Weeks() [][]Day {
	cells := make([]Day, m.LeadingBlanks, m.LeadingBlanks+len(m.Days)+6)
	cells = append(cells, m.Days...)
	for len(cells)%7 != 0 {
		cells = append(cells, Day{})
	}

	weeks := make([][]Day, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}

// RecentMonths returns the month containing now and the n-1 months before
// it, oldest first.
func RecentMonths(n int, dayMoods map[string]string, now time.Time, loc *time.Location) []Month {
	local := now.In(loc)
	months := make([]Month, 0, n)
	for i := n - 1; i >= 0; i-- {
		months = append(months, MonthCalendar(local.Year(), int(local.Month())-i, dayMoods, now, loc))
	}
	return months
}
