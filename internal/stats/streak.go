package stats

import (
	"sort"
	"time"

	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/utils"
)

// WritingStreak counts consecutive calendar days with at least one entry,
// walking back from the most recent day. The streak is 0 unless that day is
// today or yesterday in loc. Entries dated after today are ignored.
func WritingStreak(entries []models.JournalEntry, now time.Time, loc *time.Location) int {
	today := utils.StartOfDay(now, loc)

	seen := map[time.Time]bool{}
	var days []time.Time
	for _, e := range entries {
		d := utils.StartOfDay(e.Date, loc)
		if d.After(today) || seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	if utils.DaysBetween(today, days[0]) > 1 {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if utils.DaysBetween(days[i-1], days[i]) != 1 {
			break
		}
		streak++
	}
	return streak
}
