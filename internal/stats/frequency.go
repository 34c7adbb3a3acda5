// Package stats derives mood and writing statistics from journal entries.
// Every function is pure; Engine adds a cache keyed by store version.
package stats

import (
	"sort"

	"github.com/julianstephens/diario/internal/models"
)

type MoodCount struct {
	Mood  string
	Count int
}

// MoodStats is the mood frequency distribution of a set of entries.
type MoodStats struct {
	Counts map[string]int
	// Order lists moods in the order they were first seen.
	Order []string
	Total int
	// MostFrequent is nil when there are no entries.
	MostFrequent *MoodCount
}

// MoodShare is one row of the ranked distribution.
type MoodShare struct {
	Mood    string
	Count   int
	Percent float64
}

// MoodFrequency counts entries per mood in a single pass. The most frequent
// mood is the first-seen one among those with the highest count.
func MoodFrequency(entries []models.JournalEntry) MoodStats {
	st := MoodStats{Counts: map[string]int{}, Order: []string{}}
	for _, e := range entries {
		if _, seen := st.Counts[e.Mood]; !seen {
			st.Order = append(st.Order, e.Mood)
		}
		st.Counts[e.Mood]++
		st.Total++
	}

	for _, mood := range st.Order {
		c := st.Counts[mood]
		if st.MostFrequent == nil || c > st.MostFrequent.Count {
			st.MostFrequent = &MoodCount{Mood: mood, Count: c}
		}
	}
	return st
}

// Ranked orders moods by count, highest first, breaking ties by catalogue
// position and then first appearance.
func (st MoodStats) Ranked() []MoodShare {
	out := make([]MoodShare, 0, len(st.Order))
	for _, mood := range st.Order {
		c := st.Counts[mood]
		if c == 0 {
			continue
		}
		share := MoodShare{Mood: mood, Count: c}
		if st.Total > 0 {
			share.Percent = float64(c) * 100 / float64(st.Total)
		}
		out = append(out, share)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return models.MoodIndex(out[i].Mood) < models.MoodIndex(out[j].Mood)
	})
	return out
}
