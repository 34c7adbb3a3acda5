package models

import (
	"strings"
	"time"
)

type JournalEntry struct {
	ID       string    `json:"id" yaml:"id"`
	Date     time.Time `json:"date" yaml:"date"` // creation time, never changes after add
	Mood     string    `json:"mood" yaml:"mood"`
	Thoughts string    `json:"thoughts" yaml:"thoughts"`
}

// EntryUpdate carries the mutable fields of a journal entry.
type EntryUpdate struct {
	Mood     string
	Thoughts string
}

// Title returns the first line of the entry body, used as a headline in lists.
func (e JournalEntry) Title() string {
	first, _, _ := strings.Cut(e.Thoughts, "\n")
	first = strings.TrimSpace(first)
	if first == "" {
		return "Untitled"
	}
	return first
}

// MoodLabel returns the display label for the entry's mood, falling back to the raw value.
func (e JournalEntry) MoodLabel() string {
	if m, ok := MoodByValue(e.Mood); ok {
		return m.Label
	}
	return e.Mood
}
