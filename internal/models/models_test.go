package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestMoodByValue(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantOK    bool
		wantLabel string
	}{
		{name: "known mood", value: MoodHappy, wantOK: true, wantLabel: "Felice"},
		{name: "last mood in catalogue", value: MoodThoughtful, wantOK: true, wantLabel: "Pensieroso"},
		{name: "empty value", value: "", wantOK: false},
		{name: "unknown value", value: "grumpy", wantOK: false},
		{name: "case sensitive", value: "Felice", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := MoodByValue(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("MoodByValue(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if ok && m.Label != tt.wantLabel {
				t.Errorf("MoodByValue(%q) label = %q, want %q", tt.value, m.Label, tt.wantLabel)
			}
		})
	}
}

func TestMoodIndex(t *testing.T) {
	if got := MoodIndex(MoodHappy); got != 0 {
		t.Errorf("MoodIndex(felice) = %d, want 0", got)
	}
	if got := MoodIndex("unknown"); got != len(Moods) {
		t.Errorf("MoodIndex(unknown) = %d, want %d", got, len(Moods))
	}
	if len(MoodValues()) != len(Moods) {
		t.Errorf("MoodValues() length = %d, want %d", len(MoodValues()), len(Moods))
	}
}

func TestJournalEntry_Title(t *testing.T) {
	tests := []struct {
		thoughts string
		want     string
	}{
		{thoughts: "A good day\nwith more lines", want: "A good day"},
		{thoughts: "single line", want: "single line"},
		{thoughts: "\nsecond line only", want: "Untitled"},
		{thoughts: "   ", want: "Untitled"},
	}

	for _, tt := range tests {
		e := JournalEntry{Thoughts: tt.thoughts}
		if got := e.Title(); got != tt.want {
			t.Errorf("Title() for %q = %q, want %q", tt.thoughts, got, tt.want)
		}
	}
}

func TestJournalEntry_JSONLayout(t *testing.T) {
	e := JournalEntry{
		ID:       "abc",
		Date:     time.Date(2026, 3, 1, 9, 30, 0, 123000000, time.UTC),
		Mood:     MoodCalm,
		Thoughts: "quiet morning",
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("failed to marshal entry: %v", err)
	}

	got := string(data)
	for _, want := range []string{`"id":"abc"`, `"date":"2026-03-01T09:30:00.123Z"`, `"mood":"calmo"`, `"thoughts":"quiet morning"`} {
		if !strings.Contains(got, want) {
			t.Errorf("marshaled entry %s missing %s", got, want)
		}
	}
}

func TestReminder_IsUpcomingAndDue(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		at           time.Time
		wantUpcoming bool
		wantDue      bool
	}{
		{name: "exactly now", at: now, wantUpcoming: true, wantDue: true},
		{name: "one hour ahead", at: now.Add(time.Hour), wantUpcoming: true, wantDue: false},
		{name: "thirty seconds ago", at: now.Add(-30 * time.Second), wantUpcoming: false, wantDue: true},
		{name: "one hour ago", at: now.Add(-time.Hour), wantUpcoming: false, wantDue: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reminder{ID: "r", Message: "m", Time: tt.at}
			if got := r.IsUpcoming(now); got != tt.wantUpcoming {
				t.Errorf("IsUpcoming() = %v, want %v", got, tt.wantUpcoming)
			}
			if got := r.IsDue(now, time.Minute); got != tt.wantDue {
				t.Errorf("IsDue() = %v, want %v", got, tt.wantDue)
			}
		})
	}
}
