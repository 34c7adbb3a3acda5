package models

import "time"

type Reminder struct {
	ID      string    `json:"id" yaml:"id"`
	Time    time.Time `json:"time" yaml:"time"` // when the reminder should fire
	Message string    `json:"message" yaml:"message"`
}

// ReminderUpdate carries the mutable fields of a reminder.
type ReminderUpdate struct {
	Message string
	Time    time.Time
}

// IsUpcoming reports whether the reminder fires at or after now.
func (r Reminder) IsUpcoming(now time.Time) bool {
	return !r.Time.Before(now)
}

// IsDue reports whether the reminder fell within the window ending at now.
func (r Reminder) IsDue(now time.Time, window time.Duration) bool {
	return r.Time.After(now.Add(-window)) && !r.Time.After(now)
}
