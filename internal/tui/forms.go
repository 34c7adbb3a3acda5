package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/utils"
	"github.com/julianstephens/diario/internal/validation"
)

// EntryFormModel backs the add/edit entry form.
type EntryFormModel struct {
	Mood     string
	Thoughts string
}

// ReminderFormModel backs the add/edit reminder form. At is kept as text
// until the form completes.
type ReminderFormModel struct {
	Message string
	At      string
}

func moodOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(models.Moods))
	for i, m := range models.Moods {
		opts[i] = huh.NewOption(m.Label, m.Value)
	}
	return opts
}

func NewEntryForm(fm *EntryFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Mood").
				Options(moodOptions()...).
				Value(&fm.Mood),
			huh.NewText().
				Title("Thoughts").
				Value(&fm.Thoughts).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return validation.ErrThoughtsRequired
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewReminderForm builds the reminder form. New reminders must lie in the
// future; edits may keep a past time.
func NewReminderForm(fm *ReminderFormModel, now func() time.Time, loc *time.Location, editing bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Message").
				Value(&fm.Message).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return validation.ErrMessageRequired
					}
					return nil
				}),
			huh.NewInput().
				Title("When").
				Description("YYYY-MM-DD HH:MM").
				Value(&fm.At).
				Validate(func(s string) error {
					at, err := utils.ParseDateTimeInLocation(s, loc)
					if err != nil {
						return fmt.Errorf("expected %s", constants.DateTimeFormat)
					}
					if !editing && !at.After(now()) {
						return validation.ErrTimeInPast
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
