package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/journal"
	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/persist"
	"github.com/julianstephens/diario/internal/reminders"
	"github.com/julianstephens/diario/internal/stats"
	"github.com/julianstephens/diario/internal/storage"
	"github.com/julianstephens/diario/internal/tui/components/entries"
	reminderlist "github.com/julianstephens/diario/internal/tui/components/reminders"
	"github.com/julianstephens/diario/internal/validation"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	model     Model
	journal   *journal.Store
	reminders *reminders.Store
}

func setupModel(t *testing.T) *fixture {
	t.Helper()
	backend := storage.NewMemoryStore()
	if err := backend.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	now := func() time.Time { return testNow }

	j := journal.New(
		persist.NewCollection[models.JournalEntry](backend, constants.JournalEntriesKey),
		journal.WithClock(now),
	)
	r := reminders.New(persist.NewCollection[models.Reminder](backend, constants.RemindersKey))
	s := stats.NewEngine(j, time.UTC, stats.WithClock(now))

	f := &fixture{journal: j, reminders: r}
	f.model = NewModel(j, r, s, WithClock(now))
	f.send(t, tea.WindowSizeMsg{Width: 100, Height: 40})
	return f
}

// send delivers msg and returns the resulting command.
func (f *fixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	f.model = m
	return cmd
}

// sendAndRun delivers msg, then feeds the message its command produces
// back into the model.
func (f *fixture) sendAndRun(t *testing.T, msg tea.Msg) {
	t.Helper()
	cmd := f.send(t, msg)
	if cmd == nil {
		t.Fatalf("expected a command after %v", msg)
	}
	f.send(t, cmd())
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func TestTabCycling(t *testing.T) {
	f := setupModel(t)

	want := []constants.SessionState{
		constants.StateJournal,
		constants.StateReminders,
		constants.StateInsights,
		constants.StateDashboard,
	}
	for _, s := range want {
		f.send(t, tea.KeyMsg{Type: tea.KeyTab})
		if f.model.state != s {
			t.Fatalf("expected state %v after tab, got %v", s, f.model.state)
		}
	}

	f.send(t, tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.model.state != constants.StateInsights {
		t.Errorf("expected shift+tab to wrap to insights, got %v", f.model.state)
	}
}

func TestQuit(t *testing.T) {
	f := setupModel(t)

	cmd := f.send(t, runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if f.model.View() != "" {
		t.Error("expected empty view after quitting")
	}
}

func TestStoreChangeRefreshesLists(t *testing.T) {
	f := setupModel(t)
	wait := f.model.Init()

	f.journal.AddEntry(models.MoodHappy, "written elsewhere")

	msg := wait()
	if _, ok := msg.(storeChangedMsg); !ok {
		t.Fatalf("expected storeChangedMsg, got %T", msg)
	}
	if cmd := f.send(t, msg); cmd == nil {
		t.Error("expected the model to wait for the next change")
	}

	f.model.state = constants.StateJournal
	if !strings.Contains(f.model.View(), "written elsewhere") {
		t.Errorf("journal list was not refreshed:\n%s", f.model.View())
	}
}

func TestDeleteEntry_Confirm(t *testing.T) {
	tests := []struct {
		name    string
		answer  tea.KeyMsg
		deleted bool
	}{
		{name: "yes", answer: runeKey("y"), deleted: true},
		{name: "no", answer: runeKey("n"), deleted: false},
		{name: "esc", answer: tea.KeyMsg{Type: tea.KeyEsc}, deleted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupModel(t)
			e := f.journal.AddEntry(models.MoodCalm, "quiet morning")
			f.send(t, storeChangedMsg{})
			f.send(t, tea.KeyMsg{Type: tea.KeyTab})

			f.sendAndRun(t, runeKey("d"))
			if f.model.state != constants.StateConfirmDelete {
				t.Fatalf("expected confirm state, got %v", f.model.state)
			}
			if !strings.Contains(f.model.View(), `Delete entry "quiet morning"?`) {
				t.Errorf("confirm dialog missing prompt:\n%s", f.model.View())
			}

			// Unrelated keys leave the dialog open
			f.send(t, runeKey("x"))
			if f.model.state != constants.StateConfirmDelete {
				t.Fatalf("expected dialog to stay open, got %v", f.model.state)
			}

			f.send(t, tt.answer)
			if f.model.state != constants.StateJournal {
				t.Errorf("expected to return to journal, got %v", f.model.state)
			}
			if _, ok := f.journal.Get(e.ID); ok == tt.deleted {
				t.Errorf("entry present = %v, want %v", ok, !tt.deleted)
			}
		})
	}
}

func TestDeleteReminder_Confirm(t *testing.T) {
	f := setupModel(t)
	r := f.reminders.AddReminder("call mum", testNow.Add(time.Hour))
	f.send(t, storeChangedMsg{})
	f.send(t, tea.KeyMsg{Type: tea.KeyTab})
	f.send(t, tea.KeyMsg{Type: tea.KeyTab})

	f.sendAndRun(t, runeKey("d"))
	if f.model.pending == nil || f.model.pending.kind != "reminder" {
		t.Fatalf("expected a pending reminder delete, got %+v", f.model.pending)
	}
	f.send(t, runeKey("y"))

	if _, ok := f.reminders.Get(r.ID); ok {
		t.Error("expected reminder to be deleted")
	}
	if f.model.state != constants.StateReminders {
		t.Errorf("expected to return to reminders, got %v", f.model.state)
	}
}

func TestFilterCyclesMoods(t *testing.T) {
	f := setupModel(t)
	f.journal.AddEntry(models.MoodHappy, "sunny walk")
	f.journal.AddEntry(models.MoodSad, "rainy commute")
	f.send(t, storeChangedMsg{})
	f.send(t, tea.KeyMsg{Type: tea.KeyTab})

	f.sendAndRun(t, runeKey("f"))
	if got := f.model.entryList.Mood(); got != models.Moods[0].Value {
		t.Fatalf("expected filter %q, got %q", models.Moods[0].Value, got)
	}
	view := f.model.View()
	if !strings.Contains(view, "sunny walk") || strings.Contains(view, "rainy commute") {
		t.Errorf("filter not applied:\n%s", view)
	}

	// The filter survives a refresh
	f.journal.AddEntry(models.MoodSad, "another grey day")
	f.send(t, storeChangedMsg{})
	if strings.Contains(f.model.View(), "another grey day") {
		t.Error("refresh ignored the active filter")
	}
}

func TestEntryForm_OpenAndAbort(t *testing.T) {
	f := setupModel(t)
	f.send(t, tea.KeyMsg{Type: tea.KeyTab})

	f.send(t, entries.AddEntryMsg{})
	if f.model.state != constants.StateAddEntry {
		t.Fatalf("expected add entry state, got %v", f.model.state)
	}
	if f.model.entryForm.Mood != models.MoodHappy {
		t.Errorf("expected default mood %q, got %q", models.MoodHappy, f.model.entryForm.Mood)
	}

	f.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	if f.model.state != constants.StateJournal {
		t.Errorf("expected esc to return to journal, got %v", f.model.state)
	}
	if f.model.form != nil {
		t.Error("expected form to be closed")
	}
}

func TestSaveEntryForm(t *testing.T) {
	f := setupModel(t)
	f.send(t, tea.KeyMsg{Type: tea.KeyTab})

	f.send(t, entries.AddEntryMsg{})
	f.model.entryForm.Mood = models.MoodTired
	f.model.entryForm.Thoughts = "   "
	if err := f.model.saveEntryForm(); err != validation.ErrThoughtsRequired {
		t.Errorf("expected ErrThoughtsRequired, got %v", err)
	}
	if len(f.journal.Entries()) != 0 {
		t.Fatal("invalid form must not create an entry")
	}

	f.model.entryForm.Thoughts = "long day"
	if err := f.model.saveEntryForm(); err != nil {
		t.Fatalf("saveEntryForm failed: %v", err)
	}
	saved := f.journal.Entries()
	if len(saved) != 1 || saved[0].Mood != models.MoodTired {
		t.Fatalf("unexpected entries: %+v", saved)
	}

	f.model.closeForm()
	f.send(t, entries.EditEntryMsg{Entry: saved[0]})
	if f.model.state != constants.StateEditEntry || f.model.editingID != saved[0].ID {
		t.Fatalf("edit form not opened for %s", saved[0].ID)
	}
	f.model.entryForm.Mood = models.MoodCalm
	if err := f.model.saveEntryForm(); err != nil {
		t.Fatalf("saveEntryForm failed: %v", err)
	}
	if got, _ := f.journal.Get(saved[0].ID); got.Mood != models.MoodCalm || got.Thoughts != "long day" {
		t.Errorf("unexpected edited entry: %+v", got)
	}
}

func TestSaveReminderForm(t *testing.T) {
	tests := []struct {
		name    string
		message string
		at      string
		wantErr bool
	}{
		{name: "future", message: "stretch", at: "2026-03-10 10:00"},
		{name: "past", message: "stretch", at: "2026-03-10 08:00", wantErr: true},
		{name: "blank message", message: " ", at: "2026-03-10 10:00", wantErr: true},
		{name: "bad time", message: "stretch", at: "tomorrow-ish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupModel(t)
			f.send(t, reminderlist.AddReminderMsg{})
			f.model.reminderForm.Message = tt.message
			f.model.reminderForm.At = tt.at

			err := f.model.saveReminderForm()
			if (err != nil) != tt.wantErr {
				t.Fatalf("saveReminderForm() error = %v, wantErr %v", err, tt.wantErr)
			}
			want := 1
			if tt.wantErr {
				want = 0
			}
			if got := len(f.reminders.Reminders()); got != want {
				t.Errorf("expected %d reminders, got %d", want, got)
			}
		})
	}
}

func TestEditReminderForm_AllowsPastTime(t *testing.T) {
	f := setupModel(t)
	r := f.reminders.AddReminder("water plants", testNow.Add(time.Hour))

	f.send(t, reminderlist.EditReminderMsg{Reminder: r})
	if f.model.reminderForm.At != "2026-03-10 10:00" {
		t.Errorf("expected prefilled time, got %q", f.model.reminderForm.At)
	}
	f.model.reminderForm.At = "2026-03-09 18:00"
	if err := f.model.saveReminderForm(); err != nil {
		t.Fatalf("saveReminderForm failed: %v", err)
	}

	got, _ := f.reminders.Get(r.ID)
	want := time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC)
	if !got.Time.Equal(want) {
		t.Errorf("expected time %v, got %v", want, got.Time)
	}
}

func TestViewTabs(t *testing.T) {
	f := setupModel(t)
	f.journal.AddEntry(models.MoodEnergetic, "ran 5k")
	f.reminders.AddReminder("book dentist", testNow.Add(2*time.Hour))

	view := f.model.View()
	for _, want := range []string{"Dashboard", "Recent entries", "ran 5k", "book dentist", "1 consecutive day(s)"} {
		if !strings.Contains(view, want) {
			t.Errorf("dashboard missing %q:\n%s", want, view)
		}
	}

	f.model.state = constants.StateInsights
	view = f.model.View()
	for _, want := range []string{"Insights", "Energico", "March 2026", "February 2026"} {
		if !strings.Contains(view, want) {
			t.Errorf("insights missing %q:\n%s", want, view)
		}
	}
}
