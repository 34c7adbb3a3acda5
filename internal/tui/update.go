package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/logger"
	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/tui/components/entries"
	reminderlist "github.com/julianstephens/diario/internal/tui/components/reminders"
	"github.com/julianstephens/diario/internal/utils"
	"github.com/julianstephens/diario/internal/validation"
)

// mainTabs are the states reachable with tab / shift+tab, in display order.
var mainTabs = []constants.SessionState{
	constants.StateDashboard,
	constants.StateJournal,
	constants.StateReminders,
	constants.StateInsights,
}

func tabIndex(s constants.SessionState) int {
	for i, t := range mainTabs {
		if t == s {
			return i
		}
	}
	return -1
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Leave room for tabs, padding and help
		h := msg.Height - 6
		if h < 0 {
			h = 0
		}
		m.entryList.SetSize(msg.Width-4, h)
		m.reminderList.SetSize(msg.Width-4, h)
		return m, nil

	case storeChangedMsg:
		m.refresh()
		return m, waitForChange(m.changes)
	}

	switch m.state {
	case constants.StateAddEntry, constants.StateEditEntry:
		return m, m.updateEntryForm(msg)
	case constants.StateAddReminder, constants.StateEditReminder:
		return m, m.updateReminderForm(msg)
	case constants.StateConfirmDelete:
		m.updateConfirmDelete(msg)
		return m, nil
	}

	if cmd, handled := m.handleComponentMsg(msg); handled {
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = mainTabs[(tabIndex(m.state)+1)%len(mainTabs)]
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = mainTabs[(tabIndex(m.state)-1+len(mainTabs))%len(mainTabs)]
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateJournal:
		m.entryList, cmd = m.entryList.Update(msg)
	case constants.StateReminders:
		m.reminderList, cmd = m.reminderList.Update(msg)
	}
	return m, cmd
}

// handleComponentMsg reacts to the messages list components emit.
func (m *Model) handleComponentMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case entries.AddEntryMsg:
		m.entryForm = &EntryFormModel{Mood: models.MoodHappy}
		m.editingID = ""
		return m.openForm(NewEntryForm(m.entryForm), constants.StateAddEntry), true

	case entries.EditEntryMsg:
		m.entryForm = &EntryFormModel{Mood: msg.Entry.Mood, Thoughts: msg.Entry.Thoughts}
		m.editingID = msg.Entry.ID
		return m.openForm(NewEntryForm(m.entryForm), constants.StateEditEntry), true

	case entries.DeleteEntryMsg:
		m.confirmDelete(pendingDelete{kind: "entry", id: msg.Entry.ID, label: msg.Entry.Title()})
		return nil, true

	case entries.FilterChangedMsg:
		m.entryList.SetEntries(m.journal.FilterByMood(msg.Mood))
		return nil, true

	case reminderlist.AddReminderMsg:
		m.reminderForm = &ReminderFormModel{}
		m.editingID = ""
		return m.openForm(NewReminderForm(m.reminderForm, m.now, m.stats.Location(), false), constants.StateAddReminder), true

	case reminderlist.EditReminderMsg:
		loc := m.stats.Location()
		m.reminderForm = &ReminderFormModel{
			Message: msg.Reminder.Message,
			At:      msg.Reminder.Time.In(loc).Format(constants.DateTimeFormat),
		}
		m.editingID = msg.Reminder.ID
		return m.openForm(NewReminderForm(m.reminderForm, m.now, loc, true), constants.StateEditReminder), true

	case reminderlist.DeleteReminderMsg:
		m.confirmDelete(pendingDelete{kind: "reminder", id: msg.Reminder.ID, label: msg.Reminder.Message})
		return nil, true
	}
	return nil, false
}

func (m *Model) openForm(form *huh.Form, state constants.SessionState) tea.Cmd {
	m.form = form
	m.formError = ""
	m.previousState = m.state
	m.state = state
	return m.form.Init()
}

func (m *Model) closeForm() {
	m.form = nil
	m.formError = ""
	m.editingID = ""
	m.state = m.previousState
}

// stepForm forwards msg to the active form. It reports the form state after
// the update, treating esc as an abort.
func (m *Model) stepForm(msg tea.Msg) (huh.FormState, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		return huh.StateAborted, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	return m.form.State, cmd
}

func (m *Model) updateEntryForm(msg tea.Msg) tea.Cmd {
	state, cmd := m.stepForm(msg)
	switch state {
	case huh.StateCompleted:
		if err := m.saveEntryForm(); err != nil {
			// Keep the form open so the user can correct it
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return cmd
		}
		m.closeForm()
	case huh.StateAborted:
		m.closeForm()
	}
	return cmd
}

// saveEntryForm validates the entry form and writes it to the journal.
func (m *Model) saveEntryForm() error {
	fm := m.entryForm
	if err := validation.ValidateEntry(fm.Mood, fm.Thoughts); err != nil {
		return err
	}
	if m.state == constants.StateEditEntry {
		m.journal.UpdateEntry(m.editingID, models.EntryUpdate{Mood: fm.Mood, Thoughts: fm.Thoughts})
	} else {
		m.journal.AddEntry(fm.Mood, fm.Thoughts)
	}
	return nil
}

func (m *Model) updateReminderForm(msg tea.Msg) tea.Cmd {
	state, cmd := m.stepForm(msg)
	switch state {
	case huh.StateCompleted:
		if err := m.saveReminderForm(); err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return cmd
		}
		m.closeForm()
	case huh.StateAborted:
		m.closeForm()
	}
	return cmd
}

// saveReminderForm parses and validates the reminder form, then adds or
// updates the reminder.
func (m *Model) saveReminderForm() error {
	fm := m.reminderForm
	editing := m.state == constants.StateEditReminder
	at, err := utils.ParseDateTimeInLocation(fm.At, m.stats.Location())
	if err != nil {
		return err
	}
	if err := validation.ValidateReminder(fm.Message, at, m.now(), editing); err != nil {
		return err
	}
	if editing {
		m.reminders.UpdateReminder(m.editingID, models.ReminderUpdate{Message: fm.Message, Time: at})
	} else {
		m.reminders.AddReminder(fm.Message, at)
	}
	return nil
}

func (m *Model) confirmDelete(p pendingDelete) {
	m.pending = &p
	m.previousState = m.state
	m.state = constants.StateConfirmDelete
}

func (m *Model) updateConfirmDelete(msg tea.Msg) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.pending == nil {
		return
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		switch m.pending.kind {
		case "entry":
			m.journal.DeleteEntry(m.pending.id)
		case "reminder":
			m.reminders.DeleteReminder(m.pending.id)
		default:
			logger.Warn("Unknown delete target", "kind", m.pending.kind)
		}
	case key.Matches(keyMsg, m.keys.Cancel):
	default:
		return
	}
	m.pending = nil
	m.state = m.previousState
}

func (p pendingDelete) prompt() string {
	return fmt.Sprintf("Delete %s %q?", p.kind, p.label)
}
