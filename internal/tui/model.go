package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/journal"
	"github.com/julianstephens/diario/internal/reminders"
	"github.com/julianstephens/diario/internal/stats"
	"github.com/julianstephens/diario/internal/tui/components/entries"
	reminderlist "github.com/julianstephens/diario/internal/tui/components/reminders"
)

// storeChangedMsg is delivered after either store mutates.
type storeChangedMsg struct{}

// pendingDelete describes the record awaiting y/n confirmation.
type pendingDelete struct {
	kind  string // "entry" or "reminder"
	id    string
	label string
}

type Option func(*Model)

// WithClock replaces time.Now for the dashboard, reminder forms and lists.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

type Model struct {
	journal   *journal.Store
	reminders *reminders.Store
	stats     *stats.Engine
	now       func() time.Time

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	entryList    entries.Model
	reminderList reminderlist.Model

	form         *huh.Form
	entryForm    *EntryFormModel
	reminderForm *ReminderFormModel
	editingID    string
	pending      *pendingDelete
	formError    string

	// changes is signalled by the stores' observers; a buffer of one
	// coalesces bursts into a single refresh.
	changes chan struct{}

	quitting bool
	width    int
	height   int
}

func NewModel(j *journal.Store, r *reminders.Store, s *stats.Engine, opts ...Option) Model {
	m := Model{
		journal:   j,
		reminders: r,
		stats:     s,
		now:       time.Now,
		state:     constants.StateDashboard,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		changes:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(&m)
	}

	loc := s.Location()
	m.entryList = entries.New(j.Entries(), loc, 0, 0)
	m.reminderList = reminderlist.New(r.Reminders(), m.now(), loc, 0, 0)

	signal := func() {
		select {
		case m.changes <- struct{}{}:
		default:
		}
	}
	j.OnMutate(signal)
	r.OnMutate(signal)

	return m
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return storeChangedMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

// refresh reloads both lists from store snapshots.
func (m *Model) refresh() {
	m.entryList.SetEntries(m.journal.FilterByMood(m.entryList.Mood()))
	m.reminderList.SetReminders(m.reminders.Reminders(), m.now())
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateJournal:
		keys = append(keys, m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Filter)
	case constants.StateReminders:
		keys = append(keys, m.keys.Add, m.keys.Edit, m.keys.Delete)
	case constants.StateConfirmDelete:
		keys = []key.Binding{m.keys.Confirm, m.keys.Cancel}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case constants.StateJournal:
		actions = []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Filter}
	case constants.StateReminders:
		actions = []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}
