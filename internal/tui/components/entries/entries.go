package entries

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/utils"
)

type AddEntryMsg struct{}

type EditEntryMsg struct {
	Entry models.JournalEntry
}

type DeleteEntryMsg struct {
	Entry models.JournalEntry
}

// FilterChangedMsg asks the parent to reload the list for Mood. An empty
// Mood means all entries.
type FilterChangedMsg struct {
	Mood string
}

type Item struct {
	Entry    models.JournalEntry
	Location *time.Location
}

func (i Item) Title() string {
	return fmt.Sprintf("%s · %s", i.Entry.MoodLabel(), i.Entry.Title())
}

func (i Item) Description() string {
	return utils.FormatDateTime(i.Entry.Date, i.Location)
}

func (i Item) FilterValue() string { return i.Entry.Thoughts }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Filter key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter mood"),
		),
	}
}

type Model struct {
	list     list.Model
	keys     KeyMap
	location *time.Location
	// mood is the active filter; empty shows everything.
	mood string
}

func New(entries []models.JournalEntry, loc *time.Location, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Journal"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Filter}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	m := Model{list: l, keys: keys, location: loc}
	m.SetEntries(entries)
	return m
}

func (m *Model) SetEntries(entries []models.JournalEntry) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e, Location: m.location}
	}
	m.list.SetItems(items)
	m.updateTitle()
}

func (m *Model) updateTitle() {
	m.list.Title = "Journal"
	if mood, ok := models.MoodByValue(m.mood); ok {
		m.list.Title = "Journal · " + mood.Label
	}
}

// Mood returns the active mood filter.
func (m Model) Mood() string {
	return m.mood
}

// nextMood cycles all → each catalogue mood → all.
func nextMood(current string) string {
	if current == "" {
		return models.Moods[0].Value
	}
	i := models.MoodIndex(current)
	if i+1 >= len(models.Moods) {
		return ""
	}
	return models.Moods[i+1].Value
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddEntryMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditEntryMsg{Entry: item.Entry} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{Entry: item.Entry} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.mood = nextMood(m.mood)
			mood := m.mood
			return m, func() tea.Msg { return FilterChangedMsg{Mood: mood} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
