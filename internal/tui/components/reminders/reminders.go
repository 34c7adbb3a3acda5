package reminders

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/utils"
)

type AddReminderMsg struct{}

type EditReminderMsg struct {
	Reminder models.Reminder
}

type DeleteReminderMsg struct {
	Reminder models.Reminder
}

type Item struct {
	Reminder models.Reminder
	Location *time.Location
	Passed   bool
}

func (i Item) Title() string {
	if i.Passed {
		return "✓ " + i.Reminder.Message
	}
	return "⏰ " + i.Reminder.Message
}

func (i Item) Description() string {
	desc := utils.FormatDateTime(i.Reminder.Time, i.Location)
	if i.Passed {
		desc += " (passed)"
	}
	return desc
}

func (i Item) FilterValue() string { return i.Reminder.Message }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
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
	}
}

type Model struct {
	list     list.Model
	keys     KeyMap
	location *time.Location
}

func New(reminders []models.Reminder, now time.Time, loc *time.Location, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Reminders"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	m := Model{list: l, keys: keys, location: loc}
	m.SetReminders(reminders, now)
	return m
}

// SetReminders replaces the items; now decides which ones are marked passed.
func (m *Model) SetReminders(reminders []models.Reminder, now time.Time) {
	items := make([]list.Item, len(reminders))
	for i, r := range reminders {
		items[i] = Item{Reminder: r, Location: m.location, Passed: !r.IsUpcoming(now)}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddReminderMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditReminderMsg{Reminder: item.Reminder} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteReminderMsg{Reminder: item.Reminder} }
			}
			return m, nil
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
