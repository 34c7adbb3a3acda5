package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/tui/components/dashboard"
	"github.com/julianstephens/diario/internal/tui/components/insights"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateDashboard:
		content = m.viewDashboard()
	case constants.StateJournal:
		content = docStyle.Render(m.entryList.View())
	case constants.StateReminders:
		content = docStyle.Render(m.reminderList.View())
	case constants.StateInsights:
		content = m.viewInsights()
	case constants.StateAddEntry, constants.StateEditEntry, constants.StateAddReminder, constants.StateEditReminder:
		content = m.viewForm()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if tabIndex(active) < 0 {
		active = m.previousState
	}

	var tabs []string
	for i, title := range []string{"Dashboard", "Journal", "Reminders", "Insights"} {
		if mainTabs[i] == active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	now := m.now()
	return docStyle.Render(dashboard.View(dashboard.Data{
		Recent:     m.journal.Recent(constants.DashboardRecentEntries),
		Upcoming:   m.reminders.Upcoming(now, constants.DashboardUpcomingReminders),
		StreakDays: m.stats.Summary().StreakDays,
		Location:   m.stats.Location(),
	}))
}

func (m Model) viewInsights() string {
	return docStyle.Render(insights.View(m.stats.Summary(), m.stats.Months(2)))
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}
	view := m.form.View()
	if m.formError != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, errorStyle.Render("✗ "+m.formError))
	}
	return docStyle.Render(view)
}

func (m Model) viewConfirmDelete() string {
	if m.pending == nil {
		return ""
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(m.pending.prompt()),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
