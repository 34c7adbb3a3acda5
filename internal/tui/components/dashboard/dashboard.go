package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/tui/components/insights"
	"github.com/julianstephens/diario/internal/utils"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginTop(1)
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	dateStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Data is what the dashboard shows.
type Data struct {
	Recent     []models.JournalEntry
	Upcoming   []models.Reminder
	StreakDays int
	Location   *time.Location
}

func View(d Data) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Recent entries") + "\n")
	if len(d.Recent) == 0 {
		b.WriteString(emptyStyle.Render("  Nothing written yet. Press tab to open the journal.") + "\n")
	}
	for _, e := range d.Recent {
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			dateStyle.Render(utils.FormatDateTime(e.Date, d.Location)),
			insights.MoodStyle(e.Mood).Render(fmt.Sprintf("%-10s", e.MoodLabel())),
			e.Title())
	}

	b.WriteString(sectionStyle.Render("Upcoming reminders") + "\n")
	if len(d.Upcoming) == 0 {
		b.WriteString(emptyStyle.Render("  No reminders scheduled.") + "\n")
	}
	for _, r := range d.Upcoming {
		fmt.Fprintf(&b, "  %s  ⏰ %s\n", dateStyle.Render(utils.FormatDateTime(r.Time, d.Location)), r.Message)
	}

	b.WriteString(sectionStyle.Render("Streak") + "\n")
	fmt.Fprintf(&b, "  %d consecutive day(s) of writing\n", d.StreakDays)
	return b.String()
}
