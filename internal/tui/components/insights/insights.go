// Package insights renders mood statistics and the calendar heat-map. The
// renderers are shared by the TUI insights tab and the CLI.
package insights

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/stats"
)

const barWidth = 24

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	todayStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	futureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	cellStyle   = lipgloss.NewStyle().Width(3).Align(lipgloss.Right)
	monthStyle  = lipgloss.NewStyle().MarginRight(4)
)

// MoodStyle colours text with the catalogue colour of mood.
func MoodStyle(mood string) lipgloss.Style {
	if m, ok := models.MoodByValue(mood); ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color))
	}
	return labelStyle
}

func moodLabel(mood string) string {
	if m, ok := models.MoodByValue(mood); ok {
		return m.Label
	}
	return mood
}

// RenderSummary shows totals, the most frequent mood and the streak.
func RenderSummary(sum stats.Summary) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Insights") + "\n\n")
	fmt.Fprintf(&b, "Entries:        %d\n", sum.Mood.Total)
	if mf := sum.Mood.MostFrequent; mf != nil {
		fmt.Fprintf(&b, "Most frequent:  %s (%d)\n", MoodStyle(mf.Mood).Render(moodLabel(mf.Mood)), mf.Count)
	} else {
		b.WriteString("Most frequent:  " + mutedStyle.Render("none yet") + "\n")
	}
	days := "days"
	if sum.StreakDays == 1 {
		days = "day"
	}
	fmt.Fprintf(&b, "Writing streak: %d %s\n", sum.StreakDays, days)
	return b.String()
}

// RenderMoodBars draws one percentage bar per mood, most frequent first.
func RenderMoodBars(ranked []stats.MoodShare) string {
	if len(ranked) == 0 {
		return mutedStyle.Render("No moods recorded yet.") + "\n"
	}

	var b strings.Builder
	for _, s := range ranked {
		filled := int(s.Percent/100*barWidth + 0.5)
		bar := MoodStyle(s.Mood).Render(strings.Repeat("█", filled)) +
			mutedStyle.Render(strings.Repeat("░", barWidth-filled))
		fmt.Fprintf(&b, "%-11s %s %5.1f%% (%d)\n", moodLabel(s.Mood), bar, s.Percent, s.Count)
	}
	return b.String()
}

// RenderMonth draws a Monday-first grid. Days with an entry take the colour
// of that day's mood, today is underlined and future days are dimmed.
func RenderMonth(m stats.Month) string {
	var rows []string
	rows = append(rows, headerStyle.Render(fmt.Sprintf("%s %d", m.Month, m.Year)))

	var head strings.Builder
	for _, d := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		head.WriteString(cellStyle.Render(d))
	}
	rows = append(rows, mutedStyle.Render(head.String()))

	for _, week := range m.Weeks() {
		var line strings.Builder
		for _, d := range week {
			line.WriteString(renderDay(d))
		}
		rows = append(rows, line.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderDay(d stats.Day) string {
	if d.Day == 0 {
		return cellStyle.Render("")
	}

	style := cellStyle
	switch {
	case d.IsFuture:
		style = style.Inherit(futureStyle)
	case d.Mood != "":
		style = style.Inherit(MoodStyle(d.Mood).Bold(true))
	default:
		style = style.Inherit(mutedStyle)
	}
	text := fmt.Sprintf("%d", d.Day)
	if d.IsToday {
		text = todayStyle.Render(text)
	}
	return style.Render(text)
}

// RenderMonths places months side by side.
func RenderMonths(months []stats.Month) string {
	blocks := make([]string, len(months))
	for i, m := range months {
		if i < len(months)-1 {
			blocks[i] = monthStyle.Render(RenderMonth(m))
		} else {
			blocks[i] = RenderMonth(m)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// RenderLegend lists every mood in its colour.
func RenderLegend() string {
	parts := make([]string, len(models.Moods))
	for i, m := range models.Moods {
		parts[i] = MoodStyle(m.Value).Render("● " + m.Label)
	}
	return strings.Join(parts, "  ")
}

// View renders the whole insights tab.
func View(sum stats.Summary, months []stats.Month) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderSummary(sum),
		RenderMoodBars(sum.Mood.Ranked()),
		RenderMonths(months),
		"",
		RenderLegend(),
	)
}
