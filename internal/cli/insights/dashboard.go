package insights

import (
	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/tui/components/dashboard"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	ctx.Print(dashboard.View(dashboard.Data{
		Recent:     ctx.Journal.Recent(constants.DashboardRecentEntries),
		Upcoming:   ctx.Reminders.Upcoming(ctx.Now(), constants.DashboardUpcomingReminders),
		StreakDays: ctx.Stats.Summary().StreakDays,
		Location:   ctx.Location,
	}))
	return nil
}
