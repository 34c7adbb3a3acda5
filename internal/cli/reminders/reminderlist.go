package reminders

import (
	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/utils"
)

type ReminderListCmd struct {
	Upcoming bool `short:"u" help:"Hide reminders whose time has passed."`
	ShowIDs  bool `help:"Show full reminder IDs." name:"show-ids"`
}

func (c *ReminderListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	now := ctx.Now()
	list := ctx.Reminders.Reminders()
	if c.Upcoming {
		list = ctx.Reminders.Upcoming(now, -1)
	}
	if len(list) == 0 {
		ctx.Println("No reminders scheduled.")
		return nil
	}

	ctx.Println("Reminders:")
	for _, r := range list {
		id := cli.ShortID(r.ID)
		if c.ShowIDs {
			id = r.ID
		}
		marker := " "
		if !r.IsUpcoming(now) {
			marker = "✓"
		}
		ctx.Printf("  %s %s  %s  %s\n", marker, id, utils.FormatDateTime(r.Time, ctx.Location), r.Message)
	}
	return nil
}
