package reminders

import (
	"fmt"

	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/utils"
)

type ReminderDeleteCmd struct {
	ID  string `arg:"" help:"Reminder ID or unique prefix."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ReminderDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	r, err := ctx.ResolveReminder(c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Delete reminder %q at %s?", r.Message, utils.FormatDateTime(r.Time, ctx.Location)))
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Deletion cancelled.")
			return nil
		}
	}

	ctx.Reminders.DeleteReminder(r.ID)
	ctx.Printf("✓ Reminder %s deleted\n", cli.ShortID(r.ID))
	return nil
}
