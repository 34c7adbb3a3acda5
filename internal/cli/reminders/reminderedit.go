package reminders

import (
	"fmt"

	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/utils"
	"github.com/julianstephens/diario/internal/validation"
)

type ReminderEditCmd struct {
	ID      string `arg:"" help:"Reminder ID or unique prefix."`
	Message string `short:"m" help:"New message."`
	At      string `short:"a" help:"New time (YYYY-MM-DD HH:MM, local time)."`
}

func (c *ReminderEditCmd) Run(ctx *cli.Context) error {
	if c.Message == "" && c.At == "" {
		return fmt.Errorf("nothing to change: pass --message or --at")
	}
	if err := ctx.Open(); err != nil {
		return err
	}

	r, err := ctx.ResolveReminder(c.ID)
	if err != nil {
		return err
	}

	upd := models.ReminderUpdate{Message: r.Message, Time: r.Time}
	if c.Message != "" {
		upd.Message = c.Message
	}
	if c.At != "" {
		if upd.Time, err = utils.ParseDateTimeInLocation(c.At, ctx.Location); err != nil {
			return err
		}
	}
	// Existing reminders may keep or move to a past time.
	if err := validation.ValidateReminder(upd.Message, upd.Time, ctx.Now(), true); err != nil {
		return err
	}

	ctx.Reminders.UpdateReminder(r.ID, upd)
	ctx.Printf("✓ Reminder %s updated: %s at %s\n", cli.ShortID(r.ID), upd.Message, utils.FormatDateTime(upd.Time, ctx.Location))
	return nil
}
