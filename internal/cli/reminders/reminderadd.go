package reminders

import (
	"strings"

	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/utils"
	"github.com/julianstephens/diario/internal/validation"
)

type ReminderAddCmd struct {
	Message []string `arg:"" help:"Reminder message."`
	At      string   `short:"a" help:"When to fire (YYYY-MM-DD HH:MM, local time)." required:""`
}

func (c *ReminderAddCmd) Run(ctx *cli.Context) error {
	at, err := utils.ParseDateTimeInLocation(c.At, ctx.Location)
	if err != nil {
		return err
	}
	message := strings.Join(c.Message, " ")
	if err := validation.ValidateReminder(message, at, ctx.Now(), false); err != nil {
		return err
	}

	if err := ctx.Open(); err != nil {
		return err
	}

	r := ctx.Reminders.AddReminder(message, at)
	ctx.Printf("✓ Reminder added: %s at %s (%s)\n", r.Message, utils.FormatDateTime(r.Time, ctx.Location), cli.ShortID(r.ID))
	return nil
}
