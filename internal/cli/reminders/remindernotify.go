package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/logger"
	"github.com/julianstephens/diario/internal/notifier"
)

type ReminderNotifyCmd struct {
	Window time.Duration `short:"w" help:"How far back a reminder counts as due." default:"1m"`
	DryRun bool          `help:"Print the notifications instead of sending them." name:"dry-run"`
}

func (c *ReminderNotifyCmd) Validate() error {
	if c.Window <= 0 {
		return fmt.Errorf("window must be positive")
	}
	return nil
}

func (c *ReminderNotifyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	due := ctx.Reminders.Due(ctx.Now(), c.Window)
	if len(due) == 0 {
		logger.Debug("No reminders due", "window", c.Window)
		return nil
	}

	var sender notifier.Sender
	if !c.DryRun {
		sender = ctx.Notifier
		if sender == nil {
			sender = notifier.New()
		}
	}

	failed := 0
	for _, res := range notifier.NotifyDue(context.Background(), sender, due, ctx.Location) {
		if res.Err != nil {
			failed++
			logger.Warn("Failed to send notification", "reminder", res.Reminder.ID, "error", res.Err)
			ctx.Printf("✗ %s: %v\n", res.Text, res.Err)
			continue
		}
		ctx.Printf("✓ %s\n", res.Text)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d notifications failed", failed, len(due))
	}
	return nil
}
