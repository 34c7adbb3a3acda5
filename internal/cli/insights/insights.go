package insights

import (
	"fmt"

	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/tui/components/insights"
)

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	sum := ctx.Stats.Summary()
	ctx.Println(insights.RenderSummary(sum))
	ctx.Print(insights.RenderMoodBars(sum.Mood.Ranked()))
	return nil
}

type CalendarCmd struct {
	Months int `short:"n" help:"Number of months to show, ending with the current one." default:"2"`
}

func (c *CalendarCmd) Validate() error {
	if c.Months < 1 || c.Months > 12 {
		return fmt.Errorf("months must be between 1 and 12")
	}
	return nil
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	ctx.Println(insights.RenderMonths(ctx.Stats.Months(c.Months)))
	ctx.Println()
	ctx.Println(insights.RenderLegend())
	return nil
}
