package entries

import (
	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/utils"
)

type EntryShowCmd struct {
	ID string `arg:"" help:"Entry ID or unique prefix."`
}

func (c *EntryShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	entry, err := ctx.ResolveEntry(c.ID)
	if err != nil {
		return err
	}

	ctx.Printf("ID:    %s\n", entry.ID)
	ctx.Printf("Date:  %s\n", utils.FormatDateTime(entry.Date, ctx.Location))
	ctx.Printf("Mood:  %s\n", entry.MoodLabel())
	ctx.Println()
	ctx.Println(entry.Thoughts)
	return nil
}
