package entries

import (
	"fmt"

	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/utils"
)

type EntryListCmd struct {
	Mood    string `short:"m" help:"Only show entries with this mood."`
	Limit   int    `short:"n" help:"Show at most this many entries (0 = all)." default:"0"`
	ShowIDs bool   `help:"Show full entry IDs." name:"show-ids"`
}

func (c *EntryListCmd) Validate() error {
	if c.Mood != "" && !models.IsValidMood(c.Mood) {
		return fmt.Errorf("unknown mood %q", c.Mood)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	return nil
}

func (c *EntryListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	entries := ctx.Journal.FilterByMood(c.Mood)
	if len(entries) == 0 {
		if c.Mood != "" {
			ctx.Printf("No entries with mood %s\n", c.Mood)
		} else {
			ctx.Println("No entries yet. Add one with 'diario entry add'.")
		}
		return nil
	}
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	ctx.Println("Journal:")
	for _, e := range entries {
		id := cli.ShortID(e.ID)
		if c.ShowIDs {
			id = e.ID
		}
		ctx.Printf("  %s  %s  %-10s  %s\n", id, utils.FormatDateTime(e.Date, ctx.Location), e.MoodLabel(), e.Title())
	}
	return nil
}
