package entries

import (
	"fmt"

	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/validation"
)

type EntryEditCmd struct {
	ID       string `arg:"" help:"Entry ID or unique prefix."`
	Mood     string `short:"m" help:"New mood tag."`
	Thoughts string `short:"t" help:"New text."`
}

func (c *EntryEditCmd) Run(ctx *cli.Context) error {
	if c.Mood == "" && c.Thoughts == "" {
		return fmt.Errorf("nothing to change: pass --mood or --thoughts")
	}
	if err := ctx.Open(); err != nil {
		return err
	}

	entry, err := ctx.ResolveEntry(c.ID)
	if err != nil {
		return err
	}

	// Flags left empty keep the stored value.
	upd := models.EntryUpdate{Mood: entry.Mood, Thoughts: entry.Thoughts}
	if c.Mood != "" {
		upd.Mood = c.Mood
	}
	if c.Thoughts != "" {
		upd.Thoughts = c.Thoughts
	}
	if err := validation.ValidateEntry(upd.Mood, upd.Thoughts); err != nil {
		return err
	}

	ctx.Journal.UpdateEntry(entry.ID, upd)
	ctx.Printf("✓ Entry %s updated\n", cli.ShortID(entry.ID))
	return nil
}
