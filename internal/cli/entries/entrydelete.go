package entries

import (
	"fmt"

	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/utils"
)

type EntryDeleteCmd struct {
	ID  string `arg:"" help:"Entry ID or unique prefix."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *EntryDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	entry, err := ctx.ResolveEntry(c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Delete entry %q from %s?", entry.Title(), utils.FormatDateTime(entry.Date, ctx.Location)))
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Deletion cancelled.")
			return nil
		}
	}

	ctx.Journal.DeleteEntry(entry.ID)
	ctx.Printf("✓ Entry %s deleted\n", cli.ShortID(entry.ID))
	return nil
}
