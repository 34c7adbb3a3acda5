package insights

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/export"
)

type ExportCmd struct {
	Format string `short:"f" help:"Output format (json|yaml)." default:"json"`
	Output string `short:"o" help:"Write to this file instead of stdout." type:"path"`
}

func (c *ExportCmd) Validate() error {
	_, err := export.ParseFormat(c.Format)
	return err
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	format, err := export.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	if err := ctx.Open(); err != nil {
		return err
	}

	doc := export.NewDocument(ctx.Journal.Entries(), ctx.Reminders.Reminders(), ctx.Clock())

	var w io.Writer = ctx.Out
	if c.Output != "" {
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := export.Write(w, doc, format); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if c.Output != "" {
		ctx.Printf("✓ Exported %d entries and %d reminders to %s\n", len(doc.JournalEntries), len(doc.Reminders), c.Output)
	}
	return nil
}
