package entries

import (
	"strings"

	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/validation"
)

type EntryAddCmd struct {
	Mood     string   `short:"m" help:"Mood tag (felice|calmo|triste|arrabbiato|sorpreso|stanco|energico|innamorato|pensieroso)." required:""`
	Thoughts []string `arg:"" help:"What's on your mind."`
}

func (c *EntryAddCmd) text() string {
	return strings.Join(c.Thoughts, " ")
}

func (c *EntryAddCmd) Validate() error {
	return validation.ValidateEntry(c.Mood, c.text())
}

func (c *EntryAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Open(); err != nil {
		return err
	}

	entry := ctx.Journal.AddEntry(c.Mood, c.text())
	ctx.Printf("✓ Entry added (%s, %s)\n", cli.ShortID(entry.ID), entry.MoodLabel())
	return nil
}
