package entries

// EntryCmd groups the journal subcommands.
type EntryCmd struct {
	Add    EntryAddCmd    `cmd:"" help:"Write a new journal entry."`
	Edit   EntryEditCmd   `cmd:"" help:"Change an entry's mood or text."`
	Delete EntryDeleteCmd `cmd:"" help:"Delete an entry."`
	List   EntryListCmd   `cmd:"" help:"List entries, newest first." default:"1"`
	Show   EntryShowCmd   `cmd:"" help:"Show one entry in full."`
}
