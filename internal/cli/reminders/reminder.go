package reminders

// ReminderCmd groups the reminder subcommands.
type ReminderCmd struct {
	Add    ReminderAddCmd    `cmd:"" help:"Schedule a reminder."`
	Edit   ReminderEditCmd   `cmd:"" help:"Change a reminder's message or time."`
	Delete ReminderDeleteCmd `cmd:"" help:"Delete a reminder."`
	List   ReminderListCmd   `cmd:"" help:"List reminders, earliest first." default:"1"`
	Notify ReminderNotifyCmd `cmd:"" help:"Send desktop notifications for reminders that are due."`
}
