package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "diario"
	DefaultConfigPath = "~/.config/diario/diario.db"
	Version           = "v0.3.0"

	// Storage keys for the two persisted collections
	JournalEntriesKey = "journalEntries"
	RemindersKey      = "reminders"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DateTimeFormat is the format accepted for reminder times on the command line
	DateTimeFormat = "2006-01-02 15:04"

	// MinIDPrefixLen is the shortest ID prefix accepted when resolving records
	MinIDPrefixLen = 4

	// Dashboard list sizes
	DashboardRecentEntries     = 3
	DashboardUpcomingReminders = 3

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "diario-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyDefaultWindow    = time.Minute
	NotifierLockfileName   = "diario-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.diario"
	TrayProcessPrefix      = "diario-tray"
)

// Session States
const (
	StateDashboard SessionState = iota
	StateJournal
	StateReminders
	StateInsights
	StateAddEntry
	StateEditEntry
	StateAddReminder
	StateEditReminder
	StateConfirmDelete
)
