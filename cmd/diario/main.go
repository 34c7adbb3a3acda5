package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/cli/backups"
	"github.com/julianstephens/diario/internal/cli/entries"
	"github.com/julianstephens/diario/internal/cli/insights"
	"github.com/julianstephens/diario/internal/cli/reminders"
	"github.com/julianstephens/diario/internal/cli/system"
	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/errors"
	"github.com/julianstephens/diario/internal/logger"
	"github.com/julianstephens/diario/internal/storage"
	"github.com/julianstephens/diario/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Storage path. A .json suffix selects the JSON file backend, :memory: a throwaway in-memory one." env:"DIARIO_CONFIG" default:"${default_config}"`
	Debug    bool   `help:"Log debug output to stderr." env:"DIARIO_DEBUG"`
	Timezone string `help:"IANA timezone used for calendar days (default: system local)." env:"DIARIO_TIMEZONE" default:"Local"`

	Init    system.InitCmd    `cmd:"" help:"Initialize diario storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`

	Entry     entries.EntryCmd      `cmd:"" help:"Manage journal entries."`
	Reminder  reminders.ReminderCmd `cmd:"" help:"Manage reminders."`
	Insights  insights.InsightsCmd  `cmd:"" help:"Show mood statistics and writing streak."`
	Calendar  insights.CalendarCmd  `cmd:"" help:"Show the mood calendar."`
	Dashboard insights.DashboardCmd `cmd:"" help:"Show recent entries and upcoming reminders."`
	Export    insights.ExportCmd    `cmd:"" help:"Export entries and reminders as JSON or YAML."`
	Backup    struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

// logDir picks where the log file goes: next to the storage file, or the
// default config directory for in-memory storage.
func logDir(configPath string) string {
	if configPath == storage.MemoryPath {
		if dir, err := os.UserConfigDir(); err == nil {
			return filepath.Join(dir, constants.AppName)
		}
		return os.TempDir()
	}
	return filepath.Dir(configPath)
}

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Mood journal and reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	configPath, err := utils.ExpandPath(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir(configPath)}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	loc, err := utils.LoadLocation(CLI.Timezone)
	if err != nil {
		errors.Fatalf("invalid timezone %q: %v", CLI.Timezone, err)
	}

	store := storage.New(configPath)
	defer store.Close()

	appCtx := cli.NewContext(store, loc)
	logger.Debug("Starting", "command", ctx.Command(), "config", configPath, "timezone", loc.String())

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
