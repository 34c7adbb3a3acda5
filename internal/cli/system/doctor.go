package system

import (
	"fmt"
	"strings"

	"github.com/julianstephens/diario/internal/cli"
	"github.com/julianstephens/diario/internal/constants"
	"github.com/julianstephens/diario/internal/models"
	"github.com/julianstephens/diario/internal/persist"
	"github.com/julianstephens/diario/internal/storage"
	"github.com/julianstephens/diario/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name string
	// needsDB checks are skipped when storage cannot be opened.
	needsDB bool
	// warnOnly failures do not fail the command.
	warnOnly bool
	run      func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsDB: true, run: checkMigrationsComplete},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Data validation", needsDB: true, run: checkValidation},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		ctx.Printf("❌ Storage reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Storage reachable: OK\n")
		dbReachable = true
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	err := ctx.Store.Load()

	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		if err != nil {
			return fmt.Errorf("failed to load storage: %w", err)
		}
		return nil
	}

	// Schema mismatches keep the connection open and are reported by the
	// schema checks instead.
	db := sqliteStore.GetDB()
	if db == nil {
		if err != nil {
			return fmt.Errorf("failed to load database: %w", err)
		}
		return fmt.Errorf("database connection is nil")
	}
	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// Only SQLite has a schema
		return nil
	}

	st, err := sqliteStore.MigrationStatus()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if st.Current > st.Latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", st.Current, st.Latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		return nil
	}

	st, err := sqliteStore.MigrationStatus()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if st.Current < st.Latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run '%s migrate')", st.Current, st.Latest, constants.AppName)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr, err := ctx.BackupManager()
	if err != nil {
		return err
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with '%s backup create'", constants.AppName)
	}
	return nil
}

// checkValidation decodes both collections strictly, so corrupt data that
// the stores would silently drop is reported here.
func checkValidation(ctx *cli.Context) error {
	entries, err := persist.NewCollection[models.JournalEntry](ctx.Store, constants.JournalEntriesKey).LoadErr()
	if err != nil {
		return err
	}
	reminders, err := persist.NewCollection[models.Reminder](ctx.Store, constants.RemindersKey).LoadErr()
	if err != nil {
		return err
	}

	v := validation.New(validation.WithClock(ctx.Clock))
	result := v.ValidateEntries(entries)
	rr := v.ValidateReminders(reminders)
	result.Conflicts = append(result.Conflicts, rr.Conflicts...)
	if result.HasConflicts() {
		return fmt.Errorf("%d problem(s) found\n   %s", len(result.Conflicts),
			strings.ReplaceAll(strings.TrimSpace(result.FormatReport()), "\n", "\n   "))
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	if ctx.Location == nil {
		return fmt.Errorf("no timezone configured")
	}

	now := ctx.Now()
	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format("2006-01-02T15:04:05Z07:00"))
	}
	return nil
}
