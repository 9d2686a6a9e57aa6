package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// registryDialects lists the drivers the snapshot registry runs on.
var registryDialects = map[string]goose.Dialect{
	"sqlite": goose.DialectSQLite3,
	"pgx":    goose.DialectPostgres,
}

func dialectFor(driver string) (goose.Dialect, error) {
	dialect, ok := registryDialects[driver]
	if !ok {
		return "", fmt.Errorf("%w: %q (use sqlite or pgx)", ErrUnsupportedDriver, driver)
	}
	return dialect, nil
}

// newMigrator binds the embedded snapshot registry migrations to db.
func newMigrator(db *sql.DB, driver string) (*goose.Provider, error) {
	dialect, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	migrations, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	provider, err := goose.NewProvider(dialect, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	return provider, nil
}

// RunMigrations applies every pending registry migration.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	migrator, err := newMigrator(db, driver)
	if err != nil {
		return err
	}

	results, err := migrator.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, r := range results {
		slog.DebugContext(ctx, "migration applied", "version", r.Source.Version, "duration", r.Duration)
	}

	version, err := migrator.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	slog.InfoContext(ctx, "migrations completed", "applied", len(results), "version", version)
	return nil
}

// MigrateDown rolls back the latest applied migration.
func MigrateDown(ctx context.Context, db *sql.DB, driver string) error {
	migrator, err := newMigrator(db, driver)
	if err != nil {
		return err
	}

	result, err := migrator.Down(ctx)
	if err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}
	slog.InfoContext(ctx, "rolled back migration", "version", result.Source.Version)
	return nil
}

// MigrationStatus reports each registry migration and whether it is applied.
type MigrationStatus struct {
	Version int64
	Name    string
	Applied bool
}

func Status(ctx context.Context, db *sql.DB, driver string) ([]MigrationStatus, error) {
	migrator, err := newMigrator(db, driver)
	if err != nil {
		return nil, err
	}

	statuses, err := migrator.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("read migration status: %w", err)
	}
	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Name:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}
