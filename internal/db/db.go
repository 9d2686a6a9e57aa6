package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Init opens the snapshot registry. Supported drivers are "sqlite" and "pgx".
func Init(driver, connection string) (*sqlx.DB, error) {
	_, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" && !strings.HasPrefix(connection, ":memory:") {
		dir := filepath.Dir(sqlitePath(connection))
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect(driver, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if driver == "sqlite" {
		// A single writer avoids SQLITE_BUSY on concurrent publishes.
		db.SetMaxOpenConns(1)
	}

	slog.Info("database connected", "driver", driver)
	return db, nil
}

func Close(db *sqlx.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// sqlitePath strips the query string from a sqlite DSN.
func sqlitePath(connection string) string {
	path, _, _ := strings.Cut(strings.TrimPrefix(connection, "file:"), "?")
	return path
}
