package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

const (
	// DriverSQLite is the embedded default store.
	DriverSQLite = "sqlite3"
	// DriverPostgres selects PostgreSQL through pgx's database/sql adapter.
	DriverPostgres = "pgx"
)

// Open creates the database handle for driver and verifies it with a ping.
// SQLite DSNs get foreign keys, immediate write transactions and (for files) WAL appended
// unless the caller already set them, and the pool is limited to one connection.
func Open(ctx context.Context, driver, databaseURL string) (*sql.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	var dsn string
	switch driver {
	case DriverSQLite:
		dsn = SQLiteDSN(databaseURL)
	case DriverPostgres:
		dsn = databaseURL
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database connection established", slog.String("driver", driver))
	return db, nil
}

// SQLiteDSN appends the pragmas the store depends on to a sqlite path or file: URI.
func SQLiteDSN(databaseURL string) string {
	params := []string{}
	if !strings.Contains(databaseURL, "_foreign_keys") && !strings.Contains(databaseURL, "_fk") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(databaseURL, "_txlock") {
		params = append(params, "_txlock=immediate")
	}
	if !strings.Contains(databaseURL, ":memory:") && !strings.Contains(databaseURL, "_journal_mode") {
		params = append(params, "_journal_mode=WAL")
	}
	if len(params) == 0 {
		return databaseURL
	}
	sep := "?"
	if strings.Contains(databaseURL, "?") {
		sep = "&"
	}
	return databaseURL + sep + strings.Join(params, "&")
}

// Close closes the database handle.
func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	slog.Info("Database connection closed.")
	return nil
}
