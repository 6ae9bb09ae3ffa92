package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shopledger/shopledger/migrations"
	"go.uber.org/multierr"
)

// Migrate applies every pending up migration for driver.
//
// SQLite migrates through db itself so in-memory databases see the schema. PostgreSQL
// migrates through a dedicated handle opened from databaseURL, which is closed afterwards.
func Migrate(db *sql.DB, driver, databaseURL string) (err error) {
	var (
		dir      string
		dbDriver migratedb.Driver
		closeDB  func() error
	)

	switch driver {
	case DriverSQLite:
		dir = "sqlite"
		dbDriver, err = sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
		if err != nil {
			return fmt.Errorf("could not create sqlite driver instance for migrations: %w", err)
		}
		// The sqlite driver closes the handle it wraps; the caller owns db.
		closeDB = func() error { return nil }
	case DriverPostgres:
		dir = "postgres"
		migrationDB, openErr := sql.Open(DriverPostgres, databaseURL)
		if openErr != nil {
			return fmt.Errorf("failed to open database connection for migrations: %w", openErr)
		}
		dbDriver, err = pgxmigrate.WithInstance(migrationDB, &pgxmigrate.Config{})
		if err != nil {
			return multierr.Append(
				fmt.Errorf("could not create pgx driver instance for migrations: %w", err),
				migrationDB.Close(),
			)
		}
		closeDB = func() error { return multierr.Append(dbDriver.Close(), migrationDB.Close()) }
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	src, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return multierr.Append(fmt.Errorf("could not open embedded migrations: %w", err), closeDB())
	}
	defer func() {
		err = multierr.Combine(err, src.Close(), closeDB())
	}()

	m, err := migrate.NewWithInstance("iofs", src, driver, dbDriver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("No new migrations to apply.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	slog.Info("Database migrations applied successfully.", slog.String("dialect", dir))
	return nil
}
