// Package migrations holds the embedded database schema and applies it with
// goose. Each supported driver has its own directory of SQL migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Driver names accepted by [Migrate]. They match the database/sql driver
// names registered by pgx and go-sqlite3.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	errNilDB             = errors.New("db is nil")
	errUnsupportedDriver = errors.New("unsupported driver")
)

// Migrate applies all pending migrations for driverName to db.
func Migrate(ctx context.Context, db *sql.DB, driverName string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	provider, err := newProvider(db, driverName)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version returns the latest applied migration version.
func Version(ctx context.Context, db *sql.DB, driverName string) (int64, error) {
	if db == nil {
		return 0, errNilDB
	}

	provider, err := newProvider(db, driverName)
	if err != nil {
		return 0, err
	}

	return provider.GetDBVersion(ctx)
}

func newProvider(db *sql.DB, driverName string) (*goose.Provider, error) {
	var (
		dialect goose.Dialect
		dir     string
	)

	switch driverName {
	case DriverPostgres:
		dialect, dir = goose.DialectPostgres, "postgres"
	case DriverSQLite:
		dialect, dir = goose.DialectSQLite3, "sqlite"
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedDriver, driverName)
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return nil, err
	}

	return goose.NewProvider(dialect, db, fsys)
}
