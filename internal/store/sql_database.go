package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-users-posts/internal/config"
	"github.com/MKhiriev/go-users-posts/internal/logger"
	"github.com/MKhiriev/go-users-posts/migrations"
)

// DB bundles a connection pool with the dialect specific pieces repositories
// need: the squirrel statement builder and the driver error classifier.
type DB struct {
	*sql.DB
	driverName         string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// newDB wraps conn for driverName. Unknown drivers get the SQLite settings.
func newDB(conn *sql.DB, driverName string, log *logger.Logger) *DB {
	db := &DB{
		DB:         conn,
		driverName: driverName,
		logger:     log,
	}

	switch driverName {
	case migrations.DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Connect opens the database described by cfg.DSN. PostgreSQL URLs go to
// pgx, everything else is opened as an SQLite database.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.DSN == "" {
		return nil, ErrUnsupportedDSN
	}

	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies the embedded schema for the connection's driver.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driverName)
}

// DriverName reports the database/sql driver the pool was opened with.
func (db *DB) DriverName() string {
	return db.driverName
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
