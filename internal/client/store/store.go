// Package store opens the local database, applies embedded migrations, and
// wires the repositories for the selected backend.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/pokedex/internal/client/migrations"
	"github.com/dmitrijs2005/pokedex/internal/client/repositories/session"
	"github.com/dmitrijs2005/pokedex/internal/client/repositories/users"
	"github.com/dmitrijs2005/pokedex/internal/common"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Supported backend drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Store owns the database handle and the repositories bound to it.
type Store struct {
	DB      *sql.DB
	Users   users.Repository
	Session session.Repository
}

// Open connects to the configured backend, runs pending migrations and
// returns the wired repositories. Failures are reported as
// common.ErrStoreUnavailable with the cause attached.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	var (
		db      *sql.DB
		dialect string
		err     error
	)

	switch driver {
	case DriverSQLite:
		db, err = sql.Open("sqlite", dsn)
		dialect = "sqlite3"
	case DriverPostgres:
		db, err = sql.Open("pgx", dsn)
		dialect = "postgres"
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	if err := runMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	s := &Store{DB: db}
	switch driver {
	case DriverSQLite:
		s.Users = users.NewSQLiteRepository(db)
		s.Session = session.NewSQLiteRepository(db)
	case DriverPostgres:
		s.Users = users.NewPostgresRepository(db)
		s.Session = session.NewPostgresRepository(db)
	}
	return s, nil
}

func runMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}
