// Package repomanager wires concrete repository implementations to a storage
// backend and exposes the schema migration hook. The backend is chosen from
// the DSN: a postgres:// or postgresql:// URL selects PostgreSQL, anything
// else is treated as a SQLite file path (or ":memory:").
package repomanager

import (
	"context"
	"database/sql"
	"strings"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/repositories/books"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/repositories/loans"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/repositories/users"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/dbx"
)

// RepositoryManager vends backend-specific repository implementations bound
// to a DBTX, plus a migration hook run once at startup.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Books(db dbx.DBTX) books.Repository
	Loans(db dbx.DBTX) loans.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}

// Open opens the database named by dsn, picks the matching
// RepositoryManager, and applies pending migrations.
func Open(ctx context.Context, dsn string) (*sql.DB, RepositoryManager, error) {
	var (
		db  *sql.DB
		m   RepositoryManager
		err error
	)

	if isPostgresDSN(dsn) {
		db, err = sql.Open("pgx", dsn)
		m = &PostgresRepositoryManager{}
	} else {
		db, err = sql.Open("sqlite", dsn)
		m = &SQLiteRepositoryManager{}
	}
	if err != nil {
		return nil, nil, err
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, m, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
