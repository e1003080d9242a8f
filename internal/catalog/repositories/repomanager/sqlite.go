package repomanager

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	sqlitemigrations "github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/migrations/sqlite"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/repositories/books"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/repositories/loans"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/repositories/users"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/dbx"
)

// SQLiteRepositoryManager vends SQLite-backed repository implementations.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Books(db dbx.DBTX) books.Repository {
	return books.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Loans(db dbx.DBTX) loans.Repository {
	return loans.NewSQLiteRepository(db)
}

// RunMigrations applies the embedded SQLite migrations. The provider is
// scoped to this backend, so the Go migrations never leak into the
// PostgreSQL run.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	p, err := goose.NewProvider(goose.DialectSQLite3, db, sqlitemigrations.Migrations,
		goose.WithGoMigrations(sqlitemigrations.Go()...))
	if err != nil {
		return err
	}
	_, err = p.Up(ctx)
	return err
}
