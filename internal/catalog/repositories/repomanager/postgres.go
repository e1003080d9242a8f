package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	postgresmigrations "github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/migrations/postgres"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/repositories/books"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/repositories/loans"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/repositories/users"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/dbx"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations for deployments where several processes share one store.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Books(db dbx.DBTX) books.Repository {
	return books.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Loans(db dbx.DBTX) loans.Repository {
	return loans.NewPostgresRepository(db)
}

// RunMigrations applies the embedded PostgreSQL migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	p, err := goose.NewProvider(goose.DialectPostgres, db, postgresmigrations.Migrations)
	if err != nil {
		return err
	}
	_, err = p.Up(ctx)
	return err
}
