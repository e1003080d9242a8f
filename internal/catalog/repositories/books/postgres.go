package books

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/models"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/common"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/dbx"
)

// PostgresRepository implements Repository against PostgreSQL.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository returns a new PostgresRepository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, b *models.Book) (int64, error) {
	query := `INSERT INTO books (title, author, publisher, year, isbn, quantity, available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		b.Title, b.Author, b.Publisher, b.Year, b.ISBN, b.Quantity, b.Available).Scan(&b.ID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return b.ID, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Book, error) {
	query := `SELECT id, title, author, publisher, year, isbn, quantity, available
		 FROM books ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Book
	for rows.Next() {
		var item models.Book
		if err := rows.Scan(&item.ID, &item.Title, &item.Author, &item.Publisher,
			&item.Year, &item.ISBN, &item.Quantity, &item.Available); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	query := `SELECT id, title, author, publisher, year, isbn, quantity, available
		 FROM books WHERE id = $1`
	b := &models.Book{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author,
		&b.Publisher, &b.Year, &b.ISBN, &b.Quantity, &b.Available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

func (r *PostgresRepository) Update(ctx context.Context, b *models.Book) error {
	query := `UPDATE books
		 SET title = $1, author = $2, publisher = $3, year = $4, isbn = $5, quantity = $6, available = $7
		 WHERE id = $8`
	_, err := r.db.ExecContext(ctx, query,
		b.Title, b.Author, b.Publisher, b.Year, b.ISBN, b.Quantity, b.Available, b.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM books WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DecrementAvailable(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE books SET available = available - 1 WHERE id = $1 AND available > 0`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ra > 0, nil
}

func (r *PostgresRepository) IncrementAvailable(ctx context.Context, id int64) error {
	query := `UPDATE books SET available = available + 1 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
