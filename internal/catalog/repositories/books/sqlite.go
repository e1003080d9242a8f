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

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, b *models.Book) (int64, error) {
	query := `INSERT INTO books (title, author, publisher, year, isbn, quantity, available)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		b.Title, b.Author, b.Publisher, b.Year, b.ISBN, b.Quantity, b.Available)
	if err != nil {
		return 0, fmt.Errorf("failed to insert book: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted book id: %w", err)
	}
	b.ID = id
	return id, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Book, error) {
	query := `SELECT id, title, author, publisher, year, isbn, quantity, available
			FROM books ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select books: %w", err)
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

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	query := `SELECT id, title, author, publisher, year, isbn, quantity, available
			FROM books WHERE id = ?`
	b := &models.Book{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author,
		&b.Publisher, &b.Year, &b.ISBN, &b.Quantity, &b.Available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select book: %w", err)
	}
	return b, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, b *models.Book) error {
	query := `UPDATE books
			SET title = ?, author = ?, publisher = ?, year = ?, isbn = ?, quantity = ?, available = ?
			WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		b.Title, b.Author, b.Publisher, b.Year, b.ISBN, b.Quantity, b.Available, b.ID)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM books WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DecrementAvailable(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE books SET available = available - 1 WHERE id = ? AND available > 0`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to decrement availability: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

func (r *SQLiteRepository) IncrementAvailable(ctx context.Context, id int64) error {
	query := `UPDATE books SET available = available + 1 WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to increment availability: %w", err)
	}
	return nil
}
