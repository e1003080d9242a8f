package loans

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

func (r *PostgresRepository) Insert(ctx context.Context, l *models.Loan) (int64, error) {
	query := `INSERT INTO loans (book_id, user_id, loan_date, return_date, expected_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		l.BookID, l.UserID, l.LoanDate, nullable(l.ReturnDate), l.ExpectedDate, l.Status).Scan(&l.ID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return l.ID, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Loan, error) {
	query := `SELECT id, book_id, user_id, loan_date, expected_date, return_date, status
		 FROM loans WHERE id = $1`
	l := &models.Loan{}
	var expected, returned, status sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.BookID, &l.UserID, &l.LoanDate, &expected, &returned, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	l.ExpectedDate = expected.String
	l.ReturnDate = returned.String
	l.Status = status.String
	return l, nil
}

func (r *PostgresRepository) ListViews(ctx context.Context, openOnly bool) ([]models.LoanView, error) {
	query := `SELECT
			e.id,
			u.id,
			u.first_name || ' ' || u.last_name,
			b.id,
			b.title,
			e.loan_date,
			e.expected_date,
			e.return_date,
			e.status
		FROM loans e
		JOIN users u ON u.id = e.user_id
		JOIN books b ON b.id = e.book_id
		%s
		ORDER BY e.id DESC`
	where := ""
	if openOnly {
		where = `WHERE e.status = 'open'`
	}
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(query, where))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.LoanView
	for rows.Next() {
		var item models.LoanView
		var expected, returned, status sql.NullString
		if err := rows.Scan(&item.ID, &item.UserID, &item.UserName,
			&item.BookID, &item.BookTitle, &item.LoanDate,
			&expected, &returned, &status); err != nil {
			return nil, err
		}
		item.ExpectedDate = expected.String
		item.ReturnDate = returned.String
		item.Status = status.String
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Close(ctx context.Context, id int64, returnDate string) error {
	query := `UPDATE loans SET return_date = $1, status = 'closed' WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, returnDate, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) HasOpenByUser(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT 1 FROM loans
		 WHERE user_id = $1 AND (status IS NULL OR status != 'closed') LIMIT 1`
	return r.exists(ctx, query, userID)
}

func (r *PostgresRepository) HasOpenByBook(ctx context.Context, bookID int64) (bool, error) {
	query := `SELECT 1 FROM loans
		 WHERE book_id = $1 AND (status IS NULL OR status != 'closed') LIMIT 1`
	return r.exists(ctx, query, bookID)
}

func (r *PostgresRepository) CountOpenByBook(ctx context.Context, bookID int64) (int, error) {
	query := `SELECT COUNT(*) FROM loans
		 WHERE book_id = $1 AND (status IS NULL OR status != 'closed')`
	var n int
	if err := r.db.QueryRowContext(ctx, query, bookID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM loans WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByBook(ctx context.Context, bookID int64) error {
	query := `DELETE FROM loans WHERE book_id = $1`
	if _, err := r.db.ExecContext(ctx, query, bookID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}
