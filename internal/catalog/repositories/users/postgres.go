package users

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

func (r *PostgresRepository) Insert(ctx context.Context, u *models.User) (int64, error) {
	query := `INSERT INTO users (first_name, last_name, address, email, phone)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		u.FirstName, u.LastName, u.Address, u.Email, u.Phone).Scan(&u.ID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return u.ID, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, first_name, last_name, address, email, phone
		 FROM users ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var item models.User
		if err := rows.Scan(&item.ID, &item.FirstName, &item.LastName,
			&item.Address, &item.Email, &item.Phone); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, first_name, last_name, address, email, phone
		 FROM users WHERE id = $1`
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.FirstName,
		&u.LastName, &u.Address, &u.Email, &u.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) Update(ctx context.Context, u *models.User) error {
	query := `UPDATE users
		 SET first_name = $1, last_name = $2, address = $3, email = $4, phone = $5
		 WHERE id = $6`
	_, err := r.db.ExecContext(ctx, query,
		u.FirstName, u.LastName, u.Address, u.Email, u.Phone, u.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
