// Package users provides persistence for library members.
package users

import (
	"context"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/models"
)

// Repository defines the storage operations for users. Implementations are
// bound to a dbx.DBTX, so the same repository runs against the database
// directly or inside a store transaction.
type Repository interface {
	// Insert stores a new user and returns its generated id.
	Insert(ctx context.Context, u *models.User) (int64, error)

	// GetAll lists all users, most recently created first.
	GetAll(ctx context.Context) ([]models.User, error)

	// GetByID returns one user, or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// Update overwrites all fields of the row with u.ID; absent id is a no-op.
	Update(ctx context.Context, u *models.User) error

	// DeleteByID removes the user row; absent id is a no-op.
	DeleteByID(ctx context.Context, id int64) error
}
