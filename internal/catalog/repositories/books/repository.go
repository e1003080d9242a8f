// Package books provides persistence for catalogued titles and their
// availability counters.
package books

import (
	"context"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/models"
)

// Repository defines the storage operations for books.
type Repository interface {
	// Insert stores a new book and returns its generated id.
	Insert(ctx context.Context, b *models.Book) (int64, error)

	// GetAll lists all books, most recently created first.
	GetAll(ctx context.Context) ([]models.Book, error)

	// GetByID returns one book, or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Book, error)

	// Update overwrites all fields of the row with b.ID, including the
	// quantity and available counters; absent id is a no-op.
	Update(ctx context.Context, b *models.Book) error

	// DeleteByID removes the book row; absent id is a no-op.
	DeleteByID(ctx context.Context, id int64) error

	// DecrementAvailable atomically decrements the available counter,
	// conditioned on available > 0 at write time. It reports whether a row
	// was actually decremented.
	DecrementAvailable(ctx context.Context, id int64) (bool, error)

	// IncrementAvailable increments the available counter by one.
	IncrementAvailable(ctx context.Context, id int64) error
}
