// Package loans provides persistence for the loan ledger and its joined
// read-side view.
package loans

import (
	"context"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/models"
)

// Repository defines the storage operations for loans.
//
// A loan is "non-closed" when its status differs from closed, including a
// NULL status on rows that predate the status column.
type Repository interface {
	// Insert stores a new loan row and returns its generated id.
	Insert(ctx context.Context, l *models.Loan) (int64, error)

	// GetByID returns one loan, or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Loan, error)

	// ListViews returns loans joined with their user and book, most recent
	// loan first. With openOnly it filters to status = open.
	ListViews(ctx context.Context, openOnly bool) ([]models.LoanView, error)

	// Close sets the return date and marks the loan closed.
	Close(ctx context.Context, id int64, returnDate string) error

	// HasOpenByUser reports whether any non-closed loan references the user.
	HasOpenByUser(ctx context.Context, userID int64) (bool, error)

	// HasOpenByBook reports whether any non-closed loan references the book.
	HasOpenByBook(ctx context.Context, bookID int64) (bool, error)

	// CountOpenByBook returns the number of non-closed loans for the book.
	CountOpenByBook(ctx context.Context, bookID int64) (int, error)

	// DeleteByUser removes all loans referencing the user.
	DeleteByUser(ctx context.Context, userID int64) error

	// DeleteByBook removes all loans referencing the book.
	DeleteByBook(ctx context.Context, bookID int64) error
}
