package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/models"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/common"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/dbx"
)

// CreateBook inserts a book with all copies available and returns the
// generated id.
func (s *Store) CreateBook(ctx context.Context, title, author, publisher string, year int, isbn string, quantity int) (int64, error) {
	b := &models.Book{
		Title:     title,
		Author:    author,
		Publisher: publisher,
		Year:      year,
		ISBN:      isbn,
		Quantity:  quantity,
		Available: quantity,
	}
	id, err := s.repos.Books(s.db).Insert(ctx, b)
	if err != nil {
		return 0, fmt.Errorf("error creating book: %w", err)
	}
	return id, nil
}

// ListBooks returns all books, most recently created first.
func (s *Store) ListBooks(ctx context.Context) ([]models.Book, error) {
	result, err := s.repos.Books(s.db).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing books: %w", err)
	}
	return result, nil
}

// UpdateBook overwrites all fields of the book with the given id and
// re-derives the available counter from the open-loan count, keeping
// 0 <= available <= quantity. An absent id is a no-op.
func (s *Store) UpdateBook(ctx context.Context, id int64, title, author, publisher string, year int, isbn string, quantity int) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		bookRepo := s.repos.Books(tx)

		if _, err := bookRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("error reading book: %w", err)
		}

		openCount, err := s.repos.Loans(tx).CountOpenByBook(ctx, id)
		if err != nil {
			return fmt.Errorf("error counting open loans: %w", err)
		}
		available := quantity - openCount
		if available < 0 {
			available = 0
		}

		b := &models.Book{
			ID:        id,
			Title:     title,
			Author:    author,
			Publisher: publisher,
			Year:      year,
			ISBN:      isbn,
			Quantity:  quantity,
			Available: available,
		}
		if err := bookRepo.Update(ctx, b); err != nil {
			return fmt.Errorf("error updating book: %w", err)
		}
		return nil
	})
}

// DeleteBook removes a book together with its closed-loan history, as one
// atomic step. It fails with common.ErrConflict while any non-closed loan
// references the book.
func (s *Store) DeleteBook(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		loanRepo := s.repos.Loans(tx)

		open, err := loanRepo.HasOpenByBook(ctx, id)
		if err != nil {
			return fmt.Errorf("error checking book loans: %w", err)
		}
		if open {
			return fmt.Errorf("book %d: %w", id, common.ErrConflict)
		}

		if err := loanRepo.DeleteByBook(ctx, id); err != nil {
			return fmt.Errorf("error deleting book loans: %w", err)
		}
		if err := s.repos.Books(tx).DeleteByID(ctx, id); err != nil {
			return fmt.Errorf("error deleting book: %w", err)
		}
		return nil
	})
}
