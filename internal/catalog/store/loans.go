package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/models"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/common"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/dbx"
)

// OpenLoan checks a copy of a book out to a user and returns the generated
// loan id.
//
// An empty loanDate defaults to today. The expected-return date is the loan
// date plus 7 days; an unparseable loan date is stored as given and the
// offset falls back to today. returnDate is normally empty at creation.
//
// Fails with common.ErrNotFound when the user or book does not exist, and
// with common.ErrUnavailable when the book has no available copies. The loan
// insert and the availability decrement commit together or not at all.
func (s *Store) OpenLoan(ctx context.Context, userID, bookID int64, loanDate, returnDate string) (int64, error) {
	ld := loanDate
	if ld == "" {
		ld = today()
	}

	var id int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repos.Users(tx).GetByID(ctx, userID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return fmt.Errorf("user %d: %w", userID, common.ErrNotFound)
			}
			return fmt.Errorf("error reading user: %w", err)
		}

		bookRepo := s.repos.Books(tx)
		book, err := bookRepo.GetByID(ctx, bookID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return fmt.Errorf("book %d: %w", bookID, common.ErrNotFound)
			}
			return fmt.Errorf("error reading book: %w", err)
		}
		if book.Available <= 0 {
			return fmt.Errorf("book %d: %w", bookID, common.ErrUnavailable)
		}

		l := &models.Loan{
			BookID:       bookID,
			UserID:       userID,
			LoanDate:     ld,
			ExpectedDate: expectedFrom(ld),
			ReturnDate:   returnDate,
			Status:       models.LoanStatusOpen,
		}
		if id, err = s.repos.Loans(tx).Insert(ctx, l); err != nil {
			return fmt.Errorf("error inserting loan: %w", err)
		}

		// The write-time guard keeps the counter at zero even if another
		// process drained availability between the read and this update.
		decremented, err := bookRepo.DecrementAvailable(ctx, bookID)
		if err != nil {
			return fmt.Errorf("error decrementing availability: %w", err)
		}
		if !decremented {
			return fmt.Errorf("book %d: %w", bookID, common.ErrUnavailable)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListLoans returns the denormalized loan view, most recent loan first.
// With openOnly it filters to open loans.
func (s *Store) ListLoans(ctx context.Context, openOnly bool) ([]models.LoanView, error) {
	result, err := s.repos.Loans(s.db).ListViews(ctx, openOnly)
	if err != nil {
		return nil, fmt.Errorf("error listing loans: %w", err)
	}
	return result, nil
}

// CloseLoan records the return of a loaned copy: it sets the return date
// (today when empty), marks the loan closed, and restores the book's
// availability, atomically. Closing an already-closed loan is a no-op.
// Fails with common.ErrNotFound when the loan does not exist.
func (s *Store) CloseLoan(ctx context.Context, loanID int64, returnDate string) error {
	rd := returnDate
	if rd == "" {
		rd = today()
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		loanRepo := s.repos.Loans(tx)

		loan, err := loanRepo.GetByID(ctx, loanID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return fmt.Errorf("loan %d: %w", loanID, common.ErrNotFound)
			}
			return fmt.Errorf("error reading loan: %w", err)
		}
		if loan.Status == models.LoanStatusClosed {
			return nil
		}

		if err := loanRepo.Close(ctx, loanID, rd); err != nil {
			return fmt.Errorf("error closing loan: %w", err)
		}
		if err := s.repos.Books(tx).IncrementAvailable(ctx, loan.BookID); err != nil {
			return fmt.Errorf("error incrementing availability: %w", err)
		}
		return nil
	})
}
