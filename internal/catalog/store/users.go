package store

import (
	"context"
	"fmt"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/models"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/common"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/dbx"
)

// CreateUser inserts a user unconditionally and returns the generated id.
// Field-level validation is the caller's responsibility.
func (s *Store) CreateUser(ctx context.Context, first, last, address, email, phone string) (int64, error) {
	u := &models.User{
		FirstName: first,
		LastName:  last,
		Address:   address,
		Email:     email,
		Phone:     phone,
	}
	id, err := s.repos.Users(s.db).Insert(ctx, u)
	if err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return id, nil
}

// ListUsers returns all users, most recently created first.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	result, err := s.repos.Users(s.db).GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return result, nil
}

// UpdateUser overwrites all fields of the user with the given id.
// An absent id is a no-op.
func (s *Store) UpdateUser(ctx context.Context, id int64, first, last, address, email, phone string) error {
	u := &models.User{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Address:   address,
		Email:     email,
		Phone:     phone,
	}
	if err := s.repos.Users(s.db).Update(ctx, u); err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	return nil
}

// DeleteUser removes a user together with its closed-loan history, as one
// atomic step. It fails with common.ErrConflict while any non-closed loan
// references the user.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		loanRepo := s.repos.Loans(tx)

		open, err := loanRepo.HasOpenByUser(ctx, id)
		if err != nil {
			return fmt.Errorf("error checking user loans: %w", err)
		}
		if open {
			return fmt.Errorf("user %d: %w", id, common.ErrConflict)
		}

		if err := loanRepo.DeleteByUser(ctx, id); err != nil {
			return fmt.Errorf("error deleting user loans: %w", err)
		}
		if err := s.repos.Users(tx).DeleteByID(ctx, id); err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		return nil
	})
}
