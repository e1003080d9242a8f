// Package store implements the catalog business rules on top of the
// repositories: CRUD for users and books, plus the loan lifecycle with its
// availability invariants.
//
// Every mutating operation is atomic: multi-write operations run inside a
// dbx.WithTx scope, single-statement operations rely on statement atomicity.
// Failures surface as sentinel errors from the common package, wrapped with
// entity context; the store never formats user-facing messages.
package store

import (
	"database/sql"
	"time"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/models"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/repositories/repomanager"
)

// Store is the catalog store: durable CRUD for users and books plus loan
// lifecycle management. It is invoked synchronously by the presentation
// layer and owns all persisted state.
type Store struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

// New returns a Store over the given database handle and repository set.
func New(db *sql.DB, repos repomanager.RepositoryManager) *Store {
	return &Store{db: db, repos: repos}
}

// nowFn is a seam for tests that need a fixed "today".
var nowFn = time.Now

func today() string {
	return nowFn().Format(models.DateLayout)
}

// expectedFrom computes loanDate plus a 7-day grace period. A loan date that
// is not a parseable calendar date falls back to today as the base for the
// offset; the stored loan date itself stays as given.
func expectedFrom(loanDate string) string {
	base, err := time.Parse(models.DateLayout, loanDate)
	if err != nil {
		base = nowFn()
	}
	return base.AddDate(0, 0, 7).Format(models.DateLayout)
}
