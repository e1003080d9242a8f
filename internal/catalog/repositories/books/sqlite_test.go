package books

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/models"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE books (
  id INTEGER PRIMARY KEY,
  title TEXT,
  author TEXT,
  publisher TEXT,
  year INTEGER,
  isbn TEXT,
  quantity INTEGER DEFAULT 1,
  available INTEGER DEFAULT 1
);
`)
	require.NoError(t, err)

	return db
}

func insertBook(t *testing.T, r *SQLiteRepository, qty int) int64 {
	t.Helper()
	id, err := r.Insert(context.Background(), &models.Book{
		Title: "Dune", Author: "Frank Herbert", Publisher: "Chilton",
		Year: 1965, ISBN: "978-0441013593", Quantity: qty, Available: qty,
	})
	require.NoError(t, err)
	return id
}

func TestInsertAndGetByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	id := insertBook(t, r, 2)

	got, err := r.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, 1965, got.Year)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, 2, got.Available)
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetAll_DescendingByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Insert(ctx, &models.Book{Title: "First", Quantity: 1, Available: 1})
	require.NoError(t, err)
	_, err = r.Insert(ctx, &models.Book{Title: "Second", Quantity: 1, Available: 1})
	require.NoError(t, err)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Second", all[0].Title)
	assert.Equal(t, "First", all[1].Title)
}

func TestDecrementAvailable_GuardedAtZero(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id := insertBook(t, r, 1)

	ok, err := r.DecrementAvailable(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.DecrementAvailable(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok, "decrement must not go below zero")

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Available)
}

func TestIncrementAvailable(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id := insertBook(t, r, 2)

	_, err := r.DecrementAvailable(ctx, id)
	require.NoError(t, err)
	require.NoError(t, r.IncrementAvailable(ctx, id))

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Available)
}

func TestUpdate_OverwritesCounters(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id := insertBook(t, r, 2)

	err := r.Update(ctx, &models.Book{
		ID: id, Title: "Dune Messiah", Author: "Frank Herbert",
		Publisher: "Putnam", Year: 1969, ISBN: "978-0441172696",
		Quantity: 5, Available: 4,
	})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", got.Title)
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, 4, got.Available)
}

func TestDeleteByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id := insertBook(t, r, 1)
	require.NoError(t, r.DeleteByID(ctx, id))

	_, err := r.GetByID(ctx, id)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
