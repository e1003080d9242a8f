package app

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/repositories/repomanager"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/catalog/store"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/common"
	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/logging"
)

// newTestApp builds an App over a fresh migrated database, with the prompts
// answered from the scripted input and output captured in a buffer.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "catalog.db")
	db, repos, err := repomanager.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	out := &bytes.Buffer{}
	return &App{
		store:  store.New(db, repos),
		db:     db,
		logger: logging.New("error", "text"),
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
	}, out
}

func (a *App) rescript(input string) {
	a.reader = bufio.NewReader(strings.NewReader(input))
}

func TestAddUser_ThenListed(t *testing.T) {
	a, out := newTestApp(t, strings.Join([]string{
		"Ana",
		"Silva",
		"Rua A, 1",
		"ana@example.com",
		"(11) 98888-7777",
	}, "\n")+"\n")
	ctx := context.Background()

	require.NoError(t, a.AddUser(ctx))
	assert.Contains(t, out.String(), "User 1 created")

	out.Reset()
	require.NoError(t, a.Users(ctx))
	assert.Contains(t, out.String(), "Ana Silva")
	assert.Contains(t, out.String(), "ana@example.com")
	assert.Contains(t, out.String(), "11988887777", "phone stored normalized")
}

func TestAddUser_RejectsBadEmail(t *testing.T) {
	a, out := newTestApp(t, "Ana\nSilva\nRua A, 1\nnot-an-email\n")
	ctx := context.Background()

	assert.Error(t, a.AddUser(ctx))
	assert.Contains(t, out.String(), "invalid email")

	out.Reset()
	require.NoError(t, a.Users(ctx))
	assert.NotContains(t, out.String(), "Ana", "nothing persisted")
}

func TestAddBook_ThenLendAndReturn(t *testing.T) {
	a, out := newTestApp(t, "Ana\nSilva\nRua A, 1\nana@example.com\n11988887777\n")
	ctx := context.Background()

	require.NoError(t, a.AddUser(ctx))

	a.rescript("Dune\nFrank Herbert\nChilton\n1965\n978-0441013593\n2\n")
	require.NoError(t, a.AddBook(ctx))
	assert.Contains(t, out.String(), "Book 1 created")

	out.Reset()
	a.rescript("1\n1\n2024-01-10\n")
	require.NoError(t, a.Lend(ctx))
	assert.Contains(t, out.String(), "Loan 1 opened")

	out.Reset()
	require.NoError(t, a.Books(ctx))
	assert.Contains(t, out.String(), "1/2", "one of two copies left")

	out.Reset()
	require.NoError(t, a.Loans(ctx, true))
	assert.Contains(t, out.String(), "Ana Silva")
	assert.Contains(t, out.String(), "Dune")
	assert.Contains(t, out.String(), "2024-01-17", "expected date a week out")

	out.Reset()
	a.rescript("1\n2024-01-15\n")
	require.NoError(t, a.Return(ctx))
	assert.Contains(t, out.String(), "Loan 1 returned")

	out.Reset()
	require.NoError(t, a.Books(ctx))
	assert.Contains(t, out.String(), "2/2")
}

func TestLend_ReportsUnavailable(t *testing.T) {
	a, out := newTestApp(t, "Ana\nSilva\nRua A, 1\nana@example.com\n11988887777\n")
	ctx := context.Background()

	require.NoError(t, a.AddUser(ctx))
	a.rescript("Dune\nFrank Herbert\nChilton\n1965\n978-0441013593\n1\n")
	require.NoError(t, a.AddBook(ctx))

	a.rescript("1\n1\n\n")
	require.NoError(t, a.Lend(ctx))

	out.Reset()
	a.rescript("1\n1\n\n")
	err := a.Lend(ctx)
	assert.ErrorIs(t, err, common.ErrUnavailable)
	assert.Contains(t, out.String(), "No available copies")
}

func TestLend_ReportsMissingUser(t *testing.T) {
	a, out := newTestApp(t, "9\n9\n\n")

	err := a.Lend(context.Background())
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Contains(t, out.String(), "User or book not found")
}

func TestDeleteUser_BlockedByOpenLoan(t *testing.T) {
	a, out := newTestApp(t, "Ana\nSilva\nRua A, 1\nana@example.com\n11988887777\n")
	ctx := context.Background()

	require.NoError(t, a.AddUser(ctx))
	a.rescript("Dune\nFrank Herbert\nChilton\n1965\n978-0441013593\n1\n")
	require.NoError(t, a.AddBook(ctx))
	a.rescript("1\n1\n\n")
	require.NoError(t, a.Lend(ctx))

	out.Reset()
	a.rescript("1\ny\n")
	err := a.DeleteUser(ctx)
	assert.ErrorIs(t, err, common.ErrConflict)
	assert.Contains(t, out.String(), "not returned yet")

	out.Reset()
	require.NoError(t, a.Users(ctx))
	assert.Contains(t, out.String(), "Ana Silva", "user kept")
}

func TestDeleteBook_CancelledWithoutConfirmation(t *testing.T) {
	a, out := newTestApp(t, "Dune\nFrank Herbert\nChilton\n1965\n978-0441013593\n1\n")
	ctx := context.Background()

	require.NoError(t, a.AddBook(ctx))

	out.Reset()
	a.rescript("1\nn\n")
	require.NoError(t, a.DeleteBook(ctx))
	assert.Contains(t, out.String(), "Cancelled")

	out.Reset()
	require.NoError(t, a.Books(ctx))
	assert.Contains(t, out.String(), "Dune")
}

func TestEditBook_RederivesAvailability(t *testing.T) {
	a, out := newTestApp(t, "Dune\nFrank Herbert\nChilton\n1965\n978-0441013593\n3\n")
	ctx := context.Background()

	require.NoError(t, a.AddBook(ctx))

	a.rescript("1\nDune\nFrank Herbert\nChilton\n1965\n978-0441013593\n5\n")
	require.NoError(t, a.EditBook(ctx))

	out.Reset()
	require.NoError(t, a.Books(ctx))
	assert.Contains(t, out.String(), "5/5")
}
