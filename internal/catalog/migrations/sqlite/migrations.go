// Package sqlite holds the embedded goose migrations for the SQLite backend.
//
// The base tables are plain SQL; the additive availability/status columns are
// Go migrations because SQLite has no ADD COLUMN IF NOT EXISTS: they check
// the live table columns first, so rerunning against any pre-existing
// database, including one created by an older release, is a no-op.
//
// Go migrations are exported as a slice (not registered globally) so the
// SQLite and PostgreSQL providers stay isolated from each other.
package sqlite

import (
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var Migrations embed.FS

// Go returns the Go-based migrations, versioned after the embedded SQL.
func Go() []*goose.Migration {
	return []*goose.Migration{
		goose.NewGoMigration(2,
			&goose.GoFunc{RunTx: upBookAvailability},
			&goose.GoFunc{RunTx: downBookAvailability}),
		goose.NewGoMigration(3,
			&goose.GoFunc{RunTx: upLoanStatus},
			&goose.GoFunc{RunTx: downLoanStatus}),
	}
}
