package sqlite

import (
	"context"
	"database/sql"
)

// upBookAvailability adds the copy-count columns to books. Pre-existing rows
// get one copy, one available, via the column default.
func upBookAvailability(ctx context.Context, tx *sql.Tx) error {
	cols, err := tableColumns(ctx, tx, "books")
	if err != nil {
		return err
	}
	if _, ok := cols["quantity"]; !ok {
		if _, err := tx.ExecContext(ctx, `ALTER TABLE books ADD COLUMN quantity INTEGER DEFAULT 1`); err != nil {
			return err
		}
	}
	if _, ok := cols["available"]; !ok {
		if _, err := tx.ExecContext(ctx, `ALTER TABLE books ADD COLUMN available INTEGER DEFAULT 1`); err != nil {
			return err
		}
	}
	return nil
}

func downBookAvailability(ctx context.Context, tx *sql.Tx) error {
	for _, col := range []string{"available", "quantity"} {
		cols, err := tableColumns(ctx, tx, "books")
		if err != nil {
			return err
		}
		if _, ok := cols[col]; ok {
			if _, err := tx.ExecContext(ctx, `ALTER TABLE books DROP COLUMN `+col); err != nil {
				return err
			}
		}
	}
	return nil
}

// tableColumns returns the column names of a table via PRAGMA table_info.
func tableColumns(ctx context.Context, tx *sql.Tx, table string) (map[string]struct{}, error) {
	rows, err := tx.QueryContext(ctx, `SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols[name] = struct{}{}
	}
	return cols, rows.Err()
}
