package sqlite

import (
	"context"
	"database/sql"
)

// upLoanStatus adds the expected-return date and status columns to loans.
// Rows from before the status column count as open, so any NULL status is
// backfilled explicitly.
func upLoanStatus(ctx context.Context, tx *sql.Tx) error {
	cols, err := tableColumns(ctx, tx, "loans")
	if err != nil {
		return err
	}
	if _, ok := cols["expected_date"]; !ok {
		if _, err := tx.ExecContext(ctx, `ALTER TABLE loans ADD COLUMN expected_date TEXT`); err != nil {
			return err
		}
	}
	if _, ok := cols["status"]; !ok {
		if _, err := tx.ExecContext(ctx, `ALTER TABLE loans ADD COLUMN status TEXT DEFAULT 'open'`); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `UPDATE loans SET status = 'open' WHERE status IS NULL`); err != nil {
		return err
	}
	return nil
}

func downLoanStatus(ctx context.Context, tx *sql.Tx) error {
	for _, col := range []string{"status", "expected_date"} {
		cols, err := tableColumns(ctx, tx, "loans")
		if err != nil {
			return err
		}
		if _, ok := cols[col]; ok {
			if _, err := tx.ExecContext(ctx, `ALTER TABLE loans DROP COLUMN `+col); err != nil {
				return err
			}
		}
	}
	return nil
}
