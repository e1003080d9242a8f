package app

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/common"
)

// Loans lists loan records joined with user and book names, newest first.
// With openOnly the listing is restricted to loans not yet returned.
func (a *App) Loans(ctx context.Context, openOnly bool) error {
	views, err := a.store.ListLoans(ctx, openOnly)
	if err != nil {
		a.logger.Error(ctx, "listing loans", "error", err)
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tBOOK\tLOANED\tEXPECTED\tRETURNED\tSTATUS")
	for _, v := range views {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.ID, v.UserName, v.BookTitle, v.LoanDate, v.ExpectedDate, v.ReturnDate, v.Status)
	}
	return tw.Flush()
}

// Lend opens a loan for a user and a book. The loan date defaults to today
// when left blank; the expected return date is a week out.
func (a *App) Lend(ctx context.Context) error {
	userID, err := GetID(a.reader, "Enter user id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	bookID, err := GetID(a.reader, "Enter book id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	loanDate, err := GetSimpleText(a.reader, "Enter loan date (YYYY-MM-DD, blank for today)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	id, err := a.store.OpenLoan(ctx, userID, bookID, loanDate, "")
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			fmt.Fprintln(a.out, "User or book not found")
		case errors.Is(err, common.ErrUnavailable):
			fmt.Fprintln(a.out, "No available copies of this book")
		default:
			a.logger.Error(ctx, "opening loan", "user", userID, "book", bookID, "error", err)
			fmt.Fprintln(a.out, "error:", err)
		}
		return err
	}
	a.logger.Info(ctx, "loan opened", "id", id, "user", userID, "book", bookID)
	fmt.Fprintf(a.out, "Loan %d opened\n", id)
	return nil
}

// Return closes a loan and puts the copy back in circulation. The return
// date defaults to today when left blank. Returning an already closed loan
// is a no-op.
func (a *App) Return(ctx context.Context) error {
	loanID, err := GetID(a.reader, "Enter loan id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	returnDate, err := GetSimpleText(a.reader, "Enter return date (YYYY-MM-DD, blank for today)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	if err := a.store.CloseLoan(ctx, loanID, returnDate); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintln(a.out, "Loan not found")
			return err
		}
		a.logger.Error(ctx, "closing loan", "id", loanID, "error", err)
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	a.logger.Info(ctx, "loan closed", "id", loanID)
	fmt.Fprintf(a.out, "Loan %d returned\n", loanID)
	return nil
}
