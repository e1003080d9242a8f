package app

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/common"
)

// Books lists the catalog, newest first, with per-title availability.
func (a *App) Books(ctx context.Context) error {
	books, err := a.store.ListBooks(ctx)
	if err != nil {
		a.logger.Error(ctx, "listing books", "error", err)
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tPUBLISHER\tYEAR\tISBN\tAVAILABLE")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%d/%d\n",
			b.ID, b.Title, b.Author, b.Publisher, b.Year, b.ISBN, b.Available, b.Quantity)
	}
	return tw.Flush()
}

// AddBook prompts for the book fields and creates the record. All copies of
// a new title start out available.
func (a *App) AddBook(ctx context.Context) error {
	b, err := a.inputBook()
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	id, err := a.store.CreateBook(ctx, b.title, b.author, b.publisher, b.year, b.isbn, b.quantity)
	if err != nil {
		a.logger.Error(ctx, "creating book", "error", err)
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	a.logger.Info(ctx, "book created", "id", id, "title", b.title)
	fmt.Fprintf(a.out, "Book %d created\n", id)
	return nil
}

// EditBook overwrites a book record. Availability is re-derived from the new
// quantity and the loans currently open against the title.
func (a *App) EditBook(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter book id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	b, err := a.inputBook()
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	if err := a.store.UpdateBook(ctx, id, b.title, b.author, b.publisher, b.year, b.isbn, b.quantity); err != nil {
		a.logger.Error(ctx, "updating book", "id", id, "error", err)
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Book %d updated\n", id)
	return nil
}

// DeleteBook removes a book after confirmation. A title with an open loan
// cannot be removed.
func (a *App) DeleteBook(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter book id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Delete book %d?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.store.DeleteBook(ctx, id); err != nil {
		if errors.Is(err, common.ErrConflict) {
			fmt.Fprintln(a.out, "Book has a loan that was not returned yet")
			return err
		}
		a.logger.Error(ctx, "deleting book", "id", id, "error", err)
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	a.logger.Info(ctx, "book deleted", "id", id)
	fmt.Fprintf(a.out, "Book %d deleted\n", id)
	return nil
}

type bookInput struct {
	title, author, publisher, isbn string
	year, quantity                 int
}

func (a *App) inputBook() (bookInput, error) {
	var zero bookInput

	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return zero, err
	}
	if err := ValidateRequired("title", title); err != nil {
		return zero, err
	}

	author, err := GetSimpleText(a.reader, "Enter author", a.out)
	if err != nil {
		return zero, err
	}
	if err := ValidateRequired("author", author); err != nil {
		return zero, err
	}

	publisher, err := GetSimpleText(a.reader, "Enter publisher", a.out)
	if err != nil {
		return zero, err
	}

	year, err := GetInt(a.reader, "Enter year", a.out)
	if err != nil {
		return zero, err
	}

	isbn, err := GetSimpleText(a.reader, "Enter ISBN", a.out)
	if err != nil {
		return zero, err
	}

	quantity, err := GetInt(a.reader, "Enter quantity", a.out)
	if err != nil {
		return zero, err
	}
	if quantity < 1 {
		return zero, fmt.Errorf("quantity must be at least 1")
	}

	return bookInput{
		title: title, author: author, publisher: publisher,
		isbn: isbn, year: year, quantity: quantity,
	}, nil
}
