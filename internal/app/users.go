package app

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/luizmouradc/Sistema-de-Gerenciamento-de-Livros/internal/common"
)

// Users lists all registered users, newest first.
func (a *App) Users(ctx context.Context) error {
	users, err := a.store.ListUsers(ctx)
	if err != nil {
		a.logger.Error(ctx, "listing users", "error", err)
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tADDRESS")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%s\n",
			u.ID, u.FirstName, u.LastName, u.Email, u.Phone, u.Address)
	}
	return tw.Flush()
}

// AddUser prompts for the user fields, validates them and creates the record.
func (a *App) AddUser(ctx context.Context) error {
	u, err := a.inputUser()
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	id, err := a.store.CreateUser(ctx, u.first, u.last, u.address, u.email, u.phone)
	if err != nil {
		a.logger.Error(ctx, "creating user", "error", err)
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	a.logger.Info(ctx, "user created", "id", id)
	fmt.Fprintf(a.out, "User %d created\n", id)
	return nil
}

// EditUser prompts for an id plus the replacement fields and overwrites the
// record. Editing an id that does not exist changes nothing.
func (a *App) EditUser(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter user id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	u, err := a.inputUser()
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}

	if err := a.store.UpdateUser(ctx, id, u.first, u.last, u.address, u.email, u.phone); err != nil {
		a.logger.Error(ctx, "updating user", "id", id, "error", err)
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	fmt.Fprintf(a.out, "User %d updated\n", id)
	return nil
}

// DeleteUser removes a user after confirmation. A user with an open loan
// cannot be removed; their closed loan history goes with them.
func (a *App) DeleteUser(ctx context.Context) error {
	id, err := GetID(a.reader, "Enter user id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Delete user %d?", id), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.store.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, common.ErrConflict) {
			fmt.Fprintln(a.out, "User has a loan that was not returned yet")
			return err
		}
		a.logger.Error(ctx, "deleting user", "id", id, "error", err)
		fmt.Fprintln(a.out, "error:", err)
		return err
	}
	a.logger.Info(ctx, "user deleted", "id", id)
	fmt.Fprintf(a.out, "User %d deleted\n", id)
	return nil
}

type userInput struct {
	first, last, address, email, phone string
}

func (a *App) inputUser() (userInput, error) {
	var zero userInput

	first, err := GetSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return zero, err
	}
	if err := ValidateRequired("first name", first); err != nil {
		return zero, err
	}

	last, err := GetSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return zero, err
	}
	if err := ValidateRequired("last name", last); err != nil {
		return zero, err
	}

	address, err := GetSimpleText(a.reader, "Enter address", a.out)
	if err != nil {
		return zero, err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return zero, err
	}
	if err := ValidateEmail(email); err != nil {
		return zero, err
	}

	phone, err := GetSimpleText(a.reader, "Enter phone", a.out)
	if err != nil {
		return zero, err
	}
	phone, err = NormalizePhone(phone)
	if err != nil {
		return zero, err
	}

	return userInput{first: first, last: last, address: address, email: email, phone: phone}, nil
}
