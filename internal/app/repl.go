package app

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Users(ctx context.Context) error
	AddUser(ctx context.Context) error
	EditUser(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	Books(ctx context.Context) error
	AddBook(ctx context.Context) error
	EditBook(ctx context.Context) error
	DeleteBook(ctx context.Context) error
	Loans(ctx context.Context, openOnly bool) error
	Lend(ctx context.Context) error
	Return(ctx context.Context) error
}

// runREPL reads a line at a time from the scanner, parses the first token as
// the command and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands
//
//	users | adduser | edituser | deluser     — manage registered users
//	books | addbook | editbook | delbook     — manage the book catalog
//	loans [open]                             — list loans, optionally open only
//	lend | return                            — open and close a loan
//	help, exit | quit
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		fmt.Print("biblioteca> ")
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands:")
			printlnFn("  users | adduser | edituser | deluser")
			printlnFn("  books | addbook | editbook | delbook")
			printlnFn("  loans [open] | lend | return")
			printlnFn("  exit | quit")

		case "users":
			_ = a.Users(ctx)

		case "adduser":
			_ = a.AddUser(ctx)

		case "edituser":
			_ = a.EditUser(ctx)

		case "deluser":
			_ = a.DeleteUser(ctx)

		case "books":
			_ = a.Books(ctx)

		case "addbook":
			_ = a.AddBook(ctx)

		case "editbook":
			_ = a.EditBook(ctx)

		case "delbook":
			_ = a.DeleteBook(ctx)

		case "loans":
			openOnly := len(args) > 0 && args[0] == "open"
			_ = a.Loans(ctx, openOnly)

		case "lend":
			_ = a.Lend(ctx)

		case "return":
			_ = a.Return(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
