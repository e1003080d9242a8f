// Package models defines the catalog record types. Each persisted entity has
// exactly one struct shape; every layer above the repositories works with
// these types and nothing else.
package models

// DateLayout is the calendar-date format used everywhere in the catalog:
// loan dates, expected dates, and return dates are stored as ISO strings.
const DateLayout = "2006-01-02"

// Loan status values. A loan starts open and is closed exactly once.
const (
	LoanStatusOpen   = "open"
	LoanStatusClosed = "closed"
)

// User is a registered library member.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Address   string
	Email     string
	Phone     string
}

// Book is a catalogued title with a copy count.
//
// Quantity is the number of copies owned; Available is the number currently
// not out on loan. The store maintains 0 <= Available <= Quantity.
type Book struct {
	ID        int64
	Title     string
	Author    string
	Publisher string
	Year      int
	ISBN      string
	Quantity  int
	Available int
}

// Loan records one copy of a book checked out by a user.
//
// ExpectedDate is LoanDate plus a fixed 7-day grace period, computed once at
// creation. ReturnDate is empty until the loan is closed.
type Loan struct {
	ID           int64
	BookID       int64
	UserID       int64
	LoanDate     string
	ExpectedDate string
	ReturnDate   string
	Status       string
}

// LoanView is the denormalized read-side projection of a loan joined with
// its user and book. It is produced at query time and never persisted.
type LoanView struct {
	ID           int64
	UserID       int64
	UserName     string
	BookID       int64
	BookTitle    string
	LoanDate     string
	ExpectedDate string
	ReturnDate   string
	Status       string
}

// Open reports whether the loan is still outstanding. Historical rows that
// predate the status column count as open until migrated or closed.
func (l *Loan) Open() bool {
	return l.Status != LoanStatusClosed
}
