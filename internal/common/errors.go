// Package common defines sentinel errors shared across the catalog layers.
// Callers should use errors.Is to match these values; the store wraps them
// with entity context via fmt.Errorf("...: %w", ...).
package common

import "errors"

var (
	// ErrNotFound is returned when a referenced user, book, or loan id does
	// not exist where existence was required.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable is returned when opening a loan for a book with zero
	// available copies.
	ErrUnavailable = errors.New("no available copies")

	// ErrConflict is returned when deleting a user or book that still has a
	// non-closed loan referencing it.
	ErrConflict = errors.New("open loan exists")

	// ErrInternal signals an unexpected storage failure the caller cannot
	// act on beyond reporting it.
	ErrInternal = errors.New("internal error")
)
