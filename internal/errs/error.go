package errs

import (
	"errors"
)

var (
	// ErrNotFound covers any referenced record that cannot be resolved:
	// book, member, staff, loan or trash entry.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks malformed or inconsistent input, such as a
	// planned return date before the borrow date.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks writes that collide with current state: duplicate
	// ISBN or email, returning an already returned loan.
	ErrConflict = errors.New("conflict")

	// ErrOutOfStock is returned when a loan is requested for a book with
	// no copies on the shelf.
	ErrOutOfStock = errors.New("book out of stock")

	// ErrMemberInactive is returned when an inactive member tries to
	// borrow.
	ErrMemberInactive = errors.New("member is not active")

	// ErrAlreadyReturned is returned on a second return of the same loan.
	ErrAlreadyReturned = errors.New("loan already returned")

	// ErrAlreadyDeleted is returned when soft-deleting a record that is
	// already in the trash.
	ErrAlreadyDeleted = errors.New("record already deleted")

	// ErrLoanActive forbids trashing a loan that is still out. Stock is
	// only ever restored through a return, so an active loan must be
	// returned before it can be deleted.
	ErrLoanActive = errors.New("loan is still active")

	// ErrGone is returned by restore when the trash entry exists but the
	// underlying record has been removed.
	ErrGone = errors.New("live record missing")
)
