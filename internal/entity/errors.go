package entity

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrLoanNotFound = errors.New("loan not found")

	// ErrDuplicateISBN is returned when creating or updating a book
	// would leave two books with the same isbn.
	ErrDuplicateISBN = errors.New("book with this isbn already exists")

	// ErrBookAlreadyLoaned is returned when a loan would leave a book
	// with more than one active loan.
	ErrBookAlreadyLoaned = errors.New("book already loaned")

	// ErrBookHasActiveLoan is returned when deleting a book that is
	// currently loaned out.
	ErrBookHasActiveLoan = errors.New("book has an active loan")
)
