package library

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/daniel/library/internal/entity"
)

var errInternalLoans = errors.New("internal error")

func TestCreateLoan(t *testing.T) {
	t.Parallel()

	const (
		isbn     = "978-0134190440"
		customer = "Alice"
		email    = "alice@example.com"
	)

	book := entity.Book{ID: 42, Title: "The Go Programming Language", ISBN: isbn}

	tests := []struct {
		name       string
		getErr     error
		activeLoan bool
		createErr  error
		requireErr error
	}{
		{name: "valid create loan",
			requireErr: nil},

		{name: "create loan for missing book",
			getErr:     entity.ErrBookNotFound,
			requireErr: entity.ErrBookNotFound},

		{name: "create loan for loaned out book",
			activeLoan: true,
			requireErr: entity.ErrBookAlreadyLoaned},

		{name: "create loan with internal error",
			createErr:  errInternalLoans,
			requireErr: errInternalLoans},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, m, s := initLibraryTest(t)

			m.books.EXPECT().GetBookByISBN(ctx, isbn).Return(book, test.getErr)

			if test.getErr == nil {
				m.loans.EXPECT().HasActiveLoan(ctx, book.ID).Return(test.activeLoan, nil)

				if !test.activeLoan {
					m.loans.EXPECT().CreateLoan(ctx, gomock.Any()).
						DoAndReturn(func(_ context.Context, input entity.Loan) (entity.Loan, error) {
							if test.createErr != nil {
								return entity.Loan{}, test.createErr
							}
							input.ID = 1
							return input, nil
						})
				}
			}

			loan, err := s.CreateLoan(ctx, isbn, customer, email)
			require.ErrorIs(t, err, test.requireErr)

			if err != nil {
				require.Empty(t, loan)
				return
			}

			require.Equal(t, int64(1), loan.ID)
			require.Equal(t, customer, loan.Customer)
			require.Equal(t, email, loan.Email)
			require.Equal(t, book, loan.Book)
			require.False(t, loan.Returned)
		})
	}
}

func TestGetLoan(t *testing.T) {
	t.Parallel()

	const loanID = int64(7)

	tests := []struct {
		name        string
		requireLoan entity.Loan
		requireErr  error
	}{
		{name: "valid get loan",
			requireLoan: entity.Loan{ID: loanID, Customer: "Alice", Book: entity.Book{ID: 42}},
			requireErr:  nil},

		{name: "get missing loan",
			requireLoan: entity.Loan{},
			requireErr:  entity.ErrLoanNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, m, s := initLibraryTest(t)

			m.loans.EXPECT().GetLoan(ctx, loanID).Return(test.requireLoan, test.requireErr)

			loan, err := s.GetLoan(ctx, loanID)
			require.ErrorIs(t, err, test.requireErr)
			require.Equal(t, test.requireLoan, loan)
		})
	}
}

func TestSetLoanReturned(t *testing.T) {
	t.Parallel()

	const loanID = int64(7)

	book := entity.Book{ID: 42, ISBN: "978-0134190440"}

	tests := []struct {
		name         string
		current      bool
		returned     bool
		getErr       error
		otherActive  bool
		expectCheck  bool
		expectUpdate bool
		updateErr    error
		requireErr   error
	}{
		{name: "return active loan",
			current:      false,
			returned:     true,
			expectUpdate: true,
			requireErr:   nil},

		{name: "return already returned loan",
			current:    true,
			returned:   true,
			requireErr: nil},

		{name: "reactivate returned loan",
			current:      true,
			returned:     false,
			expectCheck:  true,
			expectUpdate: true,
			requireErr:   nil},

		{name: "reactivate while book loaned out",
			current:     true,
			returned:    false,
			expectCheck: true,
			otherActive: true,
			requireErr:  entity.ErrBookAlreadyLoaned},

		{name: "set returned on missing loan",
			getErr:     entity.ErrLoanNotFound,
			requireErr: entity.ErrLoanNotFound},

		{name: "set returned with internal error",
			current:      false,
			returned:     true,
			expectUpdate: true,
			updateErr:    errInternalLoans,
			requireErr:   errInternalLoans},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, m, s := initLibraryTest(t)

			stored := entity.Loan{ID: loanID, Customer: "Alice", Returned: test.current, Book: book}
			m.loans.EXPECT().GetLoanForUpdate(ctx, loanID).Return(stored, test.getErr)

			if test.expectCheck {
				m.loans.EXPECT().HasActiveLoan(ctx, book.ID).Return(test.otherActive, nil)
			}

			if test.expectUpdate {
				m.loans.EXPECT().UpdateLoan(ctx, gomock.Any()).Return(test.updateErr)
			}

			loan, err := s.SetLoanReturned(ctx, loanID, test.returned)
			require.ErrorIs(t, err, test.requireErr)

			if err != nil {
				require.Empty(t, loan)
				return
			}

			require.Equal(t, loanID, loan.ID)
			require.Equal(t, test.returned, loan.Returned)
		})
	}
}

func TestFindLoans(t *testing.T) {
	t.Parallel()

	filter := entity.LoanFilter{Customer: "Alice"}
	page := entity.PageRequest{Number: 0, Size: 20}

	tests := []struct {
		name        string
		requirePage entity.Page[entity.Loan]
		requireErr  error
	}{
		{name: "valid find loans",
			requirePage: entity.Page[entity.Loan]{
				Content:       []entity.Loan{{ID: 1, Customer: "Alice"}},
				Size:          20,
				TotalElements: 1,
			},
			requireErr: nil},

		{name: "find loans with internal error",
			requirePage: entity.Page[entity.Loan]{},
			requireErr:  errInternalLoans},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, m, s := initLibraryTest(t)

			m.loans.EXPECT().FindLoans(ctx, filter, page).Return(test.requirePage, test.requireErr)

			result, err := s.FindLoans(ctx, filter, page)
			require.ErrorIs(t, err, test.requireErr)
			require.Equal(t, test.requirePage, result)
		})
	}
}

func TestFindLoansByBook(t *testing.T) {
	t.Parallel()

	book := entity.Book{ID: 42}
	page := entity.PageRequest{Number: 0, Size: 20}

	tests := []struct {
		name        string
		requirePage entity.Page[entity.Loan]
		requireErr  error
	}{
		{name: "valid find loans of book",
			requirePage: entity.Page[entity.Loan]{
				Content:       []entity.Loan{{ID: 1, Book: book}},
				Size:          20,
				TotalElements: 1,
			},
			requireErr: nil},

		{name: "find loans of book with internal error",
			requirePage: entity.Page[entity.Loan]{},
			requireErr:  errInternalLoans},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctx, m, s := initLibraryTest(t)

			m.loans.EXPECT().FindLoansByBook(ctx, book.ID, page).Return(test.requirePage, test.requireErr)

			result, err := s.FindLoansByBook(ctx, book, page)
			require.ErrorIs(t, err, test.requireErr)
			require.Equal(t, test.requirePage, result)
		})
	}
}
