package repository

import (
	"context"

	"github.com/daniel/library/internal/entity"
)

type (
	BooksRepository interface {
		CreateBook(ctx context.Context, book entity.Book) (entity.Book, error)
		GetBook(ctx context.Context, bookID int64) (entity.Book, error)
		GetBookByISBN(ctx context.Context, isbn string) (entity.Book, error)
		UpdateBook(ctx context.Context, book entity.Book) error
		DeleteBook(ctx context.Context, bookID int64) error
		FindBooks(ctx context.Context, filter entity.BookFilter, page entity.PageRequest) (entity.Page[entity.Book], error)
	}

	LoansRepository interface {
		CreateLoan(ctx context.Context, loan entity.Loan) (entity.Loan, error)
		GetLoan(ctx context.Context, loanID int64) (entity.Loan, error)
		GetLoanForUpdate(ctx context.Context, loanID int64) (entity.Loan, error)
		UpdateLoan(ctx context.Context, loan entity.Loan) error
		HasActiveLoan(ctx context.Context, bookID int64) (bool, error)
		FindLoans(ctx context.Context, filter entity.LoanFilter, page entity.PageRequest) (entity.Page[entity.Loan], error)
		FindLoansByBook(ctx context.Context, bookID int64, page entity.PageRequest) (entity.Page[entity.Loan], error)
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)
