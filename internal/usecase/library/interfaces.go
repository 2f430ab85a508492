package library

import (
	"context"

	"github.com/daniel/library/internal/entity"
)

type (
	BooksUseCase interface {
		CreateBook(ctx context.Context, title, author, isbn string) (entity.Book, error)
		GetBook(ctx context.Context, bookID int64) (entity.Book, error)
		UpdateBook(ctx context.Context, bookID int64, title, author, isbn string) (entity.Book, error)
		DeleteBook(ctx context.Context, bookID int64) error
		FindBooks(ctx context.Context, filter entity.BookFilter, page entity.PageRequest) (entity.Page[entity.Book], error)
	}

	LoansUseCase interface {
		CreateLoan(ctx context.Context, isbn, customer, email string) (entity.Loan, error)
		GetLoan(ctx context.Context, loanID int64) (entity.Loan, error)
		SetLoanReturned(ctx context.Context, loanID int64, returned bool) (entity.Loan, error)
		FindLoans(ctx context.Context, filter entity.LoanFilter, page entity.PageRequest) (entity.Page[entity.Loan], error)
		FindLoansByBook(ctx context.Context, book entity.Book, page entity.PageRequest) (entity.Page[entity.Loan], error)
	}
)
