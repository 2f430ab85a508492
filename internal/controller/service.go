package controller

import (
	"context"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/daniel/library/internal/entity"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_usecase.go -package=mocks

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

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type implementation struct {
	logger       *zap.Logger
	booksUseCase BooksUseCase
	loansUseCase LoansUseCase
}

func New(
	logger *zap.Logger,
	booksUseCase BooksUseCase,
	loansUseCase LoansUseCase,
) *implementation {
	return &implementation{
		logger:       logger,
		booksUseCase: booksUseCase,
		loansUseCase: loansUseCase,
	}
}

func (i *implementation) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(tracingMiddleware)

	r.Route("/api/books", func(r chi.Router) {
		r.Post("/", i.CreateBook)
		r.Get("/", i.FindBooks)
		r.Get("/{id}", i.GetBook)
		r.Put("/{id}", i.UpdateBook)
		r.Delete("/{id}", i.DeleteBook)
		r.Get("/{id}/loans", i.GetBookLoans)
	})

	r.Route("/api/loans", func(r chi.Router) {
		r.Post("/", i.CreateLoan)
		r.Get("/", i.FindLoans)
		r.Get("/{id}", i.GetLoan)
		r.Patch("/{id}", i.ReturnLoan)
	})

	return r
}
