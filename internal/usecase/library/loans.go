package library

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/daniel/library/internal/entity"
	"github.com/daniel/library/pkg/logger"
)

// CreateLoan resolves the book by isbn and lends it out. The isbn
// lookup locks the book row for the rest of the transaction, so two
// concurrent creations for the same book serialize on the
// availability check.
func (l *libraryImpl) CreateLoan(ctx context.Context, isbn, customer, email string) (entity.Loan, error) {
	var loan entity.Loan

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		book, getErr := l.booksRepository.GetBookByISBN(ctx, isbn)

		if getErr != nil {
			return getErr
		}

		active, checkErr := l.loansRepository.HasActiveLoan(ctx, book.ID)

		if checkErr != nil {
			return checkErr
		}

		if active {
			return fmt.Errorf("book %d is loaned out: %w", book.ID, entity.ErrBookAlreadyLoaned)
		}

		var createErr error
		loan, createErr = l.loansRepository.CreateLoan(ctx, entity.Loan{
			Customer: customer,
			Email:    email,
			Book:     book,
		})

		return createErr
	})

	if logger.CheckError(err, l.logger, "failed to create loan",
		zap.String("isbn", isbn), zap.String("customer", customer), zap.Error(err)) {
		return entity.Loan{}, err
	}

	logger.MakeInfo(l.logger, "loan created",
		zap.Int64("loan_id", loan.ID), zap.Int64("book_id", loan.Book.ID))

	return loan, nil
}

func (l *libraryImpl) GetLoan(ctx context.Context, loanID int64) (entity.Loan, error) {
	loan, err := l.loansRepository.GetLoan(ctx, loanID)

	if logger.CheckError(err, l.logger, "failed to get loan", zap.Int64("loan_id", loanID), zap.Error(err)) {
		return entity.Loan{}, err
	}

	return loan, nil
}

// SetLoanReturned flips the returned flag. Re-activating a returned
// loan is allowed only while the book has no other active loan, so the
// one-active-loan rule holds on this path too.
func (l *libraryImpl) SetLoanReturned(ctx context.Context, loanID int64, returned bool) (entity.Loan, error) {
	var loan entity.Loan

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		var getErr error
		loan, getErr = l.loansRepository.GetLoanForUpdate(ctx, loanID)

		if getErr != nil {
			return getErr
		}

		if loan.Returned == returned {
			return nil
		}

		if !returned {
			active, checkErr := l.loansRepository.HasActiveLoan(ctx, loan.Book.ID)

			if checkErr != nil {
				return checkErr
			}

			if active {
				return fmt.Errorf("book %d is loaned out: %w", loan.Book.ID, entity.ErrBookAlreadyLoaned)
			}
		}

		loan.Returned = returned

		return l.loansRepository.UpdateLoan(ctx, loan)
	})

	if logger.CheckError(err, l.logger, "failed to set loan returned flag",
		zap.Int64("loan_id", loanID), zap.Bool("returned", returned), zap.Error(err)) {
		return entity.Loan{}, err
	}

	logger.MakeInfo(l.logger, "loan returned flag set",
		zap.Int64("loan_id", loanID), zap.Bool("returned", returned))

	return loan, nil
}

func (l *libraryImpl) FindLoans(ctx context.Context, filter entity.LoanFilter, page entity.PageRequest) (entity.Page[entity.Loan], error) {
	result, err := l.loansRepository.FindLoans(ctx, filter, page)

	if logger.CheckError(err, l.logger, "failed to find loans", zap.Error(err)) {
		return entity.Page[entity.Loan]{}, err
	}

	return result, nil
}

func (l *libraryImpl) FindLoansByBook(ctx context.Context, book entity.Book, page entity.PageRequest) (entity.Page[entity.Loan], error) {
	result, err := l.loansRepository.FindLoansByBook(ctx, book.ID, page)

	if logger.CheckError(err, l.logger, "failed to find loans of book",
		zap.Int64("book_id", book.ID), zap.Error(err)) {
		return entity.Page[entity.Loan]{}, err
	}

	return result, nil
}
