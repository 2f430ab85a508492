package library

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/daniel/library/internal/entity"
	"github.com/daniel/library/pkg/logger"
)

func (l *libraryImpl) CreateBook(ctx context.Context, title, author, isbn string) (entity.Book, error) {
	var book entity.Book

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		_, lookupErr := l.booksRepository.GetBookByISBN(ctx, isbn)

		if lookupErr == nil {
			return fmt.Errorf("isbn %s is taken: %w", isbn, entity.ErrDuplicateISBN)
		}

		if !errors.Is(lookupErr, entity.ErrBookNotFound) {
			return lookupErr
		}

		var createErr error
		book, createErr = l.booksRepository.CreateBook(ctx, entity.Book{
			Title:  title,
			Author: author,
			ISBN:   isbn,
		})

		return createErr
	})

	if logger.CheckError(err, l.logger, "failed to create book", zap.String("isbn", isbn), zap.Error(err)) {
		return entity.Book{}, err
	}

	logger.MakeInfo(l.logger, "book created", zap.Int64("book_id", book.ID), zap.String("isbn", isbn))

	return book, nil
}

func (l *libraryImpl) GetBook(ctx context.Context, bookID int64) (entity.Book, error) {
	book, err := l.booksRepository.GetBook(ctx, bookID)

	if logger.CheckError(err, l.logger, "failed to get book", zap.Int64("book_id", bookID), zap.Error(err)) {
		return entity.Book{}, err
	}

	return book, nil
}

func (l *libraryImpl) UpdateBook(ctx context.Context, bookID int64, title, author, isbn string) (entity.Book, error) {
	updated := entity.Book{
		ID:     bookID,
		Title:  title,
		Author: author,
		ISBN:   isbn,
	}

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		current, getErr := l.booksRepository.GetBook(ctx, bookID)

		if getErr != nil {
			return getErr
		}

		if current.ISBN != isbn {
			other, lookupErr := l.booksRepository.GetBookByISBN(ctx, isbn)

			if lookupErr == nil && other.ID != bookID {
				return fmt.Errorf("isbn %s is taken: %w", isbn, entity.ErrDuplicateISBN)
			}

			if lookupErr != nil && !errors.Is(lookupErr, entity.ErrBookNotFound) {
				return lookupErr
			}
		}

		return l.booksRepository.UpdateBook(ctx, updated)
	})

	if logger.CheckError(err, l.logger, "failed to update book", zap.Int64("book_id", bookID), zap.Error(err)) {
		return entity.Book{}, err
	}

	logger.MakeInfo(l.logger, "book updated", zap.Int64("book_id", bookID))

	return updated, nil
}

// DeleteBook refuses to remove a book that is loaned out. Returned
// loan history is dropped with the book by the schema cascade.
func (l *libraryImpl) DeleteBook(ctx context.Context, bookID int64) error {
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		if _, getErr := l.booksRepository.GetBook(ctx, bookID); getErr != nil {
			return getErr
		}

		active, checkErr := l.loansRepository.HasActiveLoan(ctx, bookID)

		if checkErr != nil {
			return checkErr
		}

		if active {
			return fmt.Errorf("book %d is loaned out: %w", bookID, entity.ErrBookHasActiveLoan)
		}

		return l.booksRepository.DeleteBook(ctx, bookID)
	})

	if logger.CheckError(err, l.logger, "failed to delete book", zap.Int64("book_id", bookID), zap.Error(err)) {
		return err
	}

	logger.MakeInfo(l.logger, "book deleted", zap.Int64("book_id", bookID))

	return nil
}

func (l *libraryImpl) FindBooks(ctx context.Context, filter entity.BookFilter, page entity.PageRequest) (entity.Page[entity.Book], error) {
	result, err := l.booksRepository.FindBooks(ctx, filter, page)

	if logger.CheckError(err, l.logger, "failed to find books", zap.Error(err)) {
		return entity.Page[entity.Book]{}, err
	}

	return result, nil
}
