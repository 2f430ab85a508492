package log

import (
	"go.uber.org/zap"

	"github.com/daniel/library/pkg/logger"
)

func InfoCreateBook(l *zap.Logger, msg string, traceID, isbn string, id ...int64) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("isbn", isbn),
			zap.String("action", CreateBook))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", id[0]),
		zap.String("isbn", isbn),
		zap.String("action", CreateBook))
}

func ErrorCreateBook(l *zap.Logger, err error, msg string, traceID, isbn string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("isbn", isbn),
		zap.Error(err),
		zap.String("action", CreateBook))
}

func InfoGetBook(l *zap.Logger, msg string, traceID string, bookID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("action", GetBook))
}

func ErrorGetBook(l *zap.Logger, err error, msg string, traceID string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", GetBook))
}

func InfoUpdateBook(l *zap.Logger, msg string, traceID string, bookID int64, isbn string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("isbn", isbn),
		zap.String("action", UpdateBook))
}

func ErrorUpdateBook(l *zap.Logger, err error, msg string, traceID string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", UpdateBook))
}

func InfoDeleteBook(l *zap.Logger, msg string, traceID string, bookID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("action", DeleteBook))
}

func ErrorDeleteBook(l *zap.Logger, err error, msg string, traceID string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", DeleteBook))
}

func ErrorFindBooks(l *zap.Logger, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", FindBooks))
}

func ErrorGetBookLoans(l *zap.Logger, err error, msg string, traceID string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", GetBookLoans))
}
