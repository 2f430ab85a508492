package log

import (
	"go.uber.org/zap"

	"github.com/daniel/library/pkg/logger"
)

func InfoCreateLoan(l *zap.Logger, msg string, traceID, isbn, customer string, id ...int64) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("isbn", isbn),
			zap.String("customer", customer),
			zap.String("action", CreateLoan))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("loan_id", id[0]),
		zap.String("isbn", isbn),
		zap.String("customer", customer),
		zap.String("action", CreateLoan))
}

func ErrorCreateLoan(l *zap.Logger, err error, msg string, traceID, isbn, customer string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("isbn", isbn),
		zap.String("customer", customer),
		zap.Error(err),
		zap.String("action", CreateLoan))
}

func InfoGetLoan(l *zap.Logger, msg string, traceID string, loanID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("loan_id", loanID),
		zap.String("action", GetLoan))
}

func ErrorGetLoan(l *zap.Logger, err error, msg string, traceID string, loanID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("loan_id", loanID),
		zap.Error(err),
		zap.String("action", GetLoan))
}

func InfoReturnLoan(l *zap.Logger, msg string, traceID string, loanID int64, returned bool) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("loan_id", loanID),
		zap.Bool("returned", returned),
		zap.String("action", ReturnLoan))
}

func ErrorReturnLoan(l *zap.Logger, err error, msg string, traceID string, loanID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("loan_id", loanID),
		zap.Error(err),
		zap.String("action", ReturnLoan))
}

func ErrorFindLoans(l *zap.Logger, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", FindLoans))
}
