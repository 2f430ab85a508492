package logger

import "go.uber.org/zap"

// CheckError reports whether err is non-nil, logging it when a logger
// is configured for the calling layer. Callers use the return value to
// keep error logging on the same line as the error check.
func CheckError(err error, logger *zap.Logger, msg string, fields ...zap.Field) bool {
	if err != nil {
		if logger != nil {
			logger.Error(msg, fields...)
		}
		return true
	}
	return false
}

func MakeInfo(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Info(msg, fields...)
	}
}
