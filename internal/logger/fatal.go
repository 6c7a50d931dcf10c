package logger

import (
	"log/slog"
	"os"
)

func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

func FatalWithLogger(logger *StyledLogger, msg string, args ...any) {
	logger.Error(msg, args...)
	os.Exit(1)
}
