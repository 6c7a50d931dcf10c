package logger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pterm/pterm"

	"github.com/thushan/ctoken/theme"
)

// StyledLogger wraps slog.Logger with Theme-aware formatting
type StyledLogger struct {
	logger *slog.Logger
	Theme  *theme.Theme
}

func NewStyledLogger(logger *slog.Logger, theme *theme.Theme) *StyledLogger {
	return &StyledLogger{
		logger: logger,
		Theme:  theme,
	}
}

// NewDiscard is handy in tests where log output is noise
func NewDiscard() *StyledLogger {
	return NewStyledLogger(slog.New(slog.DiscardHandler), theme.Default())
}

func (sl *StyledLogger) Debug(msg string, args ...any) {
	sl.logger.Debug(msg, args...)
}

func (sl *StyledLogger) Info(msg string, args ...any) {
	sl.logger.Info(msg, args...)
}

func (sl *StyledLogger) Warn(msg string, args ...any) {
	sl.logger.Warn(msg, args...)
}

func (sl *StyledLogger) Error(msg string, args ...any) {
	sl.logger.Error(msg, args...)
}

func (sl *StyledLogger) WarnWithURL(msg string, url string, args ...any) {
	styledMsg := fmt.Sprintf("%s %s", msg, sl.Theme.URL.Sprint(url))
	sl.logger.Warn(styledMsg, args...)
}

// InfoWithStatus colours the status by class: 2xx good, 4xx warning, 5xx bad
func (sl *StyledLogger) InfoWithStatus(msg string, statusCode int, args ...any) {
	styledMsg := fmt.Sprintf("%s %s", msg, pterm.NewStyle(sl.Theme.ForStatus(statusCode)).Sprint(statusCode))
	sl.logger.Info(styledMsg, args...)
}

func (sl *StyledLogger) InfoSuccess(msg string, args ...any) {
	sl.logger.Info(sl.Theme.Success.Sprint(msg), args...)
}

func (sl *StyledLogger) WithRequestID(requestID string) *StyledLogger {
	return sl.With("request_id", requestID)
}

func (sl *StyledLogger) With(args ...any) *StyledLogger {
	return &StyledLogger{
		logger: sl.logger.With(args...),
		Theme:  sl.Theme,
	}
}

func NewWithTheme(cfg *Config) (*slog.Logger, *StyledLogger, func(), error) {
	logger, cleanup, err := New(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	appTheme := theme.GetTheme(cfg.Theme)
	styledLogger := NewStyledLogger(logger, appTheme)

	return logger, styledLogger, cleanup, nil
}

// LogContext separates user-facing from detailed logging context, the
// terminal gets UserArgs and the log file gets everything.
type LogContext struct {
	UserArgs     []any
	DetailedArgs []any
}

func (sl *StyledLogger) WarnWithContext(msg string, url string, ctx LogContext) {
	sl.WarnWithURL(msg, url, ctx.UserArgs...)
	sl.detailed(slog.LevelWarn, msg, url, ctx)
}

func (sl *StyledLogger) detailed(level slog.Level, msg string, url string, ctx LogContext) {
	if len(ctx.DetailedArgs) == 0 {
		return
	}

	allArgs := make([]any, 0, len(ctx.UserArgs)+len(ctx.DetailedArgs)+2)
	allArgs = append(allArgs, "url", url)
	allArgs = append(allArgs, ctx.UserArgs...)
	allArgs = append(allArgs, ctx.DetailedArgs...)

	detailedCtx := context.WithValue(context.Background(), DefaultDetailedCookie, true)
	sl.logger.Log(detailedCtx, level, msg, allArgs...)
}
