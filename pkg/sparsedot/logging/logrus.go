package logging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sirupsen/logrus"
)

// NewLogrus adapts a logrus logger. Passing nil binds to
// logrus.StandardLogger(). Arguments follow the slog convention of
// alternating keys and values, or slog.Attr values.
func NewLogrus(logger *logrus.Logger) Logger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &logrusLogger{entry: logrus.NewEntry(logger)}
}

type logrusLogger struct {
	entry *logrus.Entry
}

func (l *logrusLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.with(ctx, args).Debug(msg)
}

func (l *logrusLogger) Info(ctx context.Context, msg string, args ...any) {
	l.with(ctx, args).Info(msg)
}

func (l *logrusLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.with(ctx, args).Warn(msg)
}

func (l *logrusLogger) Error(ctx context.Context, msg string, args ...any) {
	l.with(ctx, args).Error(msg)
}

func (l *logrusLogger) With(args ...any) Logger {
	return &logrusLogger{entry: l.entry.WithFields(fields(args))}
}

func (l *logrusLogger) with(ctx context.Context, args []any) *logrus.Entry {
	e := l.entry
	if ctx != nil {
		e = e.WithContext(ctx)
	}
	if len(args) == 0 {
		return e
	}
	return e.WithFields(fields(args))
}

// fields converts slog-style arguments. A trailing key without a value is
// kept under "!BADKEY" as slog does.
func fields(args []any) logrus.Fields {
	f := make(logrus.Fields, len(args)/2)
	for len(args) > 0 {
		switch a := args[0].(type) {
		case slog.Attr:
			f[a.Key] = a.Value.Resolve().Any()
			args = args[1:]
		case string:
			if len(args) == 1 {
				f["!BADKEY"] = a
				return f
			}
			f[a] = args[1]
			args = args[2:]
		default:
			f["!BADKEY"] = fmt.Sprint(a)
			args = args[1:]
		}
	}
	return f
}
