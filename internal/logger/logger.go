package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger wraps slog with accumulated context. Chained helpers return copies,
// so a package-level logger can be narrowed per function without mutation.
type Logger struct {
	handler *slog.Logger
	attrs   []any
}

var base = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
	Level: slog.LevelInfo,
}))

// SetDefault replaces the process-wide base logger. Used by tests and main.
func SetDefault(l *slog.Logger) {
	base = l
}

func New(pkg string) Logger {
	return Logger{
		handler: base,
		attrs:   []any{"package", pkg},
	}
}

func (l Logger) with(key, value string) Logger {
	attrs := make([]any, len(l.attrs), len(l.attrs)+2)
	copy(attrs, l.attrs)
	return Logger{
		handler: l.handler,
		attrs:   append(attrs, key, value),
	}
}

func (l Logger) Function(name string) Logger {
	return l.with("function", name)
}

func (l Logger) File(name string) Logger {
	return l.with("file", name)
}

func (l Logger) args(extra ...any) []any {
	out := make([]any, 0, len(l.attrs)+len(extra))
	out = append(out, l.attrs...)
	out = append(out, extra...)
	return out
}

func (l Logger) Info(msg string, keysAndValues ...any) {
	l.handler.Info(msg, l.args(keysAndValues...)...)
}

func (l Logger) Debug(msg string, keysAndValues ...any) {
	l.handler.Debug(msg, l.args(keysAndValues...)...)
}

func (l Logger) Warn(msg string, keysAndValues ...any) {
	l.handler.Warn(msg, l.args(keysAndValues...)...)
}

// Er logs an error without returning one. For call sites that swallow the
// failure after recording it.
func (l Logger) Er(msg string, err error, keysAndValues ...any) {
	l.handler.Error(msg, l.args(append(keysAndValues, "error", err)...)...)
}

// ErMsg logs an error-level message with no underlying error value.
func (l Logger) ErMsg(msg string, keysAndValues ...any) {
	l.handler.Error(msg, l.args(keysAndValues...)...)
}

// Err logs and returns a wrapped error, so callers can do
// `return log.Err("failed to X", err)` in one line.
func (l Logger) Err(msg string, err error, keysAndValues ...any) error {
	l.handler.Error(msg, l.args(append(keysAndValues, "error", err)...)...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Error logs and returns a new error built from msg alone.
func (l Logger) Error(msg string, keysAndValues ...any) error {
	l.handler.Error(msg, l.args(keysAndValues...)...)
	return fmt.Errorf("%s", msg)
}

// ErrMsg is Error without structured context, for invariant checks.
func (l Logger) ErrMsg(msg string) error {
	l.handler.Error(msg, l.attrs...)
	return fmt.Errorf("%s", msg)
}
