package logging

import (
	"context"
	"log/slog"

	"github.com/krypteia/krypteia-go/pkg/classical"
)

const redactedPlaceholder = "[redacted]"

// Logger defines the subset of slog functionality used by the krypteia
// surfaces. The interface is intentionally small so applications can provide
// their own implementation for testing or redaction policies.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds
// to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Redacted marks attributes that contain key material. Transform requests
// are logged without their keys; include this attribute as a reminder that
// the value was intentionally removed.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// CipherKey is the attribute under which cipher keys appear in audit lines.
// The key material itself never reaches the log stream; only its letter
// count does, which for classical ciphers reveals nothing the ciphertext
// length does not already.
func CipherKey(key string) slog.Attr {
	letters := 0
	for _, r := range key {
		if classical.IsLetter(r) {
			letters++
		}
	}
	return slog.Group("key",
		slog.String("value", redactedPlaceholder),
		slog.Int("letters", letters),
	)
}

// Placeholder returns the canonical string that represents a redacted value.
func Placeholder() string {
	return redactedPlaceholder
}
