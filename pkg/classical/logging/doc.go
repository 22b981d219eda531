// Package logging provides a minimal logging facade for the krypteia
// toolkit.
//
// The Logger interface wraps a subset of the standard library's log/slog
// functionality. It is deliberately small so the HTTP surface and any
// embedding application can swap in their own implementation.
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	logger = logging.New(slog.New(handler))
//
// # Redaction
//
// Cipher keys are caller secrets even when the ciphers themselves are toys.
// Log entries about transform requests carry logging.Redacted("key") instead
// of the key value:
//
//	logger.Info(ctx, "transform served", "cipher", "vigenere", logging.Redacted("key"))
//	// Logs: key="[redacted]"
package logging
