// Package logging provides structured logging for the Car Stock API.
//
// This package wraps Go's standard log/slog package to provide consistent,
// structured logging across the application: JSON or text output, level
// filtering, and default service/version attributes on every record.
package logging
