// Package log configures log/slog loggers for requeasy.
package log
