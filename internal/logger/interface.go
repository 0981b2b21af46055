package logger

import "context"

// Logger is the printf-style logger every package takes. Each call carries
// the request context so run-scoped fields attached with WithRunID show up
// on the line.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
