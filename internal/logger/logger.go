package logger

import (
	"context"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

type runIDKey struct{}

type implLogger struct {
	logger *charmlog.Logger
}

// New creates a text logger on stdout.
func New(level string) Logger {
	return NewWithWriter(level, "text", os.Stdout)
}

// NewWithWriter creates a logger writing to w. Format is one of text, json
// or logfmt; anything else falls back to text.
func NewWithWriter(level, format string, w io.Writer) Logger {
	l := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Level:           parseLevel(level),
	})
	switch strings.ToLower(format) {
	case "json":
		l.SetFormatter(charmlog.JSONFormatter)
	case "logfmt":
		l.SetFormatter(charmlog.LogfmtFormatter)
	default:
		l.SetFormatter(charmlog.TextFormatter)
	}
	return &implLogger{logger: l}
}

// parseLevel maps debug, info, warn and error to charm levels. Unknown
// levels log at info.
func parseLevel(level string) charmlog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return charmlog.DebugLevel
	case "warn", "warning":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// WithRunID returns a context whose log lines carry the given run ID.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunID returns the run ID stored by WithRunID, or "".
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

func (l *implLogger) from(ctx context.Context) *charmlog.Logger {
	if id := RunID(ctx); id != "" {
		return l.logger.With("run", id)
	}
	return l.logger
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.from(ctx).Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.from(ctx).Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.from(ctx).Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.from(ctx).Errorf(msg, args...)
}
