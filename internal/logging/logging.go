package logging

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const entryKey contextKey = "log_entry"

// Setup configures the global logrus logger
func Setup(out io.Writer, level logrus.Level, format string) {
	logrus.SetOutput(out)
	logrus.SetLevel(level)
	if format == "text" {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
}

// NewRequestID generates a request ID for requests that arrive without one
func NewRequestID() string {
	return uuid.New().String()
}

// WithEntry returns a context carrying entry
func WithEntry(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, entryKey, entry)
}

// FromContext returns the request-scoped entry, or one on the standard logger
func FromContext(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(entryKey).(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
