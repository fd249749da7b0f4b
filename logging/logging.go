// Package logging configures the application's logrus logger and carries a
// request-scoped entry through context.Context so handlers deep in the stack can log
// with the request id attached.
package logging

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type contextKey string

const entryContextKey contextKey = "log_entry"

// New creates a *logrus.Logger writing to stderr.
// level accepts the logrus level names ("debug", "info", "warn", "error"); anything
// unrecognized falls back to info. format is "text" or "json".
func New(level, format string) *logrus.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(out io.Writer, level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// NewContext returns a child context carrying entry.
func NewContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, entryContextKey, entry)
}

// FromContext returns the request-scoped entry, or an entry on the standard
// logger when none was attached (e.g. in unit tests that skip the middleware).
func FromContext(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(entryContextKey).(*logrus.Entry); ok && entry != nil {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
