package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type options struct {
	format string
	writer io.Writer
}

// Option configures New.
type Option func(*options)

// WithFormat selects "text" (default) or "json" output.
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = strings.ToLower(format)
	}
}

// WithWriter redirects the output (stderr by default).
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// New creates a configured application logger.
// It writes to Stderr (to keep Stdout for the operator menu and JSON frames).
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level, opts ...Option) *slog.Logger {
	o := options{writer: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	handlerOpts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}

	if o.format == "json" {
		return slog.New(slog.NewJSONHandler(o.writer, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(o.writer, handlerOpts))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
