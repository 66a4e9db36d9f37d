package cli

import (
	"io"
	"log/slog"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	ProfilePath string
	Headless    bool
	JSON        bool
	Debug       bool
	LogFormat   string
	MetricsAddr string

	// MaxRejections stops headless runs after that many invalid inputs in a row.
	MaxRejections int

	// In and Out default to stdin/stdout.
	In  io.Reader
	Out io.Writer

	// LogWriter defaults to stderr.
	LogWriter io.Writer
	// Logger overrides the logger derived from Debug, LogFormat and the
	// profile's log_level.
	Logger *slog.Logger
}
