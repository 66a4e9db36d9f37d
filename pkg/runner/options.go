package runner

import (
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithMaxRejections stops the loop after n consecutive rejected inputs.
// Zero (the default) never stops.
func WithMaxRejections(n int) Option {
	return func(r *Runner) {
		r.MaxRejections = n
	}
}
