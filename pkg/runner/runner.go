package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/brewer/pkg/domain"
	"github.com/aretw0/brewer/pkg/ports"
)

// ErrTooManyRejections is returned when the operator exceeds WithMaxRejections.
var ErrTooManyRejections = errors.New("too many rejected actions")

// Summary reports what happened during a run.
type Summary struct {
	Turns    int                   `json:"turns"`
	Rejected int                   `json:"rejected"`
	Counts   map[domain.Action]int `json:"counts"`
}

// Runner drives a Machine until input ends, the operator quits or the
// context is cancelled.
type Runner struct {
	Handler       IOHandler
	Logger        *slog.Logger
	MaxRejections int
}

// NewRunner creates a Runner. Without WithInputHandler it reads stdin and
// writes stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run executes the loop: read state, list actions, read a choice, submit it.
// A clean end of input or a quit command returns a nil error.
func (r *Runner) Run(ctx context.Context, m ports.Machine) (Summary, error) {
	summary := Summary{Counts: make(map[domain.Action]int)}
	redraw := true
	streak := 0

	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		state := m.CurrentState()
		actions := m.AvailableActions(state)

		if redraw {
			frame := Frame{Status: m.RenderStatus(), State: state, Actions: actions}
			if err := r.Handler.Output(ctx, frame); err != nil {
				return summary, fmt.Errorf("failed to write frame: %w", err)
			}
			redraw = false
		}

		input, err := r.Handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("input closed", "turns", summary.Turns)
				return summary, nil
			}
			return summary, err
		}

		cmd := strings.TrimSpace(input)
		switch strings.ToLower(cmd) {
		case "":
			continue
		case "quit", "exit":
			r.Logger.Debug("operator quit", "turns", summary.Turns)
			return summary, nil
		case "help", "?":
			if err := r.Handler.Notice(ctx, HelpText); err != nil {
				return summary, err
			}
			redraw = true
			continue
		}

		label := resolveChoice(cmd, actions)
		if _, err := m.Submit(ctx, label); err != nil {
			if !errors.Is(err, domain.ErrInvalidAction) {
				return summary, err
			}
			summary.Rejected++
			streak++
			r.Logger.Debug("action rejected", "input", cmd, "state", state)
			if nerr := r.Handler.Notice(ctx, err.Error()); nerr != nil {
				return summary, nerr
			}
			if r.MaxRejections > 0 && streak >= r.MaxRejections {
				return summary, fmt.Errorf("%w: %d in a row", ErrTooManyRejections, streak)
			}
			continue
		}

		streak = 0
		summary.Turns++
		if action, ok := domain.ParseAction(label); ok {
			summary.Counts[action]++
		}
		redraw = true
	}
}

// resolveChoice maps a 1-based menu number to its label.
// Anything else is returned unchanged and resolved by the machine.
func resolveChoice(input string, actions []domain.Action) string {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(actions) {
		return input
	}
	return actions[n-1].Label()
}
