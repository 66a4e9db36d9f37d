package brewer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/brewer/internal/runtime"
	"github.com/aretw0/brewer/pkg/domain"
)

// Status is a point-in-time view of the machine.
type Status = runtime.Status

// Machine is the high-level entry point for the brewer library.
// It wraps the internal controller and serializes every call, so a single
// Machine can be shared by several goroutines.
type Machine struct {
	mu         sync.Mutex
	controller *runtime.Controller
	profile    domain.Profile
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Machine.
type Option func(*Machine)

// WithProfile overrides the factory capacities and recipe table.
func WithProfile(p domain.Profile) Option {
	return func(m *Machine) {
		m.profile = p
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// New builds a machine with empty deposits.
// It fails only when the profile cannot describe a working machine.
func New(opts ...Option) (*Machine, error) {
	m := &Machine{profile: domain.DefaultProfile()}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.profile.Validate(); err != nil {
		return nil, err
	}

	if m.logger == nil {
		m.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	m.controller = runtime.NewController(
		runtime.WithProfile(m.profile),
		runtime.WithLogger(m.logger.With("component", "controller")),
		runtime.WithLifecycleHooks(m.hooks),
	)
	return m, nil
}

// MustNew is like New but panics on an invalid profile.
func MustNew(opts ...Option) *Machine {
	m, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("brewer: %v", err))
	}
	return m
}

// Profile returns the capacities and recipes the machine was built from.
func (m *Machine) Profile() domain.Profile {
	return m.profile
}

// CurrentState returns the derived machine state.
func (m *Machine) CurrentState() domain.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.controller.CurrentState()
}

// AvailableActions returns the ordered actions valid in the given state.
func (m *Machine) AvailableActions(state domain.State) []domain.Action {
	return m.controller.AvailableActions(state)
}

// Submit applies the action named by label and returns the rendered status.
// Labels not valid for the current state yield an error matching domain.ErrInvalidAction.
func (m *Machine) Submit(ctx context.Context, label string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.controller.Submit(ctx, label)
}

// Status returns a snapshot of the deposits and warnings.
func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.controller.Status()
}

// RenderStatus returns the plain-text status.
func (m *Machine) RenderStatus() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.controller.RenderStatus()
}
