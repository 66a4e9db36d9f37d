package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/aretw0/brewer/pkg/domain"
)

// Controller is the coffee machine state machine.
// It owns the three deposits and the recipe table, and recomputes the state
// after every mutation. It is not safe for concurrent use.
type Controller struct {
	profile domain.Profile
	coffee  domain.Deposit
	water   domain.Deposit
	waste   domain.Deposit
	state   domain.State

	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// Option configures the Controller.
type Option func(*Controller)

// WithProfile sets the capacities and recipe table.
// NewController panics if the profile fails domain.Profile.Validate.
func WithProfile(p domain.Profile) Option {
	return func(c *Controller) {
		c.profile = p
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController builds a machine with every deposit empty.
// A fresh machine always needs filling before it can brew.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		profile: domain.DefaultProfile(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.profile.Validate(); err != nil {
		panic(err)
	}

	c.coffee = domain.NewDeposit(c.profile.Capacities.Coffee)
	c.water = domain.NewDeposit(c.profile.Capacities.Water)
	c.waste = domain.NewDeposit(c.profile.Capacities.Waste)
	c.state = domain.StateActionRequired
	c.derive(context.Background())

	c.logger.Debug("machine initialized", "status", c.RenderStatus())
	return c
}

// Profile returns the table the machine was built from.
func (c *Controller) Profile() domain.Profile {
	return c.profile
}

// MaxRequiredCoffee is the coffee draw of the most demanding recipe.
func (c *Controller) MaxRequiredCoffee() uint8 {
	return c.profile.MaxRequiredCoffee()
}

// MaxRequiredWater is the water draw of the most demanding recipe.
func (c *Controller) MaxRequiredWater() uint8 {
	return c.profile.MaxRequiredWater()
}

// CoffeeDepositEmpty reports whether the coffee deposit cannot serve the most demanding recipe.
func (c *Controller) CoffeeDepositEmpty() bool {
	return c.coffee.Load < c.MaxRequiredCoffee()
}

// WaterDepositEmpty reports whether the water deposit cannot serve the most demanding recipe.
func (c *Controller) WaterDepositEmpty() bool {
	return c.water.Load < c.MaxRequiredWater()
}

// WasteDumpFull reports whether the dump lacks room for one more worst-case brew.
// A dump with exactly Capacity-MaxRequiredCoffee load already counts as full.
func (c *Controller) WasteDumpFull() bool {
	return int(c.waste.Load) >= int(c.waste.Capacity)-int(c.MaxRequiredCoffee())
}

// DeriveState recomputes the state from the deposit loads and returns it.
// Calling it again without a mutation in between yields the same state.
func (c *Controller) DeriveState() domain.State {
	return c.derive(context.Background())
}

func (c *Controller) derive(ctx context.Context) domain.State {
	next := domain.StateReady
	if c.CoffeeDepositEmpty() || c.WaterDepositEmpty() || c.WasteDumpFull() {
		next = domain.StateActionRequired
	}

	if next != c.state {
		prev := c.state
		c.state = next
		c.logger.Debug("state changed", "from", prev, "to", next)
		if c.hooks.OnStateChange != nil {
			c.hooks.OnStateChange(ctx, &domain.StateEvent{
				Timestamp: c.now(),
				From:      prev,
				To:        next,
			})
		}
	}
	return c.state
}

// CurrentState returns the last derived state.
func (c *Controller) CurrentState() domain.State {
	return c.state
}

// AvailableActions lists the actions valid in the given state, in declaration order.
func (c *Controller) AvailableActions(state domain.State) []domain.Action {
	return domain.ActionsFor(state)
}

// FillWater tops up the water deposit.
func (c *Controller) FillWater() {
	c.water.Fill()
	c.DeriveState()
}

// FillCoffee tops up the coffee deposit.
func (c *Controller) FillCoffee() {
	c.coffee.Fill()
	c.DeriveState()
}

// EmptyWaste empties the waste dump.
func (c *Controller) EmptyWaste() {
	c.waste.Empty()
	c.DeriveState()
}

// Brew draws a recipe from the deposits and adds its grounds to the waste dump.
// It panics with *domain.ResourceIntegrityError when a deposit cannot absorb the
// change; that only happens if the caller brews while ActionRequired.
func (c *Controller) Brew(r domain.Recipe) {
	c.checkBrew(r)

	c.coffee.Load -= r.Coffee
	c.water.Load -= r.Water
	c.waste.Load += r.Waste()
	c.DeriveState()
}

func (c *Controller) checkBrew(r domain.Recipe) {
	switch {
	case !c.coffee.CanDraw(r.Coffee):
		panic(&domain.ResourceIntegrityError{
			Deposit: domain.DepositCoffee, Load: c.coffee.Load, Capacity: c.coffee.Capacity, Delta: -int(r.Coffee),
		})
	case !c.water.CanDraw(r.Water):
		panic(&domain.ResourceIntegrityError{
			Deposit: domain.DepositWater, Load: c.water.Load, Capacity: c.water.Capacity, Delta: -int(r.Water),
		})
	case !c.waste.CanAdd(r.Waste()):
		panic(&domain.ResourceIntegrityError{
			Deposit: domain.DepositWaste, Load: c.waste.Load, Capacity: c.waste.Capacity, Delta: int(r.Waste()),
		})
	}
}

// Submit resolves a label against the actions valid for the current state and
// applies it. On failure nothing is mutated and an *domain.InvalidActionError
// is returned.
func (c *Controller) Submit(ctx context.Context, label string) (string, error) {
	state := c.state
	action, ok := domain.ParseAction(label)
	if !ok || !slices.Contains(c.AvailableActions(state), action) {
		c.logger.Debug("action rejected", "label", label, "state", state)
		return "", &domain.InvalidActionError{Label: label, State: state}
	}

	c.apply(action)
	c.logger.Debug("action applied", "action", action, "from", state, "to", c.state)

	if c.hooks.OnAction != nil {
		c.hooks.OnAction(ctx, &domain.ActionEvent{
			Timestamp: c.now(),
			Action:    action,
			From:      state,
			To:        c.state,
			Coffee:    c.coffee,
			Water:     c.water,
			Waste:     c.waste,
		})
	}
	return c.RenderStatus(), nil
}

func (c *Controller) apply(action domain.Action) {
	switch action {
	case domain.ActionFillWater:
		c.FillWater()
	case domain.ActionFillCoffee:
		c.FillCoffee()
	case domain.ActionEmptyDump:
		c.EmptyWaste()
	default:
		r, ok := c.profile.Recipe(action)
		if !ok {
			panic(fmt.Errorf("%w: missing recipe for %s", domain.ErrInvalidProfile, action))
		}
		c.Brew(r)
	}
}
