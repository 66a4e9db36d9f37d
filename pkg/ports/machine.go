package ports

import (
	"context"

	"github.com/aretw0/brewer/pkg/domain"
)

// Machine is the synchronous contract a driver uses to operate the machine.
type Machine interface {
	// CurrentState returns the derived state.
	CurrentState() domain.State

	// AvailableActions returns the ordered actions valid in state.
	AvailableActions(state domain.State) []domain.Action

	// Submit applies the action named by label and returns the rendered status.
	// Labels not valid for the current state return an error matching
	// domain.ErrInvalidAction and leave the machine unchanged.
	Submit(ctx context.Context, label string) (string, error)

	// RenderStatus returns the plain-text status.
	RenderStatus() string
}
