package domain

import (
	"context"
	"time"
)

// ActionEvent is emitted after an action has been applied.
type ActionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	From      State     `json:"from"`
	To        State     `json:"to"`
	Coffee    Deposit   `json:"coffee"`
	Water     Deposit   `json:"water"`
	Waste     Deposit   `json:"waste"`
}

// StateEvent is emitted when a derivation changes the machine state.
type StateEvent struct {
	Timestamp time.Time `json:"timestamp"`
	From      State     `json:"from"`
	To        State     `json:"to"`
}

// LifecycleHooks defines callbacks for controller observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnAction      func(context.Context, *ActionEvent)
	OnStateChange func(context.Context, *StateEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnAction: func(ctx context.Context, e *ActionEvent) {
			if h.OnAction != nil {
				h.OnAction(ctx, e)
			}
			if other.OnAction != nil {
				other.OnAction(ctx, e)
			}
		},
		OnStateChange: func(ctx context.Context, e *StateEvent) {
			if h.OnStateChange != nil {
				h.OnStateChange(ctx, e)
			}
			if other.OnStateChange != nil {
				other.OnStateChange(ctx, e)
			}
		},
	}
}
