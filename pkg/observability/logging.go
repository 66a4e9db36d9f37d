package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/brewer/pkg/domain"
)

// LogHooks returns lifecycle hooks that write each event to logger at debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAction: func(ctx context.Context, e *domain.ActionEvent) {
			logger.DebugContext(ctx, "action",
				"action", e.Action,
				"from", e.From,
				"to", e.To,
				"coffee", e.Coffee.Load,
				"water", e.Water.Load,
				"waste", e.Waste.Load,
			)
		},
		OnStateChange: func(ctx context.Context, e *domain.StateEvent) {
			logger.DebugContext(ctx, "state_change", "from", e.From, "to", e.To)
		},
	}
}
