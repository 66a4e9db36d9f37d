package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/brewer"
	"github.com/aretw0/brewer/pkg/config"
	"github.com/aretw0/brewer/pkg/domain"
	"github.com/aretw0/brewer/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// createMachine builds a machine from the loaded profile with logging and metrics hooks.
func createMachine(cfg config.Config, opts RunOptions, logger *slog.Logger, reg prometheus.Registerer) (*brewer.Machine, error) {
	hooks := domain.LifecycleHooks{}
	if opts.Debug {
		hooks = hooks.Merge(observability.LogHooks(logger))
	}
	if reg != nil {
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return nil, fmt.Errorf("error registering metrics: %w", err)
		}
		hooks = hooks.Merge(metrics.Hooks())
	}

	return brewer.New(
		brewer.WithProfile(cfg.Profile),
		brewer.WithLogger(logger),
		brewer.WithLifecycleHooks(hooks),
	)
}
