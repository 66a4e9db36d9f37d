package observability

import (
	"context"

	"github.com/aretw0/brewer/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the lifecycle hooks.
type Metrics struct {
	Actions      *prometheus.CounterVec
	StateChanges *prometheus.CounterVec
	DepositLoad  *prometheus.GaugeVec
	Ready        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brewer_actions_total",
				Help: "Total number of applied actions",
			},
			[]string{"action"},
		),
		StateChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brewer_state_changes_total",
				Help: "Total number of state changes, by target state",
			},
			[]string{"to"},
		),
		DepositLoad: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "brewer_deposit_load",
				Help: "Current load of each deposit",
			},
			[]string{"deposit"},
		),
		Ready: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "brewer_ready",
			Help: "1 when the machine is ready to brew, 0 when an action is required",
		}),
	}

	for _, c := range []prometheus.Collector{m.Actions, m.StateChanges, m.DepositLoad, m.Ready} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAction: func(_ context.Context, e *domain.ActionEvent) {
			m.Actions.WithLabelValues(e.Action.Label()).Inc()
			m.DepositLoad.WithLabelValues(string(domain.DepositCoffee)).Set(float64(e.Coffee.Load))
			m.DepositLoad.WithLabelValues(string(domain.DepositWater)).Set(float64(e.Water.Load))
			m.DepositLoad.WithLabelValues(string(domain.DepositWaste)).Set(float64(e.Waste.Load))
			m.setReady(e.To)
		},
		OnStateChange: func(_ context.Context, e *domain.StateEvent) {
			m.StateChanges.WithLabelValues(e.To.String()).Inc()
			m.setReady(e.To)
		},
	}
}

func (m *Metrics) setReady(s domain.State) {
	if s == domain.StateReady {
		m.Ready.Set(1)
		return
	}
	m.Ready.Set(0)
}
