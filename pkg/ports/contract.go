package ports

import (
	"context"
	"testing"

	"github.com/aretw0/brewer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunMachineContract runs a suite of tests to verify that a Machine built with
// the factory profile adheres to the contract. newMachine must return a fresh
// machine on every call.
func RunMachineContract(t *testing.T, newMachine func() Machine) {
	ctx := context.Background()

	submitAll := func(t *testing.T, m Machine, labels ...string) {
		t.Helper()
		for _, label := range labels {
			_, err := m.Submit(ctx, label)
			require.NoError(t, err, "Submit(%q)", label)
		}
	}

	t.Run("Fresh Machine Requires Action", func(t *testing.T) {
		m := newMachine()
		assert.Equal(t, domain.StateActionRequired, m.CurrentState())
		assert.Equal(t,
			[]domain.Action{domain.ActionFillWater, domain.ActionFillCoffee, domain.ActionEmptyDump},
			m.AvailableActions(m.CurrentState()))
		assert.Contains(t, m.RenderStatus(), "Coffee: 0/100 [EMPTY]")
	})

	t.Run("Boundary Fill", func(t *testing.T) {
		m := newMachine()
		submitAll(t, m, "FillCoffee")
		assert.Equal(t, domain.StateActionRequired, m.CurrentState())

		submitAll(t, m, "FillWater")
		assert.Equal(t, domain.StateReady, m.CurrentState())
		assert.Equal(t,
			[]domain.Action{domain.ActionEspresso, domain.ActionAmerican, domain.ActionHotWater},
			m.AvailableActions(m.CurrentState()))

		// The dump starts empty, so emptying it is not offered once Ready.
		before := m.RenderStatus()
		_, err := m.Submit(ctx, "EmptyDump")
		assert.ErrorIs(t, err, domain.ErrInvalidAction)
		assert.Equal(t, before, m.RenderStatus())
		assert.Equal(t, domain.StateReady, m.CurrentState())
	})

	t.Run("Espresso From Full", func(t *testing.T) {
		m := newMachine()
		submitAll(t, m, "FillCoffee", "FillWater")

		status, err := m.Submit(ctx, "Espresso")
		require.NoError(t, err)
		assert.Equal(t, "Coffee: 91/100\nWater: 215/255\nWaste: 9/50\nState: Ready", status)
		assert.Equal(t, status, m.RenderStatus())
	})

	t.Run("Waste Triggers Maintenance", func(t *testing.T) {
		m := newMachine()
		submitAll(t, m, "FillCoffee", "FillWater")
		// Four espressos leave the dump at 36; the fifth crosses 41.
		submitAll(t, m, "Espresso", "Espresso", "Espresso", "Espresso")
		require.Equal(t, domain.StateReady, m.CurrentState())
		submitAll(t, m, "Espresso")
		require.Equal(t, domain.StateActionRequired, m.CurrentState())

		// With water topped up again only the dump keeps the machine blocked.
		submitAll(t, m, "FillWater")
		assert.Equal(t, domain.StateActionRequired, m.CurrentState())
		assert.Equal(t, "Coffee: 55/100\nWater: 255/255\nWaste: 45/50 [FULL]\nState: ActionRequired", m.RenderStatus())
		assert.Equal(t,
			[]domain.Action{domain.ActionFillWater, domain.ActionFillCoffee, domain.ActionEmptyDump},
			m.AvailableActions(m.CurrentState()))

		submitAll(t, m, "EmptyDump")
		assert.Equal(t, domain.StateReady, m.CurrentState())
	})

	t.Run("Invalid Dispatch", func(t *testing.T) {
		m := newMachine()
		submitAll(t, m, "FillCoffee", "FillWater")
		before := m.RenderStatus()

		_, err := m.Submit(ctx, "FillWater")
		assert.ErrorIs(t, err, domain.ErrInvalidAction)
		assert.Equal(t, before, m.RenderStatus())
		assert.Equal(t, domain.StateReady, m.CurrentState())
	})
}
