package brewer_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/brewer"
	"github.com/aretw0/brewer/pkg/domain"
	"github.com/aretw0/brewer/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_Fresh(t *testing.T) {
	m, err := brewer.New()
	require.NoError(t, err)

	assert.Equal(t, domain.StateActionRequired, m.CurrentState())
	assert.Equal(t,
		[]string{"FillWater", "FillCoffee", "EmptyDump"},
		domain.Labels(m.AvailableActions(m.CurrentState())))
	assert.Equal(t, domain.DefaultProfile(), m.Profile())
}

func TestMachine_InvalidProfile(t *testing.T) {
	p := domain.DefaultProfile()
	p.Capacities.Water = 10

	_, err := brewer.New(brewer.WithProfile(p))
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)

	assert.Panics(t, func() { brewer.MustNew(brewer.WithProfile(p)) })
}

func TestMachine_InvalidSubmitLeavesMachineUntouched(t *testing.T) {
	m := brewer.MustNew()
	ctx := context.Background()

	for _, label := range []string{"FillCoffee", "FillWater"} {
		_, err := m.Submit(ctx, label)
		require.NoError(t, err)
	}
	require.Equal(t, domain.StateReady, m.CurrentState())
	before := m.RenderStatus()

	_, err := m.Submit(ctx, "FillWater")
	assert.ErrorIs(t, err, domain.ErrInvalidAction)
	assert.Equal(t, before, m.RenderStatus())
}

func TestMachine_Hooks(t *testing.T) {
	var got []domain.Action
	m := brewer.MustNew(brewer.WithLifecycleHooks(domain.LifecycleHooks{
		OnAction: func(_ context.Context, e *domain.ActionEvent) {
			got = append(got, e.Action)
		},
	}))

	_, err := m.Submit(context.Background(), "EmptyDump")
	require.NoError(t, err)
	assert.Equal(t, []domain.Action{domain.ActionEmptyDump}, got)
}

func TestMachine_SerializesConcurrentCallers(t *testing.T) {
	m := brewer.MustNew()
	ctx := context.Background()
	for _, label := range []string{"FillCoffee", "FillWater"} {
		_, err := m.Submit(ctx, label)
		require.NoError(t, err)
	}

	// 100 coffee / 9 per espresso and 255 water / 40 per espresso: after four
	// brews water drops to 95, the fifth leaves 55 and stops the machine.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Submit(ctx, "Espresso")
		}()
	}
	wg.Wait()

	s := m.Status()
	assert.Equal(t, domain.StateActionRequired, s.State)
	assert.Equal(t, uint8(55), s.Water.Load)
	assert.Equal(t, uint8(55), s.Coffee.Load)
	assert.Equal(t, uint8(45), s.Waste.Load)
}

func TestMachine_Contract(t *testing.T) {
	ports.RunMachineContract(t, func() ports.Machine {
		return brewer.MustNew()
	})
}
