package runner_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/brewer"
	"github.com/aretw0/brewer/pkg/domain"
	"github.com/aretw0/brewer/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, script string, opts ...runner.Option) (*brewer.Machine, runner.Summary, string, error) {
	t.Helper()
	m := brewer.MustNew()
	var out bytes.Buffer
	opts = append([]runner.Option{
		runner.WithInputHandler(runner.NewTextHandler(strings.NewReader(script), &out)),
	}, opts...)

	summary, err := runner.NewRunner(opts...).Run(context.Background(), m)
	return m, summary, out.String(), err
}

func TestRunner_FullSession(t *testing.T) {
	m, summary, out, err := run(t, "FillCoffee\nemptydump\n1\nEspresso\n")
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Turns)
	assert.Zero(t, summary.Rejected)
	assert.Equal(t, 1, summary.Counts[domain.ActionFillWater], "menu number 1 resolves to FillWater")
	assert.Equal(t, 1, summary.Counts[domain.ActionEspresso])

	assert.Equal(t, domain.StateReady, m.CurrentState())
	assert.Equal(t, uint8(91), m.Status().Coffee.Load)

	assert.Contains(t, out, "Coffee: 0/100 [EMPTY]")
	assert.Contains(t, out, "1) FillWater")
	assert.Contains(t, out, "1) Espresso")
	assert.Contains(t, out, "Waste: 9/50")
}

func TestRunner_RejectsInvalidAndContinues(t *testing.T) {
	m, summary, out, err := run(t, "Espresso\n7\nFillWater\n")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Rejected)
	assert.Equal(t, 1, summary.Turns)
	assert.Contains(t, out, "invalid action")
	assert.Equal(t, uint8(255), m.Status().Water.Load)
}

func TestRunner_QuitAndBlankLines(t *testing.T) {
	m, summary, _, err := run(t, "\n\nquit\nFillWater\n")
	require.NoError(t, err)

	assert.Zero(t, summary.Turns)
	assert.Equal(t, uint8(0), m.Status().Water.Load)
}

func TestRunner_Help(t *testing.T) {
	_, _, out, err := run(t, "help\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Pick an action by **number**")
}

func TestRunner_MaxRejections(t *testing.T) {
	_, summary, _, err := run(t, "Latte\nMocha\nFillWater\n", runner.WithMaxRejections(2))
	assert.ErrorIs(t, err, runner.ErrTooManyRejections)
	assert.Equal(t, 2, summary.Rejected)
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.NewRunner(runner.WithInputHandler(runner.NewTextHandler(strings.NewReader("FillWater\n"), &bytes.Buffer{})))
	_, err := r.Run(ctx, brewer.MustNew())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunner_HeadlessOutput(t *testing.T) {
	m := brewer.MustNew()
	var out bytes.Buffer
	h := runner.NewTextHandler(strings.NewReader("FillWater\n"), &out, runner.WithTextHandlerHeadless(true))

	_, err := runner.NewRunner(runner.WithInputHandler(h)).Run(context.Background(), m)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Actions: FillWater, FillCoffee, EmptyDump")
	assert.NotContains(t, out.String(), "> ")
}

func TestTextHandler_StylerAndRenderer(t *testing.T) {
	var out bytes.Buffer
	h := runner.NewTextHandler(strings.NewReader(""), &out,
		runner.WithTextHandlerStyler(strings.ToUpper),
		runner.WithTextHandlerRenderer(func(s string) (string, error) { return "rendered: " + s, nil }),
	)
	ctx := context.Background()

	require.NoError(t, h.Output(ctx, runner.Frame{Status: "State: Ready", State: domain.StateReady}))
	require.NoError(t, h.Notice(ctx, "hello"))

	assert.Contains(t, out.String(), "STATE: READY")
	assert.Contains(t, out.String(), "rendered: hello")
}
