package runner

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextHandler_CloseStopsPump(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	go func() {
		_, _ = pw.Write([]byte("FillWater\nFillCoffee\n"))
	}()

	h := NewTextHandler(pr, io.Discard, WithTextHandlerHeadless(true))
	got, err := h.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FillWater", got)

	// The second line is pending with nobody reading it.
	require.NoError(t, h.Close())
	require.Eventually(t, func() bool {
		_, ok := <-h.inputChan
		return !ok
	}, time.Second, 10*time.Millisecond)

	_, err = h.Input(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.NoError(t, h.Close(), "Close is idempotent")
}
