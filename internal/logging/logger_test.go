package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/brewer/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelInfo, logging.WithWriter(&buf))

	logger.Error("boom", "error", errors.New("dump jammed"))
	assert.Contains(t, buf.String(), `err="dump jammed"`)
}

func TestNew_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelWarn, logging.WithWriter(&buf), logging.WithFormat("JSON"))

	logger.Info("hidden")
	logger.Warn("shown", "deposit", "water")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "water", rec["deposit"])
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() { logging.NewNop().Error("nothing") })
}
