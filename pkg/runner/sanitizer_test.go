package runner_test

import (
	"strings"
	"testing"

	"github.com/aretw0/brewer/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	limit := runner.DefaultMaxInputSize

	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runner.SanitizeInput(strings.Repeat("a", tt.inputSize))
			if tt.wantErr {
				assert.ErrorIs(t, err, runner.ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeInput_EnvOverride(t *testing.T) {
	t.Setenv(runner.EnvMaxInputSize, "8")

	_, err := runner.SanitizeInput("Espresso")
	assert.NoError(t, err)

	_, err = runner.SanitizeInput("FillCoffee")
	assert.ErrorIs(t, err, runner.ErrInputTooLarge)
}

func TestSanitizeInput_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "Espresso", "Espresso"},
		{"Safe Controls", "Fill\tWater", "Fill\tWater"},
		{"ANSI Code", "\x1b[31mEspresso\x1b[0m", "[31mEspresso[0m"},
		{"Null Byte", "Empty\x00Dump", "EmptyDump"},
		{"Bell", "HotWater\x07", "HotWater"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runner.SanitizeInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	_, err := runner.SanitizeInput("Espresso\xff")
	assert.ErrorIs(t, err, runner.ErrInvalidUTF8)
}
