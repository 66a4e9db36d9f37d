package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/brewer/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

const sample = "Coffee: 8/100 [EMPTY]\nWater: 255/255\nWaste: 41/50 [FULL]\nState: ActionRequired"

func TestStatusStyler_AsciiIsIdentity(t *testing.T) {
	style := tui.NewStatusStyler(termenv.Ascii)
	assert.Equal(t, sample, style(sample))
}

func TestStatusStyler_Colours(t *testing.T) {
	style := tui.NewStatusStyler(termenv.TrueColor)
	out := style(sample)

	assert.NotEqual(t, sample, out)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "[EMPTY]")
	assert.Contains(t, out, "[FULL]")
	assert.Equal(t, 4, len(strings.Split(out, "\n")))
	assert.True(t, strings.HasPrefix(strings.Split(out, "\n")[1], "Water: 255/255"))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "1.2.3\n")
	assert.Contains(t, buf.String(), "brewer 1.2.3")
}

func TestNewRenderer(t *testing.T) {
	render := tui.NewRenderer()
	out, err := render("# Title\n\nsome **bold** text")
	assert.NoError(t, err)
	assert.Contains(t, out, "Title")
}
