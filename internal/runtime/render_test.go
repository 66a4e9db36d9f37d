package runtime_test

import (
	"testing"

	"github.com/aretw0/brewer/internal/runtime"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatus_Fresh(t *testing.T) {
	c := runtime.NewController()

	want := "Coffee: 0/100 [EMPTY]\n" +
		"Water: 0/255 [EMPTY]\n" +
		"Waste: 0/50\n" +
		"State: ActionRequired"
	assert.Equal(t, want, c.RenderStatus())
}

func TestRenderStatus_Flags(t *testing.T) {
	tests := []struct {
		name                 string
		coffee, water, waste uint8
		want                 string
	}{
		{
			name:   "Ready",
			coffee: 91, water: 215, waste: 9,
			want: "Coffee: 91/100\nWater: 215/255\nWaste: 9/50\nState: Ready",
		},
		{
			name:   "Waste Full",
			coffee: 82, water: 175, waste: 41,
			want: "Coffee: 82/100\nWater: 175/255\nWaste: 41/50 [FULL]\nState: ActionRequired",
		},
		{
			name:   "Everything",
			coffee: 8, water: 74, waste: 50,
			want: "Coffee: 8/100 [EMPTY]\nWater: 74/255 [EMPTY]\nWaste: 50/50 [FULL]\nState: ActionRequired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := runtime.NewController()
			c.SetLoads(tt.coffee, tt.water, tt.waste)
			c.DeriveState()
			assert.Equal(t, tt.want, c.RenderStatus())
		})
	}
}

func TestStatus_Lines(t *testing.T) {
	c := runtime.NewController()
	lines := c.Status().Lines()

	assert.Len(t, lines, 3)
	assert.Equal(t, "Coffee", lines[0].Name)
	assert.Equal(t, runtime.FlagEmpty, lines[0].Flag)
	assert.Equal(t, "Waste", lines[2].Name)
	assert.Empty(t, lines[2].Flag)
}
