package brewer_test

import (
	"context"
	"fmt"

	"github.com/aretw0/brewer"
	"github.com/aretw0/brewer/pkg/domain"
)

func Example() {
	m, err := brewer.New()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	for _, label := range []string{"FillCoffee", "FillWater", "Espresso"} {
		if _, err := m.Submit(ctx, label); err != nil {
			panic(err)
		}
	}

	fmt.Println(m.RenderStatus())
	fmt.Println(domain.Labels(m.AvailableActions(m.CurrentState())))
	// Output:
	// Coffee: 91/100
	// Water: 215/255
	// Waste: 9/50
	// State: Ready
	// [Espresso American HotWater]
}
