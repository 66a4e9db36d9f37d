/*
Package brewer simulates a single coffee machine as a finite-state device.

The machine tracks three deposits (coffee grounds, water and the waste dump),
derives whether it is Ready to brew or needs an operator action, and applies
the actions an operator picks from the menu valid for that state.

# Concept

The state is never set directly: it is recomputed from the deposit loads after
every fill, empty or brew. A deposit counts as empty when it cannot serve the
most demanding recipe, and the dump counts as full when it has no room left
for the grounds of one more worst-case brew.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/brewer"
	)

	func main() {
		m, err := brewer.New()
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		for _, label := range []string{"FillCoffee", "FillWater", "Espresso"} {
			status, err := m.Submit(ctx, label)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(status)
		}

		fmt.Println(m.AvailableActions(m.CurrentState()))
	}
*/
package brewer
