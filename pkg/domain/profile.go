package domain

import "fmt"

// Capacities holds the maximum load of each deposit.
type Capacities struct {
	Coffee uint8 `json:"coffee" yaml:"coffee"`
	Water  uint8 `json:"water" yaml:"water"`
	Waste  uint8 `json:"waste" yaml:"waste"`
}

// Profile is everything a machine is built from: deposit capacities and the
// consumption of each brew action.
type Profile struct {
	Capacities Capacities        `json:"capacities" yaml:"capacities"`
	Recipes    map[Action]Recipe `json:"recipes" yaml:"recipes"`
}

// DefaultProfile returns the factory table of the machine.
func DefaultProfile() Profile {
	return Profile{
		Capacities: Capacities{Coffee: 100, Water: 255, Waste: 50},
		Recipes: map[Action]Recipe{
			ActionEspresso: {Coffee: 9, Water: 40},
			ActionAmerican: {Coffee: 7, Water: 60},
			ActionHotWater: {Coffee: 0, Water: 75},
		},
	}
}

// Recipe returns the consumption of a brew action.
func (p Profile) Recipe(a Action) (Recipe, bool) {
	r, ok := p.Recipes[a]
	return r, ok
}

// MaxRequiredCoffee is the largest coffee draw across all recipes.
func (p Profile) MaxRequiredCoffee() uint8 {
	var maxCoffee uint8
	for _, r := range p.Recipes {
		maxCoffee = max(maxCoffee, r.Coffee)
	}
	return maxCoffee
}

// MaxRequiredWater is the largest water draw across all recipes.
func (p Profile) MaxRequiredWater() uint8 {
	var maxWater uint8
	for _, r := range p.Recipes {
		maxWater = max(maxWater, r.Water)
	}
	return maxWater
}

// Validate rejects profiles that cannot describe a working machine.
func (p Profile) Validate() error {
	for _, a := range ActionsFor(StateReady) {
		if _, ok := p.Recipes[a]; !ok {
			return fmt.Errorf("%w: missing recipe for %s", ErrInvalidProfile, a)
		}
	}
	for a := range p.Recipes {
		if !a.IsBrew() {
			return fmt.Errorf("%w: %s is not a brew action", ErrInvalidProfile, a)
		}
	}

	maxCoffee := p.MaxRequiredCoffee()
	if p.Capacities.Coffee < maxCoffee {
		return fmt.Errorf("%w: coffee capacity %d is below the largest coffee draw %d",
			ErrInvalidProfile, p.Capacities.Coffee, maxCoffee)
	}
	if maxWater := p.MaxRequiredWater(); p.Capacities.Water < maxWater {
		return fmt.Errorf("%w: water capacity %d is below the largest water draw %d",
			ErrInvalidProfile, p.Capacities.Water, maxWater)
	}
	if p.Capacities.Waste <= maxCoffee {
		return fmt.Errorf("%w: waste capacity %d leaves no headroom for a %d unit brew",
			ErrInvalidProfile, p.Capacities.Waste, maxCoffee)
	}
	return nil
}
