package domain

// Recipe is the fixed consumption of a single brew.
// The waste produced equals the coffee drawn.
type Recipe struct {
	Coffee uint8 `json:"coffee" yaml:"coffee" mapstructure:"coffee"`
	Water  uint8 `json:"water" yaml:"water" mapstructure:"water"`
}

// Waste is the amount of grounds a brew adds to the waste dump.
func (r Recipe) Waste() uint8 {
	return r.Coffee
}
