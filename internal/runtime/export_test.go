package runtime

// SetLoads places the deposits at arbitrary loads without deriving the state.
func (c *Controller) SetLoads(coffee, water, waste uint8) {
	c.coffee.Load = coffee
	c.water.Load = water
	c.waste.Load = waste
}
