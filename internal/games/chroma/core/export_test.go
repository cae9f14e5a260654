package core

// SetRand replaces the controller's random source until the next Restart.
func SetRand(c *Controller, src interface{ Intn(n int) int }) {
	c.rng = src
}
