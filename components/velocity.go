package components

// Velocity in field units per second.
type Velocity struct {
	X, Y float64
}
