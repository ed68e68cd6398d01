package components

// Position is the center of an entity's box in field coordinates.
// Origin is the top-left corner of the field; Y grows downward, so "up"
// movement decreases Y.
type Position struct {
	X, Y float64
}
