package components

import "pong/options"

// Paddle marks a paddle entity and records which player owns it.
// The paddle's horizontal position is fixed per player; only Y changes.
type Paddle struct {
	Player options.Player
}
