package components

// Ball marks the ball entity and carries the speedup accumulator.
type Ball struct {
	// SpeedupElapsed is seconds of play since the last speedup or reset.
	SpeedupElapsed float64
}
