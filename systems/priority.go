package systems

// System priorities fix the per-tick order: input-driven paddle movement
// runs before the ball moves, the ball moves before goals are checked.
// Event dispatch (display, audio) happens after all systems, in the same
// frame, via the engine router.
const (
	PriorityPaddle  = 10
	PrioritySpeedup = 20
	PriorityBall    = 30
	PriorityScore   = 40
)
