package systems

import (
	"time"

	"pong/engine"
	"pong/vmath"
)

// SpeedupSystem accelerates the ball on a fixed schedule.
//
// Play time accumulates per ball; when the accumulator reaches the
// configured interval the velocity magnitude is multiplied by the speedup
// factor with direction preserved, and the accumulator resets to zero.
// This compounds every interval. An optional max speed caps the magnitude.
type SpeedupSystem struct {
	ctx *engine.GameContext
}

// NewSpeedupSystem creates a new ball speedup system
func NewSpeedupSystem(ctx *engine.GameContext) *SpeedupSystem {
	return &SpeedupSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *SpeedupSystem) Priority() int { return PrioritySpeedup }

// Update accumulates play time and applies due speedups
func (s *SpeedupSystem) Update(world *engine.World, dt time.Duration) {
	opts := s.ctx.Opts

	for _, e := range world.Balls.Entities() {
		ball, _ := world.Balls.Get(e)
		vel, ok := world.Velocities.Get(e)
		if !ok {
			continue
		}

		ball.SpeedupElapsed += dt.Seconds()
		if ball.SpeedupElapsed >= opts.Ball.SpeedupEvery {
			vel.X, vel.Y = vmath.Scale(vel.X, vel.Y, opts.Ball.SpeedupFactor)
			if opts.Ball.MaxSpeed > 0 {
				vel.X, vel.Y = vmath.ClampMagnitude(vel.X, vel.Y, opts.Ball.MaxSpeed)
			}
			ball.SpeedupElapsed = 0
			world.Velocities.Set(e, vel)
		}

		world.Balls.Set(e, ball)
	}
}
