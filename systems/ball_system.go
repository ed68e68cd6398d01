package systems

import (
	"time"

	"pong/engine"
	"pong/vmath"
)

// BallSystem integrates ball motion and resolves collisions.
//
// Discrete post-move testing: the ball advances by velocity*dt, then
// overlaps are checked. A ball fast enough to cross a paddle's full
// thickness in one tick passes through undetected; that is a known accuracy
// limit of the discrete test, kept as-is (swept collision would fix it).
// Goal-line exits are left untouched for the score system.
type BallSystem struct {
	ctx *engine.GameContext
}

// NewBallSystem creates a new ball motion system
func NewBallSystem(ctx *engine.GameContext) *BallSystem {
	return &BallSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *BallSystem) Priority() int { return PriorityBall }

// Update advances every ball and reflects it off paddles and walls
func (s *BallSystem) Update(world *engine.World, dt time.Duration) {
	opts := s.ctx.Opts
	delta := dt.Seconds()
	halfBallH := opts.Ball.Height / 2

	for _, e := range world.Balls.Entities() {
		pos, ok := world.Positions.Get(e)
		if !ok {
			continue
		}
		vel, ok := world.Velocities.Get(e)
		if !ok {
			continue
		}

		pos.X += vel.X * delta
		pos.Y += vel.Y * delta

		bounced := false

		// Paddle reflection: the collision side of the paddle box decides
		// which velocity component flips
		for _, pe := range world.Paddles.Entities() {
			ppos, ok := world.Positions.Get(pe)
			if !ok {
				continue
			}
			side := vmath.CollideAABB(
				ppos.X, ppos.Y, opts.Player.Width, opts.Player.Height,
				pos.X, pos.Y, opts.Ball.Width, opts.Ball.Height,
			)
			switch side {
			case vmath.SideLeft, vmath.SideRight:
				vel.X, vel.Y = vmath.ReflectAxisX(vel.X, vel.Y)
				bounced = true
			case vmath.SideTop, vmath.SideBottom:
				vel.X, vel.Y = vmath.ReflectAxisY(vel.X, vel.Y)
				bounced = true
			}
		}

		// Top/bottom field boundary: flip vertical velocity, clamp inside
		if pos.Y-halfBallH <= 0 {
			vel.X, vel.Y = vmath.ReflectAxisY(vel.X, vel.Y)
			pos.Y = halfBallH
			bounced = true
		} else if pos.Y+halfBallH >= opts.Game.Height {
			vel.X, vel.Y = vmath.ReflectAxisY(vel.X, vel.Y)
			pos.Y = opts.Game.Height - halfBallH
			bounced = true
		}

		world.Positions.Set(e, pos)
		world.Velocities.Set(e, vel)

		if bounced {
			s.ctx.PushEvent(engine.EventBallBounced, nil)
		}
	}
}
