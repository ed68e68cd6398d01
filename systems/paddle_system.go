package systems

import (
	"time"

	"pong/engine"
)

// PaddleSystem moves paddles from held key state.
//
// Up decreases Y, down increases Y, both by speed*dt. Holding both keys
// applies both movements for a net zero. After movement the paddle is
// clamped so its box stays fully inside the field's vertical extent.
// Horizontal position never changes.
type PaddleSystem struct {
	ctx *engine.GameContext
}

// NewPaddleSystem creates a new paddle movement system
func NewPaddleSystem(ctx *engine.GameContext) *PaddleSystem {
	return &PaddleSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *PaddleSystem) Priority() int { return PriorityPaddle }

// Update applies held-key movement to every paddle
func (s *PaddleSystem) Update(world *engine.World, dt time.Duration) {
	now := time.Now()
	opts := s.ctx.Opts

	movement := opts.Player.Speed * dt.Seconds()
	halfPaddle := opts.Player.Height / 2

	for _, e := range world.Paddles.Entities() {
		paddle, _ := world.Paddles.Get(e)
		pos, ok := world.Positions.Get(e)
		if !ok {
			continue
		}

		if s.ctx.Keyboard.Held(opts.UpFor(paddle.Player), now) {
			pos.Y -= movement
		}
		if s.ctx.Keyboard.Held(opts.DownFor(paddle.Player), now) {
			pos.Y += movement
		}

		// Keep the paddle box inside [0, field height]
		if pos.Y < halfPaddle {
			pos.Y = halfPaddle
		}
		if pos.Y > opts.Game.Height-halfPaddle {
			pos.Y = opts.Game.Height - halfPaddle
		}

		world.Positions.Set(e, pos)
	}
}
