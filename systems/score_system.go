package systems

import (
	"time"

	"pong/components"
	"pong/engine"
	"pong/options"
)

// ScoreSystem detects goals and owns the score counters.
//
// A goal fires when the ball box crosses a goal line: exiting past the left
// edge scores for Player2, past the right edge for Player1. Within the same
// tick the scorer's counter increments, exactly one EventScoredPoint is
// pushed, the ball resets to the field center with a fresh start velocity
// and a zeroed speedup accumulator, and both paddles recenter vertically.
type ScoreSystem struct {
	ctx *engine.GameContext
}

// NewScoreSystem creates a new score system
func NewScoreSystem(ctx *engine.GameContext) *ScoreSystem {
	return &ScoreSystem{ctx: ctx}
}

// Priority returns the system's priority
func (s *ScoreSystem) Priority() int { return PriorityScore }

// Update checks every ball against both goal lines
func (s *ScoreSystem) Update(world *engine.World, _ time.Duration) {
	opts := s.ctx.Opts
	halfBallW := opts.Ball.Width / 2

	for _, e := range world.Balls.Entities() {
		pos, ok := world.Positions.Get(e)
		if !ok {
			continue
		}

		if pos.X-halfBallW <= 0 {
			s.scorePoint(world, e, options.Player2)
		} else if pos.X+halfBallW >= opts.Game.Width {
			s.scorePoint(world, e, options.Player1)
		}
	}
}

// scorePoint awards a goal to the given player and resets the field
func (s *ScoreSystem) scorePoint(world *engine.World, ball engine.Entity, scorer options.Player) {
	s.resetBall(world, ball)

	for _, pe := range world.Paddles.Entities() {
		paddle, _ := world.Paddles.Get(pe)
		if paddle.Player == scorer {
			score, _ := world.Scores.Get(pe)
			score.Points++
			world.Scores.Set(pe, score)
			s.ctx.PushEvent(engine.EventScoredPoint, engine.ScoredPoint{
				Player: scorer,
				Score:  score.Points,
			})
		}
		s.recenterPaddle(world, pe)
	}
}

// ResetMatch zeroes both score counters, resets the ball and paddles to
// their serve state, and announces the reset on the event queue.
func (s *ScoreSystem) ResetMatch(world *engine.World) {
	for _, e := range world.Balls.Entities() {
		s.resetBall(world, e)
	}
	for _, pe := range world.Paddles.Entities() {
		world.Scores.Set(pe, components.Score{})
		s.recenterPaddle(world, pe)
	}
	s.ctx.PushEvent(engine.EventMatchReset, nil)
}

func (s *ScoreSystem) resetBall(world *engine.World, e engine.Entity) {
	opts := s.ctx.Opts

	vx, vy := opts.Ball.StartVelocity()
	world.Positions.Set(e, components.Position{X: opts.CenterX(), Y: opts.CenterY()})
	world.Velocities.Set(e, components.Velocity{X: vx, Y: vy})
	world.Balls.Set(e, components.Ball{SpeedupElapsed: 0})
}

func (s *ScoreSystem) recenterPaddle(world *engine.World, e engine.Entity) {
	pos, ok := world.Positions.Get(e)
	if !ok {
		return
	}
	pos.Y = s.ctx.Opts.CenterY()
	world.Positions.Set(e, pos)
}
