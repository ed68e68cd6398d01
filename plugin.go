// Package pong assembles a two-player paddle game on top of the engine
// package: it validates the configuration, spawns the entities, and wires
// the simulation systems and event handlers into a game context.
package pong

import (
	"github.com/pkg/errors"

	"pong/components"
	"pong/engine"
	"pong/options"
	"pong/render"
	"pong/systems"
)

// Game is a fully wired match. It owns the entities and systems created by
// Register and exposes the operations the host loop needs.
type Game struct {
	ctx     *engine.GameContext
	score   *systems.ScoreSystem
	display *systems.DisplaySystem
	font    *render.Font

	paddles [2]engine.Entity
	ball    engine.Entity
}

// Register wires a complete game into the context: two paddles with score
// counters, one ball at field center, the four simulation systems, and the
// score display when configured. The options are validated first so a bad
// configuration fails at startup with a diagnosable error.
func Register(ctx *engine.GameContext) (*Game, error) {
	if err := ctx.Opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "register game")
	}

	g := &Game{ctx: ctx}

	for i, player := range []options.Player{options.Player1, options.Player2} {
		e := ctx.World.CreateEntity()
		ctx.World.Paddles.Set(e, components.Paddle{Player: player})
		ctx.World.Positions.Set(e, components.Position{
			X: ctx.Opts.PaddleX(player),
			Y: ctx.Opts.CenterY(),
		})
		ctx.World.Scores.Set(e, components.Score{})
		g.paddles[i] = e
	}

	vx, vy := ctx.Opts.Ball.StartVelocity()
	g.ball = ctx.World.CreateEntity()
	ctx.World.Balls.Set(g.ball, components.Ball{})
	ctx.World.Positions.Set(g.ball, components.Position{
		X: ctx.Opts.CenterX(),
		Y: ctx.Opts.CenterY(),
	})
	ctx.World.Velocities.Set(g.ball, components.Velocity{X: vx, Y: vy})

	ctx.World.AddSystem(systems.NewPaddleSystem(ctx))
	ctx.World.AddSystem(systems.NewSpeedupSystem(ctx))
	ctx.World.AddSystem(systems.NewBallSystem(ctx))
	g.score = systems.NewScoreSystem(ctx)
	ctx.World.AddSystem(g.score)

	if ctx.Opts.ScoreDisplay != nil {
		font, err := loadFont(ctx.Opts.ScoreDisplay.FontPath)
		if err != nil {
			return nil, err
		}
		g.font = font
		g.display = systems.NewDisplaySystem(ctx)
		ctx.Router.Register(g.display)
	}

	return g, nil
}

func loadFont(path string) (*render.Font, error) {
	if path == "" {
		return render.BuiltinFont(), nil
	}
	return render.LoadFont(path)
}

// Font returns the loaded score font, nil when the display is disabled
func (g *Game) Font() *render.Font {
	return g.font
}

// ResetMatch zeroes both scores and restarts the rally
func (g *Game) ResetMatch() {
	g.score.ResetMatch(g.ctx.World)
}

// Ball returns the ball entity
func (g *Game) Ball() engine.Entity {
	return g.ball
}

// Paddle returns the paddle entity for the given player
func (g *Game) Paddle(player options.Player) engine.Entity {
	if player == options.Player1 {
		return g.paddles[0]
	}
	return g.paddles[1]
}
