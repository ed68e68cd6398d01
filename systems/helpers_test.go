package systems

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"pong/components"
	"pong/engine"
	"pong/options"
)

// newTestContext builds a game context over a tcell simulation screen
func newTestContext(t *testing.T, opts options.Options) *engine.GameContext {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	screen.SetSize(100, 40)
	t.Cleanup(screen.Fini)

	return engine.NewGameContext(screen, opts)
}

// spawnPaddle creates a paddle entity at its fixed X, vertically centered
func spawnPaddle(ctx *engine.GameContext, player options.Player) engine.Entity {
	e := ctx.World.CreateEntity()
	ctx.World.Paddles.Set(e, components.Paddle{Player: player})
	ctx.World.Positions.Set(e, components.Position{
		X: ctx.Opts.PaddleX(player),
		Y: ctx.Opts.CenterY(),
	})
	ctx.World.Scores.Set(e, components.Score{})
	return e
}

// spawnBall creates a ball entity at the given position and velocity
func spawnBall(ctx *engine.GameContext, x, y, vx, vy float64) engine.Entity {
	e := ctx.World.CreateEntity()
	ctx.World.Balls.Set(e, components.Ball{})
	ctx.World.Positions.Set(e, components.Position{X: x, Y: y})
	ctx.World.Velocities.Set(e, components.Velocity{X: vx, Y: vy})
	return e
}

// scoredPoints filters ScoredPoint payloads out of a consumed event batch
func scoredPoints(events []engine.GameEvent) []engine.ScoredPoint {
	var points []engine.ScoredPoint
	for _, ev := range events {
		if ev.Type == engine.EventScoredPoint {
			points = append(points, ev.Payload.(engine.ScoredPoint))
		}
	}
	return points
}
