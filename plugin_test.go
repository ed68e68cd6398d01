package pong

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"pong/components"
	"pong/engine"
	"pong/options"
)

func newTestContext(t *testing.T, opts options.Options) *engine.GameContext {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(100, 40)
	t.Cleanup(screen.Fini)
	return engine.NewGameContext(screen, opts)
}

// TestRegisterSpawnsMatch verifies the full wiring: two paddles with scores,
// a centered ball with the start velocity, four systems, and the display
func TestRegisterSpawnsMatch(t *testing.T) {
	opts := options.DefaultOptions()
	opts.Ball.StartVelocity = func() (float64, float64) { return 30, 15 }
	ctx := newTestContext(t, opts)

	game, err := Register(ctx)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if n := ctx.World.Paddles.Count(); n != 2 {
		t.Errorf("paddle count = %d, want 2", n)
	}
	for _, player := range []options.Player{options.Player1, options.Player2} {
		e := game.Paddle(player)
		pos, ok := ctx.World.Positions.Get(e)
		if !ok {
			t.Fatalf("%v paddle has no position", player)
		}
		if pos.X != opts.PaddleX(player) || pos.Y != opts.CenterY() {
			t.Errorf("%v paddle at (%v,%v), want (%v,%v)",
				player, pos.X, pos.Y, opts.PaddleX(player), opts.CenterY())
		}
		if _, ok := ctx.World.Scores.Get(e); !ok {
			t.Errorf("%v paddle has no score counter", player)
		}
	}

	pos, _ := ctx.World.Positions.Get(game.Ball())
	if pos.X != opts.CenterX() || pos.Y != opts.CenterY() {
		t.Errorf("ball at (%v,%v), want field center", pos.X, pos.Y)
	}
	vel, _ := ctx.World.Velocities.Get(game.Ball())
	if vel.X != 30 || vel.Y != 15 {
		t.Errorf("ball velocity = (%v,%v), want (30,15)", vel.X, vel.Y)
	}

	if n := ctx.World.SystemCount(); n != 4 {
		t.Errorf("system count = %d, want 4", n)
	}
	if n := ctx.Router.HandlerCount(engine.EventScoredPoint); n != 1 {
		t.Errorf("score handlers = %d, want display registered", n)
	}
	if game.Font() == nil {
		t.Error("font is nil, want builtin font")
	}
}

// TestRegisterRejectsInvalidOptions verifies validation runs before any
// entity is spawned
func TestRegisterRejectsInvalidOptions(t *testing.T) {
	opts := options.DefaultOptions()
	opts.Player.Speed = -1
	ctx := newTestContext(t, opts)

	if _, err := Register(ctx); err == nil {
		t.Fatal("Register accepted negative paddle speed")
	}
	if n := ctx.World.Paddles.Count(); n != 0 {
		t.Errorf("paddle count = %d after failed registration, want 0", n)
	}
}

// TestRegisterWithoutDisplay verifies a nil ScoreDisplay disables the
// display without disabling score events
func TestRegisterWithoutDisplay(t *testing.T) {
	opts := options.DefaultOptions()
	opts.ScoreDisplay = nil
	ctx := newTestContext(t, opts)

	game, err := Register(ctx)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if game.Font() != nil {
		t.Error("font loaded with display disabled")
	}
	if n := ctx.Router.HandlerCount(engine.EventScoredPoint); n != 0 {
		t.Errorf("score handlers = %d, want 0", n)
	}
	if n := ctx.World.ScoreTexts.Count(); n != 0 {
		t.Errorf("score text entities = %d, want 0", n)
	}
}

// TestRegisterFailsOnMissingFont verifies a bad font path is a startup
// error that names the path
func TestRegisterFailsOnMissingFont(t *testing.T) {
	opts := options.DefaultOptions()
	opts.ScoreDisplay.FontPath = "/nonexistent/score.font"
	ctx := newTestContext(t, opts)

	_, err := Register(ctx)
	if err == nil {
		t.Fatal("Register accepted a missing font file")
	}
	if !strings.Contains(err.Error(), "/nonexistent/score.font") {
		t.Errorf("error %q does not name the font path", err)
	}
}

// TestGameResetMatch verifies the host-facing reset operation
func TestGameResetMatch(t *testing.T) {
	ctx := newTestContext(t, options.DefaultOptions())
	game, err := Register(ctx)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	left := game.Paddle(options.Player1)
	ctx.World.Scores.Set(left, components.Score{Points: 4})

	game.ResetMatch()

	score, _ := ctx.World.Scores.Get(left)
	if score.Points != 0 {
		t.Errorf("score = %d after reset, want 0", score.Points)
	}
	events := ctx.Queue.Consume()
	if len(events) != 1 || events[0].Type != engine.EventMatchReset {
		t.Errorf("events = %+v, want single MatchReset", events)
	}
}
