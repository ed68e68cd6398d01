// Package options holds the composite Pong configuration. The embedding
// application builds an Options value (usually starting from DefaultOptions)
// and hands it to pong.Register once at startup. The value is treated as
// immutable for the lifetime of the match.
package options

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"pong/input"
)

// Player identifies one of the two paddles.
type Player uint8

const (
	Player1 Player = iota // left paddle
	Player2               // right paddle
)

// String returns the player name for diagnostics and display
func (p Player) String() string {
	if p == Player1 {
		return "Player1"
	}
	return "Player2"
}

// Opponent returns the other player
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// GameOptions describes the play field.
type GameOptions struct {
	// Field size in world units. Rendering scales world units to cells.
	Width, Height float64
	// Screen cell offset of the field's top-left corner.
	X, Y int
	// Background fill for the field rect.
	Background tcell.Color
}

// PlayerOptions describes both paddles and their controls.
type PlayerOptions struct {
	// Colors[0] is Player1 (left), Colors[1] is Player2 (right).
	Colors [2]tcell.Color
	// Paddle size in world units.
	Width, Height float64
	// Vertical movement speed in world units per second.
	Speed float64
	// Up and down keys per player. Colliding bindings between players are
	// not rejected; the shared key then moves both paddles.
	Player1Keys [2]input.Key
	Player2Keys [2]input.Key
}

// BallOptions describes the ball and its acceleration schedule.
type BallOptions struct {
	Color tcell.Color
	// Ball size in world units.
	Width, Height float64
	// StartVelocity produces the initial velocity vector. It is invoked
	// fresh on every ball reset, so a stochastic serve works naturally.
	StartVelocity func() (vx, vy float64)
	// SpeedupFactor multiplies velocity magnitude every SpeedupEvery
	// seconds of play. Compounds without bound unless MaxSpeed is set.
	SpeedupFactor float64
	SpeedupEvery  float64
	// MaxSpeed caps velocity magnitude in world units per second.
	// Zero disables the cap.
	MaxSpeed float64
}

// ScoreDisplayOptions configures the built-in score display. A nil pointer
// in Options disables the display entirely; external consumers can still
// observe score events on the event queue.
type ScoreDisplayOptions struct {
	// FontPath names a banner glyph font file. Empty selects the built-in
	// glyphs. A path that cannot be loaded fails registration.
	FontPath string
	Color    tcell.Color
}

// Options is the composite configuration resource.
type Options struct {
	Game         GameOptions
	Player       PlayerOptions
	Ball         BallOptions
	ScoreDisplay *ScoreDisplayOptions
}

// DefaultOptions mirrors the classic defaults: a 600x400 field, 5x50
// paddles at 200 units/s, a 15x15 ball starting at (30,15) units/s that
// speeds up 10% every 1.5 seconds, W/S and arrow-key controls, and the
// built-in score display.
func DefaultOptions() Options {
	return Options{
		Game: GameOptions{
			Width:      600,
			Height:     400,
			Background: tcell.ColorBlack,
		},
		Player: PlayerOptions{
			Colors:      [2]tcell.Color{tcell.ColorWhite, tcell.ColorWhite},
			Width:       5,
			Height:      50,
			Speed:       200,
			Player1Keys: [2]input.Key{input.KeyRune('w'), input.KeyRune('s')},
			Player2Keys: [2]input.Key{input.KeyCode(tcell.KeyUp), input.KeyCode(tcell.KeyDown)},
		},
		Ball: BallOptions{
			Color:         tcell.ColorWhite,
			Width:         15,
			Height:        15,
			StartVelocity: func() (float64, float64) { return 30, 15 },
			SpeedupFactor: 1.1,
			SpeedupEvery:  1.5,
		},
		ScoreDisplay: &ScoreDisplayOptions{Color: tcell.ColorWhite},
	}
}

// Validate rejects degenerate configuration before any entity is spawned.
func (o Options) Validate() error {
	if o.Game.Width <= 0 || o.Game.Height <= 0 {
		return errors.Errorf("game field size must be positive, got %gx%g", o.Game.Width, o.Game.Height)
	}
	if o.Player.Width <= 0 || o.Player.Height <= 0 {
		return errors.Errorf("paddle size must be positive, got %gx%g", o.Player.Width, o.Player.Height)
	}
	if o.Player.Height > o.Game.Height {
		return errors.Errorf("paddle height %g exceeds field height %g", o.Player.Height, o.Game.Height)
	}
	if o.Player.Speed <= 0 {
		return errors.Errorf("paddle speed must be positive, got %g", o.Player.Speed)
	}
	if o.Ball.Width <= 0 || o.Ball.Height <= 0 {
		return errors.Errorf("ball size must be positive, got %gx%g", o.Ball.Width, o.Ball.Height)
	}
	if o.Ball.StartVelocity == nil {
		return errors.New("ball start velocity generator must be set")
	}
	if o.Ball.SpeedupFactor < 1 {
		return errors.Errorf("ball speedup factor must be >= 1, got %g", o.Ball.SpeedupFactor)
	}
	if o.Ball.SpeedupEvery <= 0 {
		return errors.Errorf("ball speedup interval must be positive, got %g", o.Ball.SpeedupEvery)
	}
	if o.Ball.MaxSpeed < 0 {
		return errors.Errorf("ball max speed must be >= 0, got %g", o.Ball.MaxSpeed)
	}
	return nil
}

// ColorFor returns the paddle color for a player
func (o Options) ColorFor(p Player) tcell.Color {
	return o.Player.Colors[p]
}

// UpFor returns the up key binding for a player
func (o Options) UpFor(p Player) input.Key {
	if p == Player1 {
		return o.Player.Player1Keys[0]
	}
	return o.Player.Player2Keys[0]
}

// DownFor returns the down key binding for a player
func (o Options) DownFor(p Player) input.Key {
	if p == Player1 {
		return o.Player.Player1Keys[1]
	}
	return o.Player.Player2Keys[1]
}

// PaddleX returns the fixed horizontal center of a player's paddle.
// Paddles sit one paddle-width in from their goal line.
func (o Options) PaddleX(p Player) float64 {
	if p == Player1 {
		return o.Player.Width
	}
	return o.Game.Width - o.Player.Width
}

// CenterX returns the horizontal field center
func (o Options) CenterX() float64 { return o.Game.Width / 2 }

// CenterY returns the vertical field center
func (o Options) CenterY() float64 { return o.Game.Height / 2 }
