package engine

import (
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"pong/input"
	"pong/options"
)

// GameContext bundles the ECS world with the shared singletons every system
// needs: the configuration resource, keyboard state, event queue and router,
// and the terminal screen.
type GameContext struct {
	World    *World
	Opts     options.Options
	Keyboard *input.Keyboard
	Queue    *EventQueue
	Router   *EventRouter

	Screen        tcell.Screen
	Width, Height int // screen dimensions in cells

	frameNumber atomic.Int64
}

// NewGameContext creates a game context with an initialized ECS world.
// The options are stored as-is; callers validate before construction.
func NewGameContext(screen tcell.Screen, opts options.Options) *GameContext {
	width, height := screen.Size()
	queue := NewEventQueue()

	return &GameContext{
		World:    NewWorld(),
		Opts:     opts,
		Keyboard: input.NewKeyboard(),
		Queue:    queue,
		Router:   NewEventRouter(queue),
		Screen:   screen,
		Width:    width,
		Height:   height,
	}
}

// PushEvent pushes an event stamped with the current frame number
func (g *GameContext) PushEvent(eventType EventType, payload interface{}) {
	g.Queue.Push(GameEvent{
		Type:      eventType,
		Payload:   payload,
		Frame:     g.frameNumber.Load(),
		Timestamp: time.Now(),
	})
}

// FrameNumber returns the current frame number
func (g *GameContext) FrameNumber() int64 {
	return g.frameNumber.Load()
}

// IncrementFrameNumber advances and returns the frame number.
// Called by the game loop at the start of each frame.
func (g *GameContext) IncrementFrameNumber() int64 {
	return g.frameNumber.Add(1)
}

// HandleResize refreshes the cached screen dimensions
func (g *GameContext) HandleResize() {
	g.Width, g.Height = g.Screen.Size()
}

// Tick advances the simulation by dt and dispatches the resulting events.
// Order per frame: systems update in priority order (paddle movement,
// speedup, ball motion, scoring), then events flush to handlers so a goal
// is visible to display and audio consumers in the same frame.
func (g *GameContext) Tick(dt time.Duration) {
	g.IncrementFrameNumber()
	g.World.Update(dt)
	g.Router.DispatchAll(g.World)
}
