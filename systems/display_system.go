package systems

import (
	"pong/components"
	"pong/engine"
	"pong/options"
)

// DisplaySystem maintains the on-screen score text.
//
// Purely event-driven: it is not registered as a per-tick system. The text
// entity is written once at startup and then refreshed only when a
// ScoredPoint or MatchReset event arrives through the router, in the same
// frame the goal happened.
type DisplaySystem struct {
	ctx  *engine.GameContext
	text engine.Entity
}

// NewDisplaySystem creates the display system and its score text entity
func NewDisplaySystem(ctx *engine.GameContext) *DisplaySystem {
	text := ctx.World.CreateEntity()
	ctx.World.ScoreTexts.Set(text, components.ScoreText{})
	return &DisplaySystem{ctx: ctx, text: text}
}

// TextEntity returns the entity carrying the ScoreText component
func (s *DisplaySystem) TextEntity() engine.Entity { return s.text }

// EventTypes declares the events this handler consumes
func (s *DisplaySystem) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventScoredPoint, engine.EventMatchReset}
}

// HandleEvent refreshes the score text from score events
func (s *DisplaySystem) HandleEvent(world *engine.World, event engine.GameEvent) {
	switch event.Type {
	case engine.EventMatchReset:
		world.ScoreTexts.Set(s.text, components.ScoreText{})

	case engine.EventScoredPoint:
		point, ok := event.Payload.(engine.ScoredPoint)
		if !ok {
			return
		}
		text, _ := world.ScoreTexts.Get(s.text)
		if point.Player == options.Player1 {
			text.Left = point.Score
		} else {
			text.Right = point.Score
		}
		world.ScoreTexts.Set(s.text, text)
	}
}
