package audio

import (
	"pong/engine"
)

// EventHandler maps game events to sound effects. It satisfies
// engine.EventHandler and is registered on the event router next to the
// score display, so sound stays an observer of the simulation rather than
// part of it.
type EventHandler struct {
	sounds *SoundManager
}

// NewEventHandler creates the audio event handler
func NewEventHandler(sounds *SoundManager) *EventHandler {
	return &EventHandler{sounds: sounds}
}

// EventTypes returns the events that produce sound
func (h *EventHandler) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventBallBounced,
		engine.EventScoredPoint,
	}
}

// HandleEvent plays the effect for the event
func (h *EventHandler) HandleEvent(world *engine.World, event engine.GameEvent) {
	switch event.Type {
	case engine.EventBallBounced:
		h.sounds.PlayBounce()
	case engine.EventScoredPoint:
		h.sounds.PlayGoal()
	}
}
