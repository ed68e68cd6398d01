// Event infrastructure for the game.
//
// Systems communicate through a shared EventQueue instead of calling each
// other directly. Producers push during their Update; the router consumes the
// queue once per tick and fans events out to registered handlers, so a goal
// scored in tick N is visible to the display and audio consumers in tick N.
package engine

import (
	"sync/atomic"
	"time"

	"pong/options"
)

// EventType represents the type of game event
type EventType int

const (
	// EventScoredPoint signals that a player scored a goal.
	//
	// Pushed exactly once per goal-line crossing by the score system, in
	// the same tick the ball is reset. Payload: ScoredPoint.
	EventScoredPoint EventType = iota

	// EventMatchReset signals that both score counters were zeroed and
	// the field was reset to its serve state. Payload: nil.
	EventMatchReset

	// EventBallBounced signals a ball reflection off a paddle or a field
	// boundary. Consumed by the audio system. Payload: nil.
	EventBallBounced
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventScoredPoint:
		return "ScoredPoint"
	case EventMatchReset:
		return "MatchReset"
	case EventBallBounced:
		return "BallBounced"
	default:
		return "Unknown"
	}
}

// ScoredPoint is the payload of EventScoredPoint. Immutable record of the
// scoring player and their updated total.
type ScoredPoint struct {
	Player options.Player
	Score  int
}

// GameEvent is a single event with metadata. Events are immutable once
// created; Frame supports deduplication, Timestamp supports debugging.
type GameEvent struct {
	Type      EventType
	Payload   interface{}
	Frame     int64
	Timestamp time.Time
}

// queueCapacity is the fixed ring buffer size. With at most a handful of
// events per tick and a drain every tick, overflow means a stalled consumer.
const queueCapacity = 256

// EventQueue is a lock-free ring buffer for game events.
//
// Push is multi-producer safe (CAS loop). Consume is single-consumer and
// belongs to the game loop. When the buffer is full the oldest events are
// overwritten.
type EventQueue struct {
	events [queueCapacity]GameEvent
	head   atomic.Uint64 // next position to read
	tail   atomic.Uint64 // next position to write
}

// NewEventQueue creates an empty event queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event to the queue
func (eq *EventQueue) Push(event GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			eq.events[currentTail%queueCapacity] = event

			// Advance head past overwritten events, best-effort
			currentHead := eq.head.Load()
			if nextTail-currentHead > queueCapacity {
				eq.head.CompareAndSwap(currentHead, nextTail-queueCapacity)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and marks them consumed.
// Single-consumer: only the game loop may call this.
func (eq *EventQueue) Consume() []GameEvent {
	currentHead := eq.head.Load()
	currentTail := eq.tail.Load()

	available := currentTail - currentHead
	if available == 0 {
		return nil
	}
	if available > queueCapacity {
		available = queueCapacity
		currentHead = currentTail - queueCapacity
	}

	result := make([]GameEvent, available)
	for i := uint64(0); i < available; i++ {
		result[i] = eq.events[(currentHead+i)%queueCapacity]
	}

	for !eq.head.CompareAndSwap(currentHead, currentTail) {
		currentHead = eq.head.Load()
		currentTail = eq.tail.Load()
		if currentTail == currentHead {
			return result
		}
	}
	return result
}

// Peek returns pending events without consuming them. Safe from any thread;
// the snapshot may be stale immediately.
func (eq *EventQueue) Peek() []GameEvent {
	currentHead := eq.head.Load()
	currentTail := eq.tail.Load()

	available := currentTail - currentHead
	if available == 0 {
		return nil
	}
	if available > queueCapacity {
		available = queueCapacity
		currentHead = currentTail - queueCapacity
	}

	result := make([]GameEvent, available)
	for i := uint64(0); i < available; i++ {
		result[i] = eq.events[(currentHead+i)%queueCapacity]
	}
	return result
}

// Len returns the current number of pending events (snapshot)
func (eq *EventQueue) Len() int {
	available := eq.tail.Load() - eq.head.Load()
	if available > queueCapacity {
		return queueCapacity
	}
	return int(available)
}
