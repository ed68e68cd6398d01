package engine

// EventHandler processes specific event types.
// Systems implement this interface to receive routed events.
type EventHandler interface {
	// HandleEvent processes a single event. Called synchronously during
	// the dispatch phase of the tick.
	HandleEvent(world *World, event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// EventRouter dispatches events to registered handlers.
//
// Single-threaded dispatch: multiple handlers can register for the same
// event type and are invoked in registration order. DispatchAll must be
// called once per tick, after World.Update(), so events produced during the
// tick reach their consumers in the same frame.
type EventRouter struct {
	handlers map[EventType][]EventHandler
	queue    *EventQueue
}

// NewEventRouter creates a router attached to the given queue
func NewEventRouter(queue *EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them to handlers in
// FIFO order. All handlers for an event are called before the next event.
func (r *EventRouter) DispatchAll(world *World) {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(world, ev)
		}
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
