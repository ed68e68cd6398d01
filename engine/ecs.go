package engine

import (
	"sort"
	"sync"
	"time"

	"pong/components"
)

// Entity is a unique identifier for an entity
type Entity uint64

// System is implemented by all per-tick game systems
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// World contains all entities and their components.
// Component stores are explicitly typed for compile-time type safety and
// exported for direct system access.
type World struct {
	mu           sync.Mutex
	nextEntityID Entity
	systems      []System

	Positions  *Store[components.Position]
	Velocities *Store[components.Velocity]
	Paddles    *Store[components.Paddle]
	Balls      *Store[components.Ball]
	Scores     *Store[components.Score]
	ScoreTexts *Store[components.ScoreText]

	// All stores, for uniform entity cleanup
	allStores []AnyStore
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Positions:    NewStore[components.Position](),
		Velocities:   NewStore[components.Velocity](),
		Paddles:      NewStore[components.Paddle](),
		Balls:        NewStore[components.Ball](),
		Scores:       NewStore[components.Score](),
		ScoreTexts:   NewStore[components.ScoreText](),
	}
	w.allStores = []AnyStore{
		w.Positions, w.Velocities, w.Paddles, w.Balls, w.Scores, w.ScoreTexts,
	}
	return w
}

// CreateEntity reserves a new entity ID without adding any components
func (w *World) CreateEntity() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e Entity) {
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// AddSystem adds a system to the world, keeping the list priority-ordered
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Update runs all systems in priority order
func (w *World) Update(dt time.Duration) {
	w.mu.Lock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.Unlock()

	for _, system := range systems {
		system.Update(w, dt)
	}
}

// SystemCount returns the number of registered systems
func (w *World) SystemCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.systems)
}
