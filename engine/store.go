package engine

import "sync"

// AnyStore is the type-erased store interface used for uniform entity cleanup
type AnyStore interface {
	Remove(e Entity)
	Clear()
}

// Store is a generic container for a specific component type T.
// Sparse set pattern: a map for lookup plus an entity slice for stable,
// allocation-free iteration order.
type Store[T any] struct {
	mu         sync.RWMutex
	components map[Entity]T
	entities   []Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]T),
		entities:   make([]Entity, 0, 8),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Has checks if the entity has this component
func (s *Store[T]) Has(e Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// Remove deletes the component from an entity
func (s *Store[T]) Remove(e Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities[i] = s.entities[len(s.entities)-1]
			s.entities = s.entities[:len(s.entities)-1]
			break
		}
	}
}

// Entities returns a copy of all entities holding this component
func (s *Store[T]) Entities() []Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns the number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[Entity]T)
	s.entities = s.entities[:0]
}
