package engine

import (
	"testing"
	"time"

	"pong/components"
	"pong/options"
)

// TestCreateAndDestroyEntity verifies entity lifecycle across stores
func TestCreateAndDestroyEntity(t *testing.T) {
	w := NewWorld()

	e := w.CreateEntity()
	if e == 0 {
		t.Fatal("entity ID should be non-zero")
	}

	w.Positions.Set(e, components.Position{X: 1, Y: 2})
	w.Velocities.Set(e, components.Velocity{X: 3, Y: 4})

	if !w.Positions.Has(e) || !w.Velocities.Has(e) {
		t.Fatal("components should be present after Set")
	}

	w.DestroyEntity(e)

	if w.Positions.Has(e) || w.Velocities.Has(e) {
		t.Error("components should be gone after DestroyEntity")
	}
}

// TestEntityIDsAreUnique verifies IDs are never reused within a world
func TestEntityIDsAreUnique(t *testing.T) {
	w := NewWorld()
	seen := make(map[Entity]bool)
	for i := 0; i < 100; i++ {
		e := w.CreateEntity()
		if seen[e] {
			t.Fatalf("entity ID %d issued twice", e)
		}
		seen[e] = true
	}
}

// TestStoreSetOverwrites verifies Set updates in place without duplicating
func TestStoreSetOverwrites(t *testing.T) {
	s := NewStore[components.Score]()
	s.Set(1, components.Score{Points: 1})
	s.Set(1, components.Score{Points: 2})

	if s.Count() != 1 {
		t.Errorf("store count = %d, want 1", s.Count())
	}
	sc, _ := s.Get(1)
	if sc.Points != 2 {
		t.Errorf("score = %d, want 2", sc.Points)
	}
}

// TestStoreEntitiesSnapshot verifies Entities returns an independent copy
func TestStoreEntitiesSnapshot(t *testing.T) {
	s := NewStore[components.Paddle]()
	s.Set(1, components.Paddle{Player: options.Player1})
	s.Set(2, components.Paddle{Player: options.Player2})

	snapshot := s.Entities()
	s.Remove(1)

	if len(snapshot) != 2 {
		t.Errorf("snapshot length = %d, want 2", len(snapshot))
	}
	if s.Count() != 1 {
		t.Errorf("store count after remove = %d, want 1", s.Count())
	}
}

type orderProbe struct {
	priority int
	log      *[]int
}

func (p *orderProbe) Update(_ *World, _ time.Duration) {
	*p.log = append(*p.log, p.priority)
}

func (p *orderProbe) Priority() int { return p.priority }

// TestSystemsRunInPriorityOrder verifies lower priority values run first
// regardless of registration order
func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var log []int

	w.AddSystem(&orderProbe{priority: 30, log: &log})
	w.AddSystem(&orderProbe{priority: 10, log: &log})
	w.AddSystem(&orderProbe{priority: 20, log: &log})

	w.Update(time.Millisecond)

	want := []int{10, 20, 30}
	if len(log) != len(want) {
		t.Fatalf("ran %d systems, want %d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("run order %v, want %v", log, want)
			break
		}
	}
}
