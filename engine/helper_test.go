package engine

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"pong/options"
)

// newTestContext builds a GameContext over a tcell simulation screen.
// Shared by engine tests; systems tests construct their own contexts so the
// packages stay independent.
func newTestContext(t *testing.T) *GameContext {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	return NewGameContext(screen, options.DefaultOptions())
}
