package input

import "time"

// DefaultRepeatWindow covers the gap between terminal autorepeat events.
// Most terminals repeat at 20-30 Hz after an initial delay of ~500ms, so the
// window must absorb both the repeat gap and the initial delay.
const DefaultRepeatWindow = 550 * time.Millisecond

// Keyboard tracks which keys are currently held.
//
// Terminals deliver key presses only; there is no key-up event. A key counts
// as held while autorepeat keeps refreshing it inside the repeat window.
// The game loop feeds Press from tcell events and systems query Held each
// tick. Single-threaded: both calls happen on the game loop goroutine.
type Keyboard struct {
	lastPress    map[Key]time.Time
	repeatWindow time.Duration
}

// NewKeyboard creates a keyboard tracker with the default repeat window
func NewKeyboard() *Keyboard {
	return &Keyboard{
		lastPress:    make(map[Key]time.Time),
		repeatWindow: DefaultRepeatWindow,
	}
}

// SetRepeatWindow overrides the hold window (used by tests and tuning)
func (kb *Keyboard) SetRepeatWindow(d time.Duration) {
	kb.repeatWindow = d
}

// Press records a key event at the given time
func (kb *Keyboard) Press(k Key, now time.Time) {
	kb.lastPress[k] = now
}

// Release forgets a key immediately
func (kb *Keyboard) Release(k Key) {
	delete(kb.lastPress, k)
}

// Held reports whether the key was pressed within the repeat window
func (kb *Keyboard) Held(k Key, now time.Time) bool {
	last, ok := kb.lastPress[k]
	if !ok {
		return false
	}
	if now.Sub(last) > kb.repeatWindow {
		delete(kb.lastPress, k)
		return false
	}
	return true
}

// Clear forgets all held keys
func (kb *Keyboard) Clear() {
	kb.lastPress = make(map[Key]time.Time)
}
