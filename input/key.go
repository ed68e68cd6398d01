package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key identifies a single keyboard key in a binding.
// Printable keys are represented by their rune with Code == tcell.KeyRune;
// special keys (arrows etc.) carry only the tcell key code.
type Key struct {
	Code tcell.Key
	Rune rune
}

// KeyRune builds a binding for a printable key
func KeyRune(r rune) Key {
	return Key{Code: tcell.KeyRune, Rune: r}
}

// KeyCode builds a binding for a special (non-printable) key
func KeyCode(code tcell.Key) Key {
	return Key{Code: code}
}

// FromEvent extracts the Key identity of a tcell key event
func FromEvent(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return Key{Code: tcell.KeyRune, Rune: ev.Rune()}
	}
	return Key{Code: ev.Key()}
}

// Name returns a readable key name for diagnostics
func (k Key) Name() string {
	if k.Code == tcell.KeyRune {
		return fmt.Sprintf("%q", k.Rune)
	}
	if name, ok := tcell.KeyNames[k.Code]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", k.Code)
}
