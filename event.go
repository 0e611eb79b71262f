package retroui

import "fmt"

// Event is the base interface for all input events. Events are immutable
// values created by the input translator; each one is consumed by at most
// one responder per dispatch.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Key is the key pressed. For printable characters, this is KeyRune.
	// For special keys (arrows, function keys), this is the specific
	// constant.
	Key Key

	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune

	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

func (KeyEvent) isEvent() {}

// IsRune returns true if this is a printable character event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// Is checks if the event matches a specific key with optional modifiers.
// Example: event.Is(KeyEnter) or event.Is(KeyTab, ModCtrl).
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return e.Mod == ModNone
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// String returns a human-readable representation of the key event.
func (e KeyEvent) String() string {
	if e.Key == KeyRune {
		if e.Mod == ModNone {
			return fmt.Sprintf("%q", e.Rune)
		}
		return fmt.Sprintf("%s+%q", e.Mod, e.Rune)
	}
	if e.Mod == ModNone {
		return e.Key.String()
	}
	return fmt.Sprintf("%s+%s", e.Mod, e.Key)
}

// ResizeEvent is emitted when the terminal is resized.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// QuitEvent requests that the event loop stop. It is an ordinary event:
// the application consumes it and finishes the current step before the
// loop exits.
type QuitEvent struct{}

func (QuitEvent) isEvent() {}
